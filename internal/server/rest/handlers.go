package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/codirector/internal/client/api"
	"github.com/dmitrijs2005/codirector/internal/client/models"
)

const maxBodyBytes = 1 << 20

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.OK(map[string]string{"status": "ok"}, http.StatusOK))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	sess, err := h.backend.Login(r.Context(), req)
	if err != nil {
		h.fail(w, r, "login", err)
		return
	}
	writeJSON(w, api.OK(sess, http.StatusOK))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.Logout(r.Context()); err != nil {
		h.fail(w, r, "logout", err)
		return
	}
	writeJSON(w, api.OK[any](nil, http.StatusOK))
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, api.BadRequest("Email is required."))
		return
	}
	u, err := h.backend.Register(r.Context(), req)
	if err != nil {
		h.fail(w, r, "register", err)
		return
	}
	writeJSON(w, api.OK(u, http.StatusCreated))
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.backend.FetchUserProfile(r.Context())
	if err != nil {
		h.fail(w, r, "fetch profile", err)
		return
	}
	writeJSON(w, api.OK(u, http.StatusOK))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var e *api.Error
	if errors.As(err, &e) {
		h.logger.Info(r.Context(), op+" rejected", "code", e.Code)
	} else {
		h.logger.Error(r.Context(), op+" failed", "error", err)
	}
	writeError(w, err)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, api.BadRequest("Malformed request body."))
		return false
	}
	return true
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, api.Fail[*models.UserProfile](err))
}

func writeJSON[T any](w http.ResponseWriter, resp api.Response[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
