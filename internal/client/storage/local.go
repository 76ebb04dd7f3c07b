package storage

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/codirector/internal/logging"
)

// Local is a best-effort wrapper around a Repository. Strings are stored as
// is, anything else is stored as JSON. No method returns an error: failures
// are logged and the call degrades to a no-op or "absent".
type Local struct {
	repo Repository
	log  logging.Logger
}

func NewLocal(repo Repository, log logging.Logger) *Local {
	if log == nil {
		log = logging.Nop{}
	}
	return &Local{repo: repo, log: log}
}

// GetItem loads key into out and reports whether anything was loaded.
//
// Values beginning with '{' or '[' are decoded as JSON. If that fails, the
// failure is logged and the raw text is handed back when out is a *string.
// Other values are handed back raw when out is a *string and JSON-decoded
// otherwise.
func (l *Local) GetItem(ctx context.Context, key string, out any) bool {
	raw, err := l.repo.Get(ctx, key)
	if err != nil {
		l.log.Error(ctx, "local storage read failed", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}

	if looksLikeJSON(raw) {
		err := json.Unmarshal(raw, out)
		if err == nil {
			return true
		}
		l.log.Warn(ctx, "local storage value is not valid JSON", "key", key, "error", err)
		return setRaw(out, raw)
	}

	if setRaw(out, raw) {
		return true
	}
	if err := json.Unmarshal(raw, out); err != nil {
		l.log.Warn(ctx, "local storage value could not be decoded", "key", key, "error", err)
		return false
	}
	return true
}

// SetItem stores value under key. Strings are written verbatim.
func (l *Local) SetItem(ctx context.Context, key string, value any) {
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			l.log.Warn(ctx, "local storage value could not be encoded", "key", key, "error", err)
			return
		}
		data = b
	}

	if err := l.repo.Set(ctx, key, data); err != nil {
		l.log.Error(ctx, "local storage write failed", "key", key, "error", err)
	}
}

func (l *Local) RemoveItem(ctx context.Context, key string) {
	if err := l.repo.Delete(ctx, key); err != nil {
		l.log.Error(ctx, "local storage delete failed", "key", key, "error", err)
	}
}

func looksLikeJSON(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

func setRaw(out any, raw []byte) bool {
	s, ok := out.(*string)
	if !ok {
		return false
	}
	*s = string(raw)
	return true
}
