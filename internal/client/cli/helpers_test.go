package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/codirector/internal/client/config"
	"github.com/dmitrijs2005/codirector/internal/client/mockapi"
	"github.com/dmitrijs2005/codirector/internal/client/models"
	"github.com/dmitrijs2005/codirector/internal/client/services"
	"github.com/dmitrijs2005/codirector/internal/client/store"
	"github.com/dmitrijs2005/codirector/internal/logging"
)

type output struct {
	mu    sync.Mutex
	lines []string
}

func (o *output) all() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "\n")
}

// captureOutput redirects printlnFn and prompts for the duration of the test.
func captureOutput(t *testing.T) *output {
	t.Helper()
	o := &output{}
	origPrint, origStdout := printlnFn, stdout
	printlnFn = func(a ...any) (int, error) {
		s := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
		o.mu.Lock()
		o.lines = append(o.lines, s)
		o.mu.Unlock()
		return len(s), nil
	}
	stdout = io.Discard
	t.Cleanup(func() {
		printlnFn = origPrint
		stdout = origStdout
	})
	return o
}

// stubInputs answers text prompts in order and returns password for the
// password prompt.
func stubInputs(t *testing.T, password string, texts ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		i++
		return texts[i-1], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// newTestApp builds an App over the in-process mock backend with no delay.
// Without mock enabled there is no backend at all.
func newTestApp(t *testing.T, mockEnabled bool) *App {
	t.Helper()
	st := store.New(false, store.WithSettings(models.SettingsState{
		ThemeMode:      models.ThemeSystem,
		MockAPIEnabled: mockEnabled,
		Language:       "en",
	}))
	mock, err := mockapi.New(mockapi.WithDelay(0))
	require.NoError(t, err)

	return &App{
		config:      &config.Config{},
		store:       st,
		authService: services.NewAuthService(st, mock, nil, nil, logging.Nop{}),
		logger:      logging.Nop{},
		reader:      bufio.NewReader(strings.NewReader("")),
	}
}
