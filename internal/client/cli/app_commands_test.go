package cli

import (
	"bufio"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dara283/clio-client/internal/client/config"
)

// newTestApp wires a real App over a throwaway database in local-only mode.
func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "test.db")

	app, err := NewApp(cfg)
	require.NoError(t, err)
	return app
}

// scriptInput replaces the interactive input seams with scripted answers.
func scriptInput(t *testing.T, answers []string, password string) {
	t.Helper()

	origText := getSimpleText
	origPass := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPass
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected extra prompt (already consumed %d answers)", i)
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func TestApp_SignupLoginRoundTrip(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"Alice", "a@x.com"}, "pw")
	require.NoError(t, app.Signup(ctx))
	require.True(t, app.isLoggedIn())
	assert.Equal(t, ModeLocal, app.mode())

	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isLoggedIn())

	scriptInput(t, []string{"a@x.com"}, "pw")
	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())
}

func TestApp_LoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"Alice", "a@x.com"}, "pw")
	require.NoError(t, app.Signup(ctx))
	require.NoError(t, app.Logout(ctx))

	scriptInput(t, []string{"a@x.com"}, "wrong")
	require.Error(t, app.Login(ctx))
	assert.False(t, app.isLoggedIn())
}

func TestApp_SavedItemsFlow(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"Alice", "a@x.com"}, "pw")
	require.NoError(t, app.Signup(ctx))

	scriptInput(t, []string{"rooftops in lisbon"}, "")
	require.NoError(t, app.Save(ctx))

	items, err := app.savedStore.List(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "rooftops in lisbon", items[0].Fields["q"])

	scriptInput(t, []string{items[0].ID}, "")
	require.NoError(t, app.Delete(ctx))

	items, err = app.savedStore.List(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestApp_StatusLine(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	assert.Equal(t, "", app.getStatus())

	scriptInput(t, []string{"Alice", "a@x.com"}, "pw")
	require.NoError(t, app.Signup(ctx))

	status := app.getStatus()
	assert.True(t, strings.Contains(status, "a@x.com"), "status %q should contain the email", status)
	assert.True(t, strings.Contains(status, "local"), "status %q should show the session mode", status)
}
