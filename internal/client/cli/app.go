package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dara283/clio-client/internal/client/config"
	"github.com/dara283/clio-client/internal/client/credentials"
	"github.com/dara283/clio-client/internal/client/remote"
	"github.com/dara283/clio-client/internal/client/repositories/kv"
	"github.com/dara283/clio-client/internal/client/saved"
	"github.com/dara283/clio-client/internal/client/services"
	"github.com/dara283/clio-client/internal/client/session"
	"github.com/dara283/clio-client/internal/client/storage"
	"github.com/dara283/clio-client/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects how the active session was established.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	savedStore  *saved.Store
	sessions    *session.Store
	log         logging.Logger
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	repo := kv.NewSQLiteRepository(db)
	credStore := credentials.NewStore(repo)
	sessions := session.NewStore(db, logger)

	apiClient := remote.NewHTTPClient(c.RemoteBaseURL, c.RequestTimeout)

	as := services.NewAuthService(apiClient, credStore, sessions, logger)
	ss := saved.NewStore(repo)

	return &App{
		config:      c,
		authService: as,
		savedStore:  ss,
		sessions:    sessions,
		log:         logger,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthed()
}

// mode reports whether the active session is backed by a remote token.
func (a *App) mode() Mode {
	if cur := a.sessions.Current(); cur != nil && cur.Remote() {
		return ModeRemote
	}
	return ModeLocal
}
