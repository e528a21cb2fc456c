package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/edukit/edukit/internal/config"
	"github.com/edukit/edukit/internal/logging"
	"github.com/edukit/edukit/internal/repository"
	"github.com/edukit/edukit/internal/seed"
	"github.com/edukit/edukit/internal/services"
	"github.com/edukit/edukit/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the CLI together: configuration, the local store, and the
// domain services the REPL commands dispatch to.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	repo    *repository.Repository
	auth    services.AuthService
	enroll  services.EnrollmentService
	catalog services.CatalogService
	admin   services.AdminService
	reader  *bufio.Reader
}

// NewApp opens the database at the configured path, builds the service
// graph and seeds the demo catalog when the user collection is empty.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	repo := repository.New(storage.NewSQLiteStore(db, log))

	app := &App{
		config:  c,
		log:     log,
		db:      db,
		repo:    repo,
		auth:    services.NewAuthService(repo),
		enroll:  services.NewEnrollmentService(repo),
		catalog: services.NewCatalogService(repo),
		admin:   services.NewAdminService(repo),
		reader:  bufio.NewReader(os.Stdin),
	}

	if len(repo.Users(ctx)) == 0 {
		if err := repo.Seed(ctx, seed.Demo()); err != nil {
			return nil, err
		}
		log.Info(ctx, "seeded demo catalog")
	}

	return app, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Println("EduKit CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated(context.Background())
}

func (a *App) isAdmin() bool {
	return a.auth.IsAdmin(context.Background())
}

func (a *App) getStatus() string {
	u := a.auth.CurrentUser(context.Background())
	if u == nil {
		return ""
	}
	s := u.Name
	if u.IsAdmin {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}
