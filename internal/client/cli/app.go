package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/carmarket/internal/client/config"
	"github.com/dmitrijs2005/carmarket/internal/client/models"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/cars"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/users"
	"github.com/dmitrijs2005/carmarket/internal/client/services"
	"github.com/dmitrijs2005/carmarket/internal/logging"
	"github.com/google/uuid"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	catalog  services.CatalogService
	auth     services.AuthService
	profile  services.ProfileService
	settings services.SettingsService

	user   *models.RegisteredUser
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the services on top of store. Each App gets its own session
// id, attached to every log record.
func NewApp(c *config.Config, store kv.Repository, log logging.Logger, in io.Reader, out io.Writer) *App {
	log = log.With("session", uuid.NewString())

	return &App{
		config:   c,
		log:      log,
		catalog:  services.NewCatalogService(cars.NewCatalog(store, log), log),
		auth:     services.NewAuthService(users.NewDirectory(store, log), log),
		profile:  services.NewProfileService(services.DefaultAccounts()...),
		settings: services.NewSettingsService(store, log),
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run prints the banner, warms the settings cache and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to Car BuySell CLI (type 'help' for commands)")

	opCtx, cancel := a.opContext(ctx)
	if _, err := a.settings.Load(opCtx); err != nil {
		a.log.Warn(ctx, "failed to load settings", logging.Err(err))
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	a.log.Info(ctx, "session finished")
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Name)
}

// opContext bounds a single command's store round-trips.
func (a *App) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.OperationTimeout)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
