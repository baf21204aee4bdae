package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/liuwf/chainmarket/internal/client/api"
	"github.com/liuwf/chainmarket/internal/client/config"
	"github.com/liuwf/chainmarket/internal/client/nav"
	"github.com/liuwf/chainmarket/internal/client/repositories/state"
	"github.com/liuwf/chainmarket/internal/client/session"
	"github.com/liuwf/chainmarket/internal/logging"

	_ "modernc.org/sqlite"
)

// marketAPI is the slice of the API client the CLI commands need.
// The real api.Client satisfies it; tests can provide a lightweight stub.
type marketAPI interface {
	Nonce(ctx context.Context, address string) (string, error)
	SignIn(ctx context.Context, address, signature, nonce string) (*api.SignInResult, error)
	MyShop(ctx context.Context) (*session.ShopProfile, error)
	ApplyShop(ctx context.Context, app api.ShopApplication) error
}

type App struct {
	config *config.Config
	sess   *session.Session
	api    marketAPI
	router *nav.Router
	log    logging.Logger
	reader *bufio.Reader
	db     *sql.DB
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.New(os.Stderr, c.LogLevel)

	db, err := state.Open(ctx, c.StateDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	sess := session.New(state.NewSQLiteRepository(db))
	if err := sess.Restore(ctx); err != nil {
		logger.Warn(ctx, "could not restore saved session", "error", err)
	}

	apiClient := api.New(c.APIBaseURL, c.RequestTimeout, sess, logger)

	return &App{
		config: c,
		sess:   sess,
		api:    apiClient,
		router: nav.NewRouter(),
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
		db:     db,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.sess.Connected()
}

// statusLine renders the prompt suffix, e.g. "(0x1234...78ab merchant)".
func (a *App) statusLine() string {
	if !a.sess.Connected() {
		return ""
	}
	return "(" + a.sess.ShortIdentity() + " " + string(a.sess.Role()) + ")"
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("chainmarket CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
}
