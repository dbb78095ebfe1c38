package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/dmitrijs2005/geeksadmin/internal/client/client"
	"github.com/dmitrijs2005/geeksadmin/internal/client/config"
	"github.com/dmitrijs2005/geeksadmin/internal/client/export"
	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/client/screens"
	"github.com/dmitrijs2005/geeksadmin/internal/client/services"
	"github.com/dmitrijs2005/geeksadmin/internal/logging"
)

type statsSource interface {
	Summary(ctx context.Context, ac models.AuthContext, from, to time.Time) (models.Stats, error)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     services.AuthService
	stats    statsSource
	registry *screens.Registry
	sinks    []export.Sink

	ac      models.AuthContext
	current listview.Screen

	in  lineReader
	out io.Writer
}

// NewApp opens the credential store and wires the REST client, the
// screens and the export sinks.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StorePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sinks := []export.Sink{export.FileSink{Dir: c.ExportDir}}
	if c.S3.Bucket != "" {
		s3Sink, err := export.NewS3Sink(ctx, export.S3Options(c.S3))
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		sinks = append(sinks, s3Sink)
	}

	return &App{
		config:   c,
		log:      log,
		db:       db,
		auth:     services.NewAuthService(db, c.StoreSecret),
		stats:    services.NewStatsService(apiClient),
		registry: screens.New(screens.Options{Client: apiClient, Log: log}),
		sinks:    sinks,
		out:      os.Stdout,
	}, nil
}

// Run restores the stored session and reads commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          a.prompt(),
		HistoryFile:     a.config.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	a.in = rl
	a.out = rl.Stdout()

	fmt.Fprintln(a.out, "Geeks admin console (type 'help' for commands)")
	a.restoreSession(ctx)
	runREPL(ctx, a)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) prompt() string {
	status := "signed out"
	if !a.ac.Empty() {
		status = "signed in"
	}
	if a.current != nil {
		return fmt.Sprintf("admin [%s] (%s)> ", a.current.Name(), status)
	}
	return fmt.Sprintf("admin (%s)> ", status)
}
