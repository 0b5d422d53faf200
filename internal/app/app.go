package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankterm/bankterm/internal/accountctx"
	"github.com/bankterm/bankterm/internal/config"
	"github.com/bankterm/bankterm/internal/gateway"
	"github.com/bankterm/bankterm/internal/service"
	"github.com/bankterm/bankterm/internal/ui/notify"
	"github.com/bankterm/bankterm/internal/ui/prompts"
)

type App struct {
	Config    *config.Config
	Gateway   *gateway.Client
	Accounts  *accountctx.Context
	Dashboard *service.DashboardService
	Log       zerolog.Logger
}

// NewApp wires config, logger, gateway and the dashboard service, and
// returns the App with its cleanup func.
func NewApp(cfg *config.Config) (*App, func(), error) {
	log, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := gateway.NewClient(cfg.API.BaseURL, timeout, log)
	accounts := accountctx.New()
	dashboard := service.NewDashboardService(
		client,
		accounts,
		notify.NewPresenter(),
		prompts.NewTransactionDialog(),
		log,
	)

	cleanup := func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}

	return &App{
		Config:    cfg,
		Gateway:   client,
		Accounts:  accounts,
		Dashboard: dashboard,
		Log:       log,
	}, cleanup, nil
}

func newLogger(cfg config.LogConfig) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var (
		out      io.Writer = os.Stderr
		closeLog           = func() error { return nil }
	)

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
		closeLog = file.Close
	}

	log := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return log, closeLog, nil
}
