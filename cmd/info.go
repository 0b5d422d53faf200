package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/bankterm/bankterm/internal/app"
	"github.com/bankterm/bankterm/internal/ui/views"
)

type infoRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, backend URL, and reachability.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
				cmd: cmd,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.app.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	ctx, cancel := context.WithTimeout(r.cmd.Context(), 3*time.Second)
	defer cancel()

	reachable := false
	if _, err := r.app.Gateway.ListAccounts(ctx); err == nil {
		reachable = true
	}

	items := views.SystemInfoItem{
		ConfigPath:       configPath,
		APIBaseURL:       r.app.Config.API.BaseURL,
		BackendReachable: reachable,
		DefaultCurrency:  r.app.Config.Defaults.Currency,
		LogFile:          r.app.Config.Log.File,
	}

	return views.RenderSystemInfo(items)
}
