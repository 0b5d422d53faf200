package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankterm/bankterm/internal/app"
	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/ui/prompts"
)

type overdraftFlags struct {
	On  bool
	Off bool
}

type overdraftRunner struct {
	app   *app.App
	flags *overdraftFlags
	cmd   *cobra.Command
}

func NewOverdraftCmd() *cobra.Command {
	flags := &overdraftFlags{}

	cmd := &cobra.Command{
		Use:   "overdraft",
		Short: "Enable or disable the overdraft allowance",
		Long: fmt.Sprintf(`Enable or disable the overdraft allowance on the account.
Enabling sets the limit to the fixed maximum (%d); disabling sets it to zero.

	Examples:
	# Interactive mode
	bankterm overdraft

	# Quick mode with flags
	bankterm overdraft --on
	bankterm overdraft --off`, constants.OverdraftMaxLimit),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &overdraftRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().BoolVar(&flags.On, "on", false, "Enable the overdraft allowance")
	cmd.Flags().BoolVar(&flags.Off, "off", false, "Disable the overdraft allowance")
	cmd.MarkFlagsMutuallyExclusive("on", "off")

	return cmd
}

func (r *overdraftRunner) Run() error {
	ctx := r.cmd.Context()
	r.app.Dashboard.LoadAccount(ctx)

	var enable bool
	switch {
	case r.flags.On:
		enable = true
	case r.flags.Off:
		enable = false
	default:
		enabled := false
		if account := r.app.Dashboard.CurrentAccount(); account != nil {
			enabled = account.OverdraftEnabled()
		}

		confirmed, err := prompts.PromptConfirm(
			fmt.Sprintf("Enable the overdraft allowance (max %d)?", constants.OverdraftMaxLimit),
			!enabled,
		)
		if err != nil {
			return err
		}
		enable = confirmed
	}

	_, err := r.app.Dashboard.ToggleOverdraft(ctx, enable)
	return err
}
