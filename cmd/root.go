package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bankterm/bankterm/internal/app"
	"github.com/bankterm/bankterm/internal/config"
	"github.com/bankterm/bankterm/internal/ui/prompts"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config

	application *app.App
	cleanup     func()
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := newRootCmd()

	err := rootCmd.Execute()
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Config and app wiring happen in
// PersistentPreRunE, after cobra has parsed the flags, so --config and
// --verbose are live before the logger and gateway are built.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bankterm",
		Short:         "bankterm is a terminal dashboard for your bank account",
		Long:          `bankterm is a terminal dashboard for your bank account`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &dashboardRunner{app: application}
			return runner.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(NewDepositCmd())
	rootCmd.AddCommand(NewWithdrawCmd())
	rootCmd.AddCommand(NewOverdraftCmd())
	rootCmd.AddCommand(NewStatementCmd())
	rootCmd.AddCommand(NewInfoCmd())

	return rootCmd
}

func initApp() error {
	if err := initConfig(); err != nil {
		return err
	}

	if verbose {
		cfg.Log.Level = "debug"
		cfg.Log.File = ""
	}

	a, c, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	application, cleanup = a, c

	return nil
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BANKTERM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}

		if err := initWizard(); err != nil {
			return err
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// initWizard runs on the first execution, when no config file exists yet: it
// asks for the backend URL and persists the resulting config file.
func initWizard() error {
	currentDefault := viper.GetString("api.base_url")
	if currentDefault == "" {
		currentDefault = config.NewDefault().API.BaseURL
	}

	baseURL, err := prompts.PromptInitBaseURL(currentDefault)
	if err != nil {
		return err
	}

	viper.Set("api.base_url", baseURL)

	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	viper.SetConfigFile(configPath)

	pterm.Success.Printf("Configuration saved. API base URL set to: %s\n", baseURL)

	return viper.ReadInConfig()
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bankterm"), nil
	}

	return filepath.Join(configDir, "bankterm"), nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
