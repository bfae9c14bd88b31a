// Command fragments manages your fragments from the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"fragments/config"
	"fragments/internal/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	api       string
	noBrowser bool
	debug     bool
	logFile   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "fragments",
		Short:         "Create, list and delete your fragments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.api, "api", "", "fragment store base URL (default from config, then "+config.DefaultAPIBaseURL+")")
	root.PersistentFlags().BoolVar(&flags.noBrowser, "no-browser", false, "print the sign-in URL instead of opening a browser")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newLoginCmd(flags))
	root.AddCommand(newLogoutCmd(flags))
	root.AddCommand(newWhoamiCmd(flags))
	root.AddCommand(newListCmd(flags))
	root.AddCommand(newCreateCmd(flags))
	root.AddCommand(newRemoveCmd(flags))
	root.AddCommand(newGetCmd(flags))
	root.AddCommand(newTUICmd(flags))

	return root
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if flags.api != "" {
		cfg.OverrideAPI(flags.api)
	}
	if flags.debug {
		cfg.Env.Debug = true
		cfg.Env.Log.Level = "debug"
	}

	return cfg, nil
}

// appOutput redirects logs and the sign-in prompt; nil writers keep the defaults.
type appOutput struct {
	logs   io.Writer
	prompt io.Writer
}

// loadApp builds the client graph. The returned cleanup closes the log file, if any.
func loadApp(cmd *cobra.Command, flags *globalFlags, out appOutput) (*bootstrap.ClientApp, func(), error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var extra []fx.Option
	switch {
	case flags.logFile != "":
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = f.Close() }
		extra = append(extra, bootstrap.LogOutput(f))
	case out.logs != nil:
		extra = append(extra, bootstrap.LogOutput(out.logs))
	}

	prompt := out.prompt
	if prompt == nil {
		prompt = cmd.ErrOrStderr()
	}

	app, err := bootstrap.NewClientApp(cfg, bootstrap.ClientOptions{
		Prompt:    prompt,
		NoBrowser: flags.noBrowser,
	}, extra...)
	if err != nil {
		cleanup()

		return nil, nil, err
	}

	return app, cleanup, nil
}
