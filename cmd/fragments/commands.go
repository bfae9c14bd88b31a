package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"fragments/internal/bootstrap"
	"fragments/internal/domain/entity"
	domainerrors "fragments/internal/domain/errors"
	uiapp "fragments/internal/ui/app"
	"fragments/internal/usecase"
	"fragments/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const signInTimeout = 5 * time.Minute

var errNotSignedIn = domainerrors.NewAuthRequired("run `fragments login` first")

// restore loads the persisted session into the controller and refreshes once.
func restore(ctx context.Context, app *bootstrap.ClientApp) error {
	if err := app.Controller.Restore(ctx); err != nil {
		return err
	}
	if app.Controller.View().State == usecase.StateAnonymous {
		return errNotSignedIn
	}

	return nil
}

func newLoginCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in through the identity provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd, flags, appOutput{})
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.Listener.Start(); err != nil {
				return err
			}
			defer func() { _ = app.Listener.Shutdown(context.Background()) }()

			ctx, cancel := context.WithTimeout(cmd.Context(), signInTimeout)
			defer cancel()

			if err := app.Controller.SignIn(ctx); err != nil {
				return err
			}
			session, err := app.Listener.Wait(ctx)
			if err != nil {
				return err
			}
			if err := app.Controller.Attach(ctx, session); err != nil {
				return errors.Wrap(err, "signed in but the first refresh failed")
			}

			view := app.Controller.View()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%d fragments)\n", session.Identity.Username, len(view.Fragments))

			return nil
		},
	}
}

func newLogoutCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd, flags, appOutput{})
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.Controller.SignOut(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")

			return nil
		},
	}
}

func newWhoamiCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd, flags, appOutput{})
			if err != nil {
				return err
			}
			defer cleanup()

			session := app.Provider.GetUser(cmd.Context())
			if session == nil {
				return errNotSignedIn
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "user:    %s\n", session.Identity.Username)
			if session.Identity.Email != "" {
				_, _ = fmt.Fprintf(out, "email:   %s\n", session.Identity.Email)
			}
			_, _ = fmt.Fprintf(out, "subject: %s\n", session.Identity.Subject)
			_, _ = fmt.Fprintf(out, "token:   %s\n", util.FormatExpiry(session.Credential.ExpiresAt, time.Now()))
			_, _ = fmt.Fprintf(out, "api:     %s\n", app.Config.API.BaseURL)

			return nil
		},
	}
}

func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your fragments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd, flags, appOutput{})
			if err != nil {
				return err
			}
			defer cleanup()

			if err := restore(cmd.Context(), app); err != nil {
				return err
			}

			return printFragments(cmd.OutOrStdout(), app.Controller.View().Fragments)
		},
	}
}

func newCreateCmd(flags *globalFlags) *cobra.Command {
	var fragmentType string

	create := &cobra.Command{
		Use:   "create [content...]",
		Short: "Create a fragment from the arguments or stdin",
		Long:  "Create a fragment. With no arguments, or a single '-', the content is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			app, cleanup, err := loadApp(cmd, flags, appOutput{})
			if err != nil {
				return err
			}
			defer cleanup()

			if err := restore(cmd.Context(), app); err != nil {
				return err
			}

			app.Controller.SetDraft(content, entity.FragmentType(fragmentType))
			created, err := app.Controller.Create(cmd.Context())
			if created != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), created.ID)
			}

			return err
		},
	}
	create.Flags().StringVarP(&fragmentType, "type", "t", entity.FragmentTypeText.String(), "fragment type: text/plain|text/markdown|application/json")

	return create
}

func newRemoveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete fragments",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := loadApp(cmd, flags, appOutput{})
			if err != nil {
				return err
			}
			defer cleanup()

			if err := restore(cmd.Context(), app); err != nil {
				return err
			}

			for _, id := range args {
				if err := app.Controller.Delete(cmd.Context(), id); err != nil {
					return errors.Wrapf(err, "delete %s", id)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			}

			return nil
		},
	}
}

func newGetCmd(flags *globalFlags) *cobra.Command {
	var info bool

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Print a fragment's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := loadApp(cmd, flags, appOutput{})
			if err != nil {
				return err
			}
			defer cleanup()

			session := app.Provider.GetUser(cmd.Context())
			if session == nil {
				return errNotSignedIn
			}

			if info {
				fragment, err := app.Client.GetFragmentInfo(cmd.Context(), session, args[0])
				if err != nil {
					return err
				}

				return printInfo(cmd.OutOrStdout(), fragment)
			}

			fragment, err := app.Client.GetFragment(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(fragment.Content)

			return errors.WithStack(err)
		},
	}
	get.Flags().BoolVar(&info, "info", false, "print metadata instead of content")

	return get
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The UI owns the terminal: logs go to --log-file or nowhere, the sign-in prompt
			// into the UI.
			prompt := uiapp.NewPrompt()
			app, cleanup, err := loadApp(cmd, flags, appOutput{logs: io.Discard, prompt: prompt})
			if err != nil {
				return err
			}
			defer cleanup()

			return bootstrap.RunTUI(cmd.Context(), app, prompt)
		},
	}
}

func readContent(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}

		return string(data), nil
	}

	return strings.Join(args, " "), nil
}

func printFragments(w io.Writer, fragments []entity.Fragment) error {
	if len(fragments) == 0 {
		_, _ = fmt.Fprintln(w, "no fragments")

		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTYPE\tSIZE\tCREATED")
	for _, f := range fragments {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, f.Type, util.FormatBytes(int64(f.Size)), formatTime(f.Created))
	}

	return errors.WithStack(tw.Flush())
}

func printInfo(w io.Writer, f *entity.Fragment) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "id:\t%s\n", f.ID)
	_, _ = fmt.Fprintf(tw, "owner:\t%s\n", f.OwnerID)
	_, _ = fmt.Fprintf(tw, "type:\t%s\n", f.Type)
	_, _ = fmt.Fprintf(tw, "size:\t%s\n", util.FormatBytes(int64(f.Size)))
	_, _ = fmt.Fprintf(tw, "created:\t%s\n", formatTime(f.Created))
	_, _ = fmt.Fprintf(tw, "updated:\t%s\n", formatTime(f.Updated))

	return errors.WithStack(tw.Flush())
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format(time.DateTime)
}
