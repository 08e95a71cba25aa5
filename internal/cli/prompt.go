package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-sigstudio/pkg/controller"
	"github.com/goliatone/go-sigstudio/pkg/prompt"
	"github.com/goliatone/go-sigstudio/pkg/state"
)

// promptCommand creates the interactive form command.
func (a *app) promptCommand() *cobra.Command {
	var (
		noSave bool
		fresh  bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the signature interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			repo, s, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeQuietly(ctx, s)

			initial := state.DefaultSnapshot()
			initial.Template = a.cfg.TemplateKind()
			initial.Size = a.cfg.SizeProfile()
			if !fresh {
				if saved, found := repo.Load(ctx); found {
					initial = saved
					logger.Debug("resuming saved signature")
				}
			}

			options := []controller.Option{
				controller.WithInitial(initial),
				controller.WithLogger(logger),
				controller.WithRenderDelay(a.cfg.Editor.RenderDelay),
				controller.WithAutosaveDelay(a.cfg.Editor.AutosaveDelay),
			}
			if !noSave {
				options = append(options, controller.WithRepository(repo))
			}
			ctrl := controller.New(a.newStudio(), options...)
			defer ctrl.Close()

			form := prompt.New(prompt.WithPromptDriver(a.driver))
			answers, err := form.Run(ctx, initial)
			if err != nil {
				return err
			}
			if err := ctrl.Update(func(snap *state.Snapshot) {
				answers.Theme = snap.Theme
				answers.Image = snap.Image
				*snap = answers
			}); err != nil {
				return err
			}

			out, err := ctrl.Flush(ctx)
			if err != nil {
				return err
			}
			for _, notice := range answers.Contact.Validate() {
				logger.Warn(notice.Message, "field", notice.Field)
			}
			if !noSave {
				logger.Info("signature saved")
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Form completion: %d%%\n", answers.Contact.Completion())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", out.HTML, out.Text)
			return err
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the answers")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "ignore the saved signature")

	return cmd
}
