package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// stateCommand creates the state management command.
func (a *app) stateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset the persisted signature",
	}
	cmd.AddCommand(a.stateShowCommand())
	cmd.AddCommand(a.stateClearCommand())
	return cmd
}

func (a *app) stateShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the persisted signature as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, s, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeQuietly(ctx, s)

			snap, found := repo.Load(ctx)
			if !found {
				loggerFromContext(ctx).Info("no saved signature")
			}
			if len(snap.Image) > 64 {
				snap.Image = snap.Image[:64] + "..."
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(snap); err != nil {
				return fmt.Errorf("encode state: %w", err)
			}
			return enc.Close()
		},
	}
}

func (a *app) stateClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the persisted signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, s, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeQuietly(ctx, s)

			if err := repo.Clear(ctx); err != nil {
				return err
			}
			loggerFromContext(ctx).Info("signature state cleared")
			return nil
		},
	}
}
