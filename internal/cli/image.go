package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-sigstudio/pkg/imaging"
)

func processImageFile(ctx context.Context, path string) (imaging.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return imaging.Result{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	result, err := imaging.New().Process(ctx, f)
	if err != nil {
		return imaging.Result{}, err
	}
	loggerFromContext(ctx).Debug("image processed",
		"source", result.SourceType,
		"width", result.Width,
		"height", result.Height,
		"bytes", result.Bytes,
	)
	return result, nil
}

// imageCommand creates the image command.
func (a *app) imageCommand() *cobra.Command {
	var (
		asJSON bool
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Resize an image into an embeddable data URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			result, err := processImageFile(ctx, args[0])
			if err != nil {
				return err
			}

			if save {
				repo, s, err := a.openRepository(ctx)
				if err != nil {
					return err
				}
				defer closeQuietly(ctx, s)
				snap, _ := repo.Load(ctx)
				snap.Image = result.DataURI
				if err := repo.Save(ctx, snap); err != nil {
					return err
				}
				loggerFromContext(ctx).Info("image saved to signature state")
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			_, err = fmt.Fprintln(out, result.DataURI)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print dimensions and metadata as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "store the image in the persisted signature")

	return cmd
}
