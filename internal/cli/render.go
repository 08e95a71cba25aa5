package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/render"
	"github.com/goliatone/go-sigstudio/pkg/studio"
)

const formatAll = "all"

type renderOptions struct {
	template  string
	size      string
	format    string
	image     string
	output    string
	fromState bool
}

// renderCommand creates the render command.
func (a *app) renderCommand() *cobra.Command {
	opts := renderOptions{format: render.FormatHTML}

	cmd := &cobra.Command{
		Use:   "render [contact-file]",
		Short: "Render a signature from a JSON or YAML contact file",
		Long: `Render a signature as HTML, plain text or vCard.

The contact file may hold a bare contact or a document with contact,
template, size and image keys. Use "-" to read from stdin, or --from-state
to render the persisted signature.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			var sig model.Signature
			switch {
			case opts.fromState:
				repo, s, err := a.openRepository(ctx)
				if err != nil {
					return err
				}
				defer closeQuietly(ctx, s)
				snap, found := repo.Load(ctx)
				if !found {
					logger.Warn("no saved signature, rendering defaults")
				}
				sig = snap.Signature()
			case len(args) == 1:
				loaded, err := readSignature(args[0], cmd.InOrStdin())
				if err != nil {
					return err
				}
				sig = loaded
			default:
				return fmt.Errorf("a contact file or --from-state is required")
			}

			if err := a.applyLayoutFlags(&sig, opts.template, opts.size); err != nil {
				return err
			}
			if opts.image != "" {
				result, err := processImageFile(ctx, opts.image)
				if err != nil {
					return err
				}
				sig.Image = result.DataURI
			}
			for _, notice := range sig.Contact.Validate() {
				logger.Warn(notice.Message, "field", notice.Field)
			}

			w, closeFn, err := outputWriter(cmd.OutOrStdout(), opts.output)
			if err != nil {
				return err
			}
			s := a.newStudio()
			if err := writeFormat(cmd, s, sig, opts.format, w); err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}
			if opts.output != "" {
				logger.Info("signature written", "path", opts.output, "format", opts.format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "template name (defaults to config)")
	cmd.Flags().StringVarP(&opts.size, "size", "s", "", "size profile: small, medium or large")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: html, text, vcard or all")
	cmd.Flags().StringVar(&opts.image, "image", "", "profile image file to embed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.fromState, "from-state", false, "render the persisted signature")

	return cmd
}

// applyLayoutFlags resolves template and size from flags, then the file,
// then config.
func (a *app) applyLayoutFlags(sig *model.Signature, template, size string) error {
	if template != "" {
		kind, err := model.ParseTemplateKind(template)
		if err != nil {
			return err
		}
		sig.Template = kind
	} else if sig.Template == "" {
		sig.Template = a.cfg.TemplateKind()
	}
	if size != "" {
		profile, err := model.ParseSizeProfile(size)
		if err != nil {
			return err
		}
		sig.Size = profile
	} else if sig.Size == "" {
		sig.Size = a.cfg.SizeProfile()
	}
	return nil
}

func writeFormat(cmd *cobra.Command, s *studio.Studio, sig model.Signature, format string, w io.Writer) error {
	ctx := cmd.Context()
	format = strings.ToLower(strings.TrimSpace(format))

	if format == formatAll {
		out, err := s.Render(ctx, sig)
		if err != nil {
			return err
		}
		card, err := s.VCard(ctx, sig.Contact)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n\n%s\n\n%s\n", out.HTML, out.Text, card)
		return err
	}

	data, err := s.Generate(ctx, studio.Request{Signature: sig, Renderer: format})
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
