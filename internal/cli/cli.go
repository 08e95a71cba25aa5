// Package cli implements the sigstudio command-line interface.
//
// Commands render signatures from contact files, run the interactive form,
// list templates, process profile images, manage the persisted state and
// start the HTTP preview service. All commands accept --verbose (-v) for
// debug logging and --config for a TOML settings file.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-sigstudio/internal/config"
	"github.com/goliatone/go-sigstudio/pkg/prompt"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries state shared by every command.
type app struct {
	configPath string
	verbose    bool
	cfg        config.Config
	driver     prompt.PromptDriver
}

// Execute runs the CLI against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing to the given streams.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newRootCommand(&app{}, stdout, stderr)
}

func newRootCommand(a *app, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "sigstudio",
		Short:        "Sigstudio renders email signatures",
		Long:         `Sigstudio turns contact details into email-client-safe HTML signatures, plain-text fallbacks and vCards.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Debug("config loaded", "store", cfg.Store.Backend, "template", cfg.Render.Template, "size", cfg.Render.Size)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("sigstudio %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a sigstudio.toml file")

	root.AddCommand(a.renderCommand())
	root.AddCommand(a.promptCommand())
	root.AddCommand(a.templatesCommand())
	root.AddCommand(a.imageCommand())
	root.AddCommand(a.serveCommand())
	root.AddCommand(a.stateCommand())

	return root
}
