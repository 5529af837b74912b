package cli

import (
	"github.com/funhouse-atelier/vuegen/internal/branding"
	"github.com/funhouse-atelier/vuegen/internal/config"
	"github.com/funhouse-atelier/vuegen/internal/display"
	"github.com/funhouse-atelier/vuegen/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	verbose   bool
	colorMode string
)

// Set up per invocation by PersistentPreRunE.
var (
	settings config.Settings
	log      = logger.NewNopLogger()
	printer  *display.Printer
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates the boilerplate for Vue components in a Sails project:
a script stub under assets/js/components and a LESS stylesheet stub under
assets/styles/components.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		settings = config.Current()

		mode := settings.Color
		if cmd.Flags().Changed("color") {
			mode = colorMode
		}
		printer = display.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

		level := settings.LogLevel
		if verbose {
			level = "debug"
		}
		l, err := logger.New(level, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", display.ColorAuto, "Color output: auto, always or never")
}

// Execute runs the root command with build info injected via ldflags. A
// returned error has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	printer = nil

	err := rootCmd.Execute()
	if err != nil {
		p := printer
		if p == nil {
			// Flag parsing failed before PersistentPreRunE ran.
			p = display.New(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), display.ColorAuto)
		}
		p.Error(err)
	}
	return err
}
