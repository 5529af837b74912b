package cli

import (
	"fmt"
	"path/filepath"

	"github.com/funhouse-atelier/vuegen/internal/branding"
	"github.com/funhouse-atelier/vuegen/internal/component"
	"github.com/funhouse-atelier/vuegen/internal/config"
	"github.com/funhouse-atelier/vuegen/internal/manifest"
	"github.com/funhouse-atelier/vuegen/internal/scaffold"
	"github.com/spf13/cobra"
)

// Shared flags for all generate subcommands.
var (
	generateRoot   string
	generateForce  bool
	generateDryRun bool
)

func init() {
	generateCmd.PersistentFlags().StringVar(&generateRoot, "root", "",
		fmt.Sprintf("Sails project root (default: config 'root' or $%s, else .)", branding.EnvVar(config.KeyRoot)))
	generateCmd.PersistentFlags().BoolVar(&generateForce, "force", false, "Overwrite existing files")
	generateCmd.PersistentFlags().BoolVar(&generateDryRun, "dry-run", false, "Show what would be generated without writing")
	rootCmd.AddCommand(generateCmd)

	generateCmd.AddCommand(generateVueComponentCmd)
	generateCmd.AddCommand(generateBatchCmd)
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"g"},
	Short:   "Generate files from built-in templates",
}

// ─── generate vue-component ────────────────────────────────────────

var generateVueComponentCmd = &cobra.Command{
	Use:   "vue-component <name>",
	Short: "Scaffold a new Vue component",
	Long: `Scaffold a Vue component script and its LESS stylesheet.

The name is lowercased. A path prefix nests both files under the same
subdirectory; the last segment becomes the component name.

Examples:
  vuegen generate vue-component Button
  vuegen generate vue-component widgets/Card`,
	// The name is validated by component.Resolve so that a missing name
	// reports the usage example.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := component.ResolveArgs(args)
		if err != nil {
			return err
		}
		if len(args) > 1 {
			log.Warn("ignoring extra arguments", "args", args[1:])
		}
		log.Debug("resolved component",
			"input", req.RawInput,
			"name", req.ComponentName,
			"script", req.ScriptFilePath,
			"style", req.StyleFilePath)

		result, err := scaffold.Generate(req, resolveRoot(cmd, ""), scaffold.Options{
			Force:  generateForce || settings.Force,
			DryRun: generateDryRun,
			Logger: log,
		})
		if err != nil {
			return err
		}

		printResult(result)
		if !result.DryRun {
			printer.Confirmation(scaffold.Confirmation(req))
		}
		return nil
	},
}

// ─── generate batch ────────────────────────────────────────────────

var generateBatchCmd = &cobra.Command{
	Use:   "batch <components.yaml>",
	Short: "Scaffold every component listed in a batch file",
	Long: `Scaffold several Vue components in one run.

Every entry is validated and every destination is checked before the first
file is written.

Example components.yaml:
  apiVersion: vuegen/v1
  requires: ">=0.1.0"
  components:
    - Button
    - widgets/Card`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		batch, err := manifest.ParseFile(path)
		if err != nil {
			return err
		}
		if err := batch.CheckRequires(buildVersion); err != nil {
			return err
		}
		reqs, err := batch.Resolve()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		root := resolveRoot(cmd, batchRoot(path, batch.Root))
		force := generateForce || settings.Force || batch.Force
		log.Debug("loaded batch", "file", path, "components", len(reqs), "root", root)

		results, err := scaffold.GenerateAll(reqs, root, scaffold.Options{
			Force:  force,
			DryRun: generateDryRun,
			Logger: log,
		})
		if err != nil {
			return err
		}
		for _, result := range results {
			printResult(result)
		}

		if !generateDryRun {
			printer.Info("")
			printer.Success("%d components created.", len(reqs))
			printer.Info("Add these lines to %s for the components that need styles:", branding.StyleImporter())
			printer.Info("")
			for _, req := range reqs {
				printer.Confirmation(scaffold.ImportLine(req) + "\n")
			}
		}
		return nil
	},
}

// ─── Helpers ───────────────────────────────────────────────────────

// resolveRoot picks the project root: --root, then fallback, then config.
func resolveRoot(cmd *cobra.Command, fallback string) string {
	if cmd.Flags().Changed("root") && generateRoot != "" {
		return generateRoot
	}
	if fallback != "" {
		return fallback
	}
	if settings.Root != "" {
		return settings.Root
	}
	return "."
}

// batchRoot resolves a batch file's root relative to the file itself.
func batchRoot(batchPath, root string) string {
	if root == "" || filepath.IsAbs(root) {
		return root
	}
	return filepath.Join(filepath.Dir(batchPath), root)
}

func printResult(result *scaffold.Result) {
	if result.DryRun {
		printer.Success("Would create in %s/:", result.Root)
	} else {
		printer.Success("Created in %s/:", result.Root)
	}
	for _, f := range result.Files {
		printer.Info("  %s", f)
	}
}
