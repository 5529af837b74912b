package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funhouse-atelier/vuegen/internal/component"
	"github.com/funhouse-atelier/vuegen/internal/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// setupCLI isolates $HOME and viper, and returns a fresh project root.
func setupCLI(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	viper.Reset()
	t.Cleanup(viper.Reset)
	return t.TempDir()
}

// run executes the command tree with args and captures both streams.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute("0.1.0", "abc123", "2026-01-01")
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag to its default; cobra keeps parsed values
// between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestGenerateVueComponent(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		component string
		script    string
		style     string
	}{
		{"single name", "Button", "button", "assets/js/components/button.component.js", "assets/styles/components/button.component.less"},
		{"path and name", "widgets/Card", "card", "assets/js/components/widgets/card.component.js", "assets/styles/components/widgets/card.component.less"},
		{"deep path", "Nav/Bar/Item", "item", "assets/js/components/nav/bar/item.component.js", "assets/styles/components/nav/bar/item.component.less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := setupCLI(t)

			out, errOut, err := run(t, "generate", "vue-component", tt.input, "--root", root)
			if err != nil {
				t.Fatalf("generate error: %v\nstderr: %s", err, errOut)
			}

			assertExists(t, root, tt.script)
			assertExists(t, root, tt.style)

			assertContains(t, out, "A new Vue component named <"+tt.component+"> was created.")
			styleRel := strings.TrimPrefix(tt.style, "assets/styles/components/")
			assertContains(t, out, "@import 'components/"+styleRel+"'")

			// Script target is listed before the stylesheet target.
			if strings.Index(out, tt.script) > strings.Index(out, tt.style) {
				t.Errorf("script should be listed before stylesheet:\n%s", out)
			}
		})
	}
}

func TestGenerateVueComponentMissingName(t *testing.T) {
	root := setupCLI(t)

	out, errOut, err := run(t, "generate", "vue-component", "--root", root)
	if err == nil {
		t.Fatal("expected error for missing name")
	}
	var ve *component.ValidationError
	if !errors.As(err, &ve) || ve.Kind != component.MissingName {
		t.Fatalf("expected MissingName, got %v", err)
	}

	assertContains(t, errOut, "Error: You did not provide a name for the component.")
	assertContains(t, errOut, "vuegen generate vue-component <new-component-name>")
	assertContains(t, errOut, "vuegen generate vue-component <path>/<new-component-name>")
	if strings.Contains(out, "was created") {
		t.Errorf("no confirmation expected on failure:\n%s", out)
	}
	assertEmptyDir(t, root)
}

func TestGenerateVueComponentExisting(t *testing.T) {
	root := setupCLI(t)

	if _, _, err := run(t, "generate", "vue-component", "Button", "--root", root); err != nil {
		t.Fatalf("first generate error: %v", err)
	}

	_, errOut, err := run(t, "generate", "vue-component", "Button", "--root", root)
	if !errors.Is(err, scaffold.ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists, got %v", err)
	}
	assertContains(t, errOut, "already exists")

	if _, _, err := run(t, "generate", "vue-component", "Button", "--root", root, "--force"); err != nil {
		t.Fatalf("forced generate error: %v", err)
	}
}

func TestGenerateVueComponentDryRun(t *testing.T) {
	root := setupCLI(t)

	out, _, err := run(t, "generate", "vue-component", "widgets/Card", "--root", root, "--dry-run")
	if err != nil {
		t.Fatalf("dry run error: %v", err)
	}
	assertContains(t, out, "Would create in")
	assertContains(t, out, "assets/js/components/widgets/card.component.js")
	assertEmptyDir(t, root)
}

func TestGenerateVueComponentVerbose(t *testing.T) {
	root := setupCLI(t)

	_, errOut, err := run(t, "generate", "vue-component", "Button", "--root", root, "--verbose")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	assertContains(t, errOut, "resolved component")
	assertContains(t, errOut, "wrote")
}

func TestGenerateVueComponentRootFromConfig(t *testing.T) {
	root := setupCLI(t)
	t.Setenv("VUEGEN_ROOT", root)

	if _, _, err := run(t, "generate", "vue-component", "Button"); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	assertExists(t, root, "assets/js/components/button.component.js")
}

func TestGenerateBatch(t *testing.T) {
	dir := setupCLI(t)
	batch := writeBatch(t, dir, `apiVersion: vuegen/v1
requires: ">=0.1.0"
root: ./app
components:
  - Button
  - widgets/Card
`)

	out, errOut, err := run(t, "generate", "batch", batch)
	if err != nil {
		t.Fatalf("batch error: %v\nstderr: %s", err, errOut)
	}

	app := filepath.Join(dir, "app")
	assertExists(t, app, "assets/js/components/button.component.js")
	assertExists(t, app, "assets/styles/components/button.component.less")
	assertExists(t, app, "assets/js/components/widgets/card.component.js")
	assertExists(t, app, "assets/styles/components/widgets/card.component.less")

	assertContains(t, out, "2 components created.")
	assertContains(t, out, "@import 'components/widgets/card.component.less'")
}

func TestGenerateBatchNonStringEntry(t *testing.T) {
	dir := setupCLI(t)
	batch := writeBatch(t, dir, `apiVersion: vuegen/v1
root: ./app
components:
  - Button
  - 42
`)

	_, errOut, err := run(t, "generate", "batch", batch)
	var ve *component.ValidationError
	if !errors.As(err, &ve) || ve.Kind != component.NotAString {
		t.Fatalf("expected NotAString, got %v", err)
	}
	assertContains(t, errOut, "components[1]")
	assertContains(t, errOut, "vuegen generate vue-component <path>/<new-component-name>")

	if _, err := os.Stat(filepath.Join(dir, "app")); !os.IsNotExist(err) {
		t.Error("no file should be written when an entry is invalid")
	}
}

func TestGenerateBatchConflictWritesNothing(t *testing.T) {
	dir := setupCLI(t)
	existing := filepath.Join(dir, "assets", "styles", "components", "widgets", "card.component.less")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}
	batch := writeBatch(t, dir, `apiVersion: vuegen/v1
root: .
components:
  - Button
  - widgets/Card
`)

	_, _, err := run(t, "generate", "batch", batch)
	if !errors.Is(err, scaffold.ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "assets", "js", "components", "button.component.js")); !os.IsNotExist(err) {
		t.Error("button should not be generated when a later component conflicts")
	}
}

func TestGenerateBatchWritesNothingOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		batch  string
		args   []string
		errMsg string
	}{
		{
			name: "escaping entry with --force",
			batch: `apiVersion: vuegen/v1
root: ./app
components:
  - Button
  - ../../../../Evil
`,
			args:   []string{"--force"},
			errMsg: "escapes the project root",
		},
		{
			name: "escaping entry with force in file",
			batch: `apiVersion: vuegen/v1
root: ./app
force: true
components:
  - Button
  - ../../../../Evil
`,
			errMsg: "escapes the project root",
		},
		{
			name: "aliased entries",
			batch: `apiVersion: vuegen/v1
root: ./app
components:
  - a/b
  - a//b
`,
			errMsg: "duplicates components[0]",
		},
		{
			name: "aliased entries with --force",
			batch: `apiVersion: vuegen/v1
root: ./app
components:
  - a
  - ./a
`,
			args:   []string{"--force"},
			errMsg: "duplicates components[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupCLI(t)
			batch := writeBatch(t, dir, tt.batch)

			_, errOut, err := run(t, append([]string{"generate", "batch", batch}, tt.args...)...)
			if err == nil {
				t.Fatal("expected batch to fail")
			}
			assertContains(t, errOut, tt.errMsg)
			if _, err := os.Stat(filepath.Join(dir, "app")); !os.IsNotExist(err) {
				t.Error("no file should be written when any entry fails")
			}
		})
	}
}

func TestGenerateBatchForceFromConfig(t *testing.T) {
	dir := setupCLI(t)
	t.Setenv("VUEGEN_FORCE", "true")
	batch := writeBatch(t, dir, `apiVersion: vuegen/v1
root: ./app
components:
  - Button
  - ../../../../Evil
`)

	if _, _, err := run(t, "generate", "batch", batch); err == nil {
		t.Fatal("expected escaping entry to fail")
	}
	if _, err := os.Stat(filepath.Join(dir, "app")); !os.IsNotExist(err) {
		t.Error("no file should be written when any entry fails")
	}
}

func TestGenerateBatchRequires(t *testing.T) {
	dir := setupCLI(t)
	batch := writeBatch(t, dir, `apiVersion: vuegen/v1
requires: ">=2.0.0"
components:
  - Button
`)

	_, errOut, err := run(t, "generate", "batch", batch)
	if err == nil {
		t.Fatal("expected error for unmet version requirement")
	}
	assertContains(t, errOut, "requires version >=2.0.0")
}

func TestGenerateBatchInvalidSchema(t *testing.T) {
	dir := setupCLI(t)
	batch := writeBatch(t, dir, `apiVersion: vuegen/v9
components: []
`)

	_, errOut, err := run(t, "generate", "batch", batch)
	if err == nil {
		t.Fatal("expected error for invalid batch file")
	}
	assertContains(t, errOut, "invalid batch file")
}

func TestConfigCommands(t *testing.T) {
	setupCLI(t)

	out, _, err := run(t, "config", "set", "log_level", "info")
	if err != nil {
		t.Fatalf("config set error: %v", err)
	}
	assertContains(t, out, "Set log_level = info")

	out, _, err = run(t, "config", "get", "log_level")
	if err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if strings.TrimSpace(out) != "info" {
		t.Errorf("config get = %q, want info", out)
	}

	out, _, err = run(t, "config", "list")
	if err != nil {
		t.Fatalf("config list error: %v", err)
	}
	assertContains(t, out, "root = .")
	assertContains(t, out, "color = auto")

	if _, _, err := run(t, "config", "set", "color", "purple"); err == nil {
		t.Error("expected error for invalid color")
	}
	if _, _, err := run(t, "config", "get", "nope"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestVersionCommand(t *testing.T) {
	setupCLI(t)

	out, _, err := run(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != "0.1.0" {
		t.Errorf("version --short = %q", out)
	}

	out, _, err = run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json error: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if info["commit"] != "abc123" {
		t.Errorf("commit = %q", info["commit"])
	}

	out, _, err = run(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	assertContains(t, out, "vuegen version 0.1.0")
}

// ─── Test Helpers ──────────────────────────────────────────────────

func writeBatch(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "components.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing batch file: %v", err)
	}
	return path
}

func assertExists(t *testing.T, root, rel string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		t.Errorf("expected %s to exist: %v", rel, err)
	}
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected %s to be empty, found %d entries", dir, len(entries))
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
