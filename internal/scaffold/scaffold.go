package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/funhouse-atelier/vuegen/internal/branding"
	"github.com/funhouse-atelier/vuegen/internal/component"
	"github.com/funhouse-atelier/vuegen/internal/logger"
	"github.com/iancoleman/strcase"
)

// ErrTargetExists is returned when a destination file is already present
// and Options.Force is not set.
var ErrTargetExists = errors.New("file already exists")

// ErrDuplicateTarget is returned when two components of one run would write
// the same file.
var ErrDuplicateTarget = errors.New("generated by more than one component")

// Target pairs a destination path template with the id of the template that
// renders its content. Paths are slash-separated and relative to the project
// root.
type Target struct {
	Path     string
	Template string
}

// Targets is the fixed, ordered list of files generated for a component.
var Targets = []Target{
	{Path: "assets/js/components/{{ .ScriptFilePath }}", Template: "component.js"},
	{Path: "assets/styles/components/{{ .StyleFilePath }}", Template: "component.less"},
}

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	component.Request

	ClassName      string // e.g., "DatePicker"
	RegisteredName string // e.g., "datePicker"
	TagName        string // e.g., "date-picker"
	StyleImporter  string // e.g., "assets/styles/importer.less"
	Year           int
}

// Options controls how Generate writes files.
type Options struct {
	Force  bool // overwrite existing files
	DryRun bool // render and check, but write nothing
	Logger *logger.Logger
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Root   string
	Files  []string // project-relative, in Targets order
	DryRun bool
}

type plannedFile struct {
	input   string // RawInput of the owning request
	name    string // ComponentName of the owning request
	rel     string
	dest    string
	content []byte
}

var templateCache sync.Map

// NewScaffoldData creates a ScaffoldData with derived fields populated.
func NewScaffoldData(req *component.Request) *ScaffoldData {
	return &ScaffoldData{
		Request:        *req,
		ClassName:      strcase.ToCamel(req.ComponentName),
		RegisteredName: strcase.ToLowerCamel(req.ComponentName),
		TagName:        strcase.ToKebab(req.ComponentName),
		StyleImporter:  branding.StyleImporter(),
		Year:           time.Now().Year(),
	}
}

// Generate renders every target for req and writes it under root. All
// destinations are checked before the first write, so a conflict leaves the
// project untouched.
func Generate(req *component.Request, root string, opts Options) (*Result, error) {
	results, err := GenerateAll([]*component.Request{req}, root, opts)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// GenerateAll generates every request in reqs under root as one unit. All
// files of all requests are rendered and checked before the first write, so
// any rejected file fails the whole run with nothing written. Results are
// returned in reqs order.
func GenerateAll(reqs []*component.Request, root string, opts Options) ([]*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}

	plans := make([][]plannedFile, 0, len(reqs))
	owners := make(map[string]plannedFile)
	for _, req := range reqs {
		plan, err := planFiles(req, root)
		if err != nil {
			return nil, err
		}
		for _, f := range plan {
			if prev, dup := owners[f.rel]; dup {
				return nil, fmt.Errorf("%s: %w (%q and %q)", f.rel, ErrDuplicateTarget, prev.input, f.input)
			}
			owners[f.rel] = f
		}
		plans = append(plans, plan)
	}

	if !opts.Force {
		for _, plan := range plans {
			for _, f := range plan {
				if _, err := os.Stat(f.dest); err == nil {
					return nil, fmt.Errorf("%s: %w (use --force to overwrite)", f.rel, ErrTargetExists)
				} else if !errors.Is(err, os.ErrNotExist) {
					return nil, fmt.Errorf("checking %s: %w", f.dest, err)
				}
			}
		}
	}

	results := make([]*Result, 0, len(plans))
	for _, plan := range plans {
		result := &Result{Root: root, DryRun: opts.DryRun}
		for _, f := range plan {
			result.Files = append(result.Files, f.rel)
			if err := writeFile(log, f, opts.DryRun); err != nil {
				return nil, err
			}
		}
		results = append(results, result)
	}
	return results, nil
}

func writeFile(log *logger.Logger, f plannedFile, dryRun bool) error {
	if dryRun {
		log.Debug("would write", "component", f.name, "path", f.rel, "bytes", len(f.content))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.dest), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.rel, err)
	}
	if err := os.WriteFile(f.dest, f.content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.dest, err)
	}
	log.Debug("wrote", "component", f.name, "path", f.rel, "bytes", len(f.content))
	return nil
}

// planFiles renders every target for req without touching the file system.
// Planned paths are cleaned, so inputs such as "a//b" and "a/b" compare equal.
func planFiles(req *component.Request, root string) ([]plannedFile, error) {
	data := NewScaffoldData(req)

	plan := make([]plannedFile, 0, len(Targets))
	for _, target := range Targets {
		rendered, err := renderPath(target.Path, data)
		if err != nil {
			return nil, err
		}

		rel := path.Clean(rendered)
		if path.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
			return nil, fmt.Errorf("target %s escapes the project root", rendered)
		}

		content, err := renderTemplate(target.Template, data)
		if err != nil {
			return nil, err
		}

		plan = append(plan, plannedFile{
			input:   req.RawInput,
			name:    req.ComponentName,
			rel:     rel,
			dest:    filepath.Join(root, filepath.FromSlash(rel)),
			content: content,
		})
	}
	return plan, nil
}

func renderPath(pathTmpl string, data *ScaffoldData) (string, error) {
	tmpl, err := loadTemplate("path:"+pathTmpl, func() (*template.Template, error) {
		return template.New(pathTmpl).Option("missingkey=error").Parse(pathTmpl)
	})
	if err != nil {
		return "", fmt.Errorf("parsing target path %q: %w", pathTmpl, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering target path %q: %w", pathTmpl, err)
	}
	return buf.String(), nil
}

func renderTemplate(name string, data *ScaffoldData) ([]byte, error) {
	tmpl, err := loadTemplate(name, func() (*template.Template, error) {
		file := name + ".tmpl"
		return template.New(file).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, path.Join("templates", file))
	})
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func loadTemplate(key string, parse func() (*template.Template, error)) (*template.Template, error) {
	if value, ok := templateCache.Load(key); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", key)
		}
		return cached, nil
	}
	tmpl, err := parse()
	if err != nil {
		return nil, err
	}
	templateCache.Store(key, tmpl)
	return tmpl, nil
}
