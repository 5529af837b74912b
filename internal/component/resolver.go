package component

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extension markers appended to the normalized name.
const (
	ScriptExt = "js"
	StyleExt  = "less"
)

// Request holds everything derived from the name argument. It is built once
// per invocation and never modified.
type Request struct {
	RawInput        string // e.g., "widgets/Card"
	NormalizedInput string // e.g., "widgets/card"
	ComponentName   string // e.g., "card"
	ScriptFilePath  string // e.g., "widgets/card.component.js"
	StyleFilePath   string // e.g., "widgets/card.component.less"
}

// Resolve validates the first positional argument and derives a Request
// from it. Arguments are untyped so that callers decoding names from
// structured input (YAML, JSON) get the same checks as the command line.
func Resolve(args []any) (*Request, error) {
	if len(args) == 0 {
		return nil, &ValidationError{Kind: MissingName}
	}

	raw, ok := args[0].(string)
	if !ok {
		return nil, &ValidationError{Kind: NotAString}
	}
	if raw == "" {
		return nil, &ValidationError{Kind: MissingName}
	}

	return newRequest(raw), nil
}

// ResolveArgs is Resolve for command-line arguments.
func ResolveArgs(args []string) (*Request, error) {
	untyped := make([]any, len(args))
	for i, a := range args {
		untyped[i] = a
	}
	return Resolve(untyped)
}

func newRequest(raw string) *Request {
	// A Caser is stateful and must not be shared.
	normalized := cases.Lower(language.Und).String(raw)

	name := normalized
	if i := strings.LastIndex(normalized, "/"); i >= 0 {
		name = normalized[i+1:]
	}

	return &Request{
		RawInput:        raw,
		NormalizedInput: normalized,
		ComponentName:   name,
		ScriptFilePath:  normalized + ".component." + ScriptExt,
		StyleFilePath:   normalized + ".component." + StyleExt,
	}
}
