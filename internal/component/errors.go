package component

import (
	"fmt"

	"github.com/funhouse-atelier/vuegen/internal/branding"
)

// Kind classifies why a name could not be resolved.
type Kind int

const (
	// MissingName means no positional argument was supplied.
	MissingName Kind = iota + 1
	// NotAString means the argument was present but not a string.
	NotAString
)

func (k Kind) String() string {
	switch k {
	case MissingName:
		return "missing name"
	case NotAString:
		return "not a string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ValidationError is returned by Resolve. Both kinds are terminal: nothing
// is generated when one occurs.
type ValidationError struct {
	Kind Kind
}

func (e *ValidationError) Error() string {
	var problem string
	switch e.Kind {
	case MissingName:
		problem = "You did not provide a name for the component."
	case NotAString:
		problem = "The name you provided for the component is not a string."
	default:
		problem = "The name you provided for the component is invalid."
	}
	return problem + Usage()
}

// Usage returns the invocation example appended to every validation error.
func Usage() string {
	cli := branding.CLIName()
	return fmt.Sprintf("\n\nTo create a new Vue component, use the following syntax:\n\n"+
		"%s generate vue-component <new-component-name>\n"+
		"  -OR-\n"+
		"%s generate vue-component <path>/<new-component-name>\n", cli, cli)
}
