package scaffold

import (
	"fmt"

	"github.com/funhouse-atelier/vuegen/internal/branding"
	"github.com/funhouse-atelier/vuegen/internal/component"
)

// Confirmation returns the message shown once both files are generated. The
// stylesheet import is advisory; nothing edits the importer automatically.
func Confirmation(req *component.Request) string {
	return fmt.Sprintf("\nA new Vue component named <%s> was created. "+
		"If you want to create styles specific to this component, you will need to "+
		"manually import the new LESS stylesheet from your %q file; e.g.:\n\n%s\n",
		req.ComponentName, branding.StyleImporter(), ImportLine(req))
}

// ImportLine returns the @import statement for the component stylesheet.
func ImportLine(req *component.Request) string {
	return fmt.Sprintf("@import 'components/%s'", req.StyleFilePath)
}
