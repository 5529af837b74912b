package manifest

import (
	"fmt"
	"path"

	"github.com/funhouse-atelier/vuegen/internal/component"
	"github.com/funhouse-atelier/vuegen/internal/version"
)

// CheckRequires fails when the running build does not satisfy the batch
// file's requires constraint.
func (b *Batch) CheckRequires(current string) error {
	ok, err := version.Satisfies(current, b.Requires)
	if err != nil {
		return fmt.Errorf("checking requires: %w", err)
	}
	if !ok {
		return fmt.Errorf("batch file requires version %s, running %s", b.Requires, current)
	}
	return nil
}

// Resolve resolves every entry of Components. It stops at the first invalid
// entry so that nothing is generated from a partially valid file. Entries
// naming the same component, after path cleaning ("a//b" is "a/b"), are
// rejected.
func (b *Batch) Resolve() ([]*component.Request, error) {
	reqs := make([]*component.Request, 0, len(b.Components))
	seen := make(map[string]int, len(b.Components))
	for i, entry := range b.Components {
		req, err := component.Resolve([]any{entry})
		if err != nil {
			return nil, fmt.Errorf("components[%d]: %w", i, err)
		}
		key := path.Clean(req.NormalizedInput)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("components[%d]: %q duplicates components[%d]", i, req.NormalizedInput, prev)
		}
		seen[key] = i
		reqs = append(reqs, req)
	}
	return reqs, nil
}
