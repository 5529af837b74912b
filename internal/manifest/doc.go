// Package manifest handles parsing and validation of component batch files
// (components.yaml). A batch file lists component names to generate in one
// run and is validated against an embedded JSON Schema before any name is
// resolved.
package manifest
