// Package component turns the name typed on the command line into a Request:
// the lowercased input, the display name of the component, and the relative
// paths of its script and stylesheet stubs. Resolution is pure; all I/O is
// left to the scaffold and cli packages.
package component
