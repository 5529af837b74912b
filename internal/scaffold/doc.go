// Package scaffold renders the script and stylesheet stubs of a Vue
// component from embedded templates and writes them into a Sails project.
// It powers the "vuegen generate" commands.
package scaffold
