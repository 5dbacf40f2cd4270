// Package workflows implements the operations behind the CLI commands.
//
// Each workflow takes a context and an Options struct and returns a Result
// struct, keeping the cobra layer to flag parsing and presentation.
package workflows
