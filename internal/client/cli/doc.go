// Package cli implements the interactive admin console.
//
// The console is a line-oriented REPL built on chzyer/readline. One
// screen is active at a time; commands change its filters, page through
// it, edit its records and export it. Tables are rendered with
// text/tabwriter and empty cells show as N/A.
//
// An authorization failure at any point prints a notice and prompts for
// a new token; other failures are reported inline and the last table
// stays as it was.
package cli
