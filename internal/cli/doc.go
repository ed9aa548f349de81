// Package cli implements the storefront command line: the root command opens
// the store window, subcommands cover version output and flag maintenance.
package cli
