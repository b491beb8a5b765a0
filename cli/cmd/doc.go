// Package cmd provides the check subcommand for validating dialplan
// file syntax.
package cmd
