// Package cli provides the command-line interface for confdoc.
//
// The cli package implements the commands a game-server panel operator uses
// to inspect and edit server configuration files:
//   - detect: Report the format of each file
//   - show: Display a file as sections, or as raw text when it cannot be parsed
//   - get: Print the value of one key
//   - set: Change or add a key and save the file
//   - unset: Remove a key and save the file
//   - fmt: Rewrite files in canonical form
//   - convert: Write a file's settings in another format
//   - edit: Edit a file interactively
//   - config: Display effective configuration and where each value came from
//   - version: Show confdoc version
//
// Every command accepts --json for machine-readable output. Files named in
// the configuration (files: in .confdocrc.yaml, doublestar globs allowed) are
// used when show, fmt or edit are run without arguments.
package cli
