// Package cli contains the Cobra CLI commands for geouuid.
//
// Each command is built by a constructor (NewGenerateCommand,
// NewDecodeCommand) so the binary's main assembles the root command and
// tests can execute commands in isolation with captured output.
package cli
