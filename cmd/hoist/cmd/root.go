// Package cmd implements the hoist CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (init, component).
package cmd

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "hoist",
	Short: "hoist - component host runtime tooling",
	Long: `hoist scaffolds and configures projects built on the hoist
component host runtime.

Use "hoist <command> --help" for more information about a command.`,
	Usage: "hoist <command> [flags]",
}

// Commands registered with the CLI, in registration order for help output.
var (
	commands    = make(map[string]*Command)
	commandList []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	commandList = append(commandList, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		if len(args) > 1 {
			if cmd, ok := commands[args[1]]; ok {
				printHelp(cmd)
				return nil
			}
		}
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("hoist %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		printHelp(rootCmd)
		return fmt.Errorf("unknown command %q", args[0])
	}

	rest := args[1:]
	for _, a := range rest {
		if a == "-h" || a == "--help" {
			printHelp(cmd)
			return nil
		}
	}
	return cmd.Run(rest)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Short)
	if cmd.Long != "" {
		fmt.Println()
		fmt.Println(cmd.Long)
	}
	fmt.Println()
	fmt.Printf("Usage:\n  %s\n", cmd.Usage)
	if cmd == rootCmd && len(commandList) > 0 {
		fmt.Println()
		fmt.Println("Commands:")
		for _, sub := range commandList {
			fmt.Printf("  %-12s %s\n", sub.Name, sub.Short)
		}
	}
}
