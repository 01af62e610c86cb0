package main

import (
	"fmt"
	"sort"
)

// Command is implemented by every devtool subcommand.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry maps command names to implementations.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// PrintHelp prints usage with commands sorted by name.
func (r *Registry) PrintHelp() {
	names := make([]string, 0, len(r.commands))
	width := 0
	for name := range r.commands {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	fmt.Println("Usage: devtool <command> [args...]")
	fmt.Println("\nAvailable Commands:")
	for _, name := range names {
		fmt.Printf("  %-*s  %s\n", width, name, r.commands[name].Description())
	}
}
