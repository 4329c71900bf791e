package commands

import (
	"sort"
	"strings"
)

// SlashCommand describes one command the user can type into the composer.
type SlashCommand struct {
	name        string
	description string
}

// New creates a slash command. The name is stored as given; callers that
// render it are expected to strip a leading slash.
func New(name, description string) SlashCommand {
	return SlashCommand{name: name, description: description}
}

func (c SlashCommand) Name() string {
	return c.name
}

func (c SlashCommand) Description() string {
	return c.description
}

// Names of the built-in commands.
const (
	CmdNew    = "new"
	CmdClear  = "clear"
	CmdCopy   = "copy"
	CmdStatus = "status"
	CmdHelp   = "help"
	CmdQuit   = "quit"
)

// Registry is a read-only set of slash commands keyed by name.
type Registry struct {
	cmds map[string]SlashCommand
}

// NewRegistry builds a registry from the given commands. A later command with
// the same name replaces an earlier one.
func NewRegistry(cmds ...SlashCommand) *Registry {
	r := &Registry{cmds: make(map[string]SlashCommand, len(cmds))}
	for _, c := range cmds {
		r.cmds[strings.TrimPrefix(c.name, "/")] = c
	}
	return r
}

// BuiltIn returns the registry of commands every session starts with.
func BuiltIn() *Registry {
	return NewRegistry(
		New(CmdNew, "Start a new chat"),
		New(CmdClear, "Clear the transcript"),
		New(CmdCopy, "Copy the last reply to the clipboard"),
		New(CmdStatus, "Show the current session settings"),
		New(CmdHelp, "Show available commands and shortcuts"),
		New(CmdQuit, "Exit the application"),
	)
}

// Commands returns a copy of the registered commands. Iteration order is
// unspecified.
func (r *Registry) Commands() map[string]SlashCommand {
	out := make(map[string]SlashCommand, len(r.cmds))
	for k, v := range r.cmds {
		out[k] = v
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.cmds)
}

// Lookup finds a command by name, with or without the leading slash.
func (r *Registry) Lookup(name string) (SlashCommand, bool) {
	c, ok := r.cmds[strings.TrimPrefix(name, "/")]
	return c, ok
}

// Complete returns the sorted names of all commands starting with prefix.
func (r *Registry) Complete(prefix string) []string {
	prefix = strings.TrimPrefix(strings.TrimSpace(prefix), "/")
	var out []string
	for name := range r.cmds {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Parse splits a composer line of the form "/name args..." into the command
// name and its trailing arguments. ok is false when the line is not a slash
// command at all.
func Parse(line string) (name string, args string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return "", "", false
	}
	rest := strings.TrimSpace(line[1:])
	if rest == "" {
		return "", "", false
	}
	name, args, _ = strings.Cut(rest, " ")
	return name, strings.TrimSpace(args), true
}

// Sorted returns the commands ordered by name.
func (r *Registry) Sorted() []SlashCommand {
	out := make([]SlashCommand, 0, len(r.cmds))
	for _, c := range r.cmds {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.TrimPrefix(out[i].name, "/") < strings.TrimPrefix(out[j].name, "/")
	})
	return out
}
