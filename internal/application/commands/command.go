// Package commands holds the interactive command strategies, the registry
// they are looked up in, and the dispatcher loop that drives them. Each
// command declares the selector tokens it answers to; the dispatcher scans
// the registry in registration order and the first match wins.
package commands

import (
	"context"

	"github.com/teyvatdex/catalog/internal/ports"
)

// Command is one interactive command strategy. Selectors returns the
// case-sensitive token aliases the command answers to. Execute receives the
// matched token, the remaining whitespace-split argument tokens, and the
// shared store and renderer.
type Command interface {
	Selectors() []string
	Execute(ctx context.Context, name string, args []string, store ports.CharacterStore, r ports.Renderer) error
}

// Registry keeps commands in registration order.
type Registry struct {
	commands []Command
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends the command. Overlapping selectors are allowed; Match
// resolves them in favor of the earlier registration.
func (r *Registry) Register(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// Match returns the first registered command whose selector set contains
// word. First match wins; this is a contract, not an iteration accident.
func (r *Registry) Match(word string) (Command, bool) {
	for _, cmd := range r.commands {
		for _, sel := range cmd.Selectors() {
			if sel == word {
				return cmd, true
			}
		}
	}
	return nil, false
}
