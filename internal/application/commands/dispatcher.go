package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/teyvatdex/catalog/internal/infrastructure/logger"
	"github.com/teyvatdex/catalog/internal/ports"
)

const farewell = "Goodbye!"

// Dispatcher runs the interactive loop: read a line, split it into a command
// word and argument tokens, find the matching command and execute it. Every
// command failure is rendered and the loop continues; only exit/quit, end of
// input, or an interrupt at the prompt stop it.
//
// The dispatcher and the interactive commands share one Prompter so all input
// flows through a single buffered reader.
type Dispatcher struct {
	registry *Registry
	store    ports.CharacterStore
	renderer ports.Renderer
	prompter ports.Prompter
	log      *logger.Logger
}

// NewDispatcher creates a dispatcher over the given registry and shared
// dependencies. Each dispatcher gets a session id so log entries from one
// interactive run can be correlated.
func NewDispatcher(registry *Registry, store ports.CharacterStore, renderer ports.Renderer, prompter ports.Prompter, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		store:    store,
		renderer: renderer,
		prompter: prompter,
		log:      log.WithComponent("dispatcher").WithFields("session", uuid.NewString()),
	}
}

// splitLine breaks a raw input line into the command word and its argument
// tokens. An empty or blank line yields an empty command word.
func splitLine(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

// HandleLine processes one raw input line and reports whether the loop
// should keep running.
func (d *Dispatcher) HandleLine(line string) bool {
	word, args := splitLine(line)

	// exit/quit terminate the loop before the registry is consulted; they
	// are not registered commands.
	if word == "exit" || word == "quit" {
		return false
	}

	cmd, ok := d.registry.Match(word)
	if !ok {
		d.renderer.Render(fmt.Sprintf("Unknown command: %s", word))
		return true
	}

	d.log.Debugw("dispatching command", "command", word, "args", args)

	// Interrupts are honored at the prompt, not mid-command, so commands
	// run under a background context.
	if err := cmd.Execute(context.Background(), word, args, d.store, d.renderer); err != nil {
		d.log.Warnw("command failed", "command", word, "error", err)
		d.renderer.Render(fmt.Sprintf("Error: %v", err))
	}
	return true
}

// Run prompts for lines until exit/quit, end of input, or ctx cancellation
// while waiting at the prompt.
func (d *Dispatcher) Run(ctx context.Context) error {
	type read struct {
		line string
		err  error
	}

	for {
		ch := make(chan read, 1)
		go func() {
			line, err := d.prompter.Prompt("\n> ")
			ch <- read{line: line, err: err}
		}()

		select {
		case <-ctx.Done():
			d.renderer.Render("")
			d.renderer.Render(farewell)
			return nil
		case res := <-ch:
			if res.err != nil {
				// End of input behaves like exit.
				d.renderer.Render(farewell)
				return nil
			}
			if !d.HandleLine(res.line) {
				d.renderer.Render(farewell)
				return nil
			}
		}
	}
}
