package commands

import (
	"context"

	"github.com/teyvatdex/catalog/internal/ports"
)

const helpText = `
=== Available commands ===
list, ls       - Show all characters
add, create    - Add a new character
show <id>      - Show character details
import, fetch  - Import characters from the API
help, ?        - Show this help
exit, quit     - Exit the program
`

// HelpCommand prints the static command reference.
type HelpCommand struct{}

// NewHelpCommand creates the help command
func NewHelpCommand() *HelpCommand {
	return &HelpCommand{}
}

func (c *HelpCommand) Selectors() []string {
	return []string{"help", "?"}
}

func (c *HelpCommand) Execute(_ context.Context, _ string, _ []string, _ ports.CharacterStore, r ports.Renderer) error {
	r.Render(helpText)
	return nil
}
