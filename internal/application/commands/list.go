package commands

import (
	"context"

	"github.com/teyvatdex/catalog/internal/ports"
)

// ListCommand prints every catalog entry in insertion order.
type ListCommand struct{}

// NewListCommand creates the list command
func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (c *ListCommand) Selectors() []string {
	return []string{"list", "ls"}
}

func (c *ListCommand) Execute(_ context.Context, _ string, _ []string, store ports.CharacterStore, r ports.Renderer) error {
	characters := store.GetAll()
	if len(characters) == 0 {
		r.Render("Catalog is empty")
		return nil
	}

	r.Render("=== Character catalog ===")
	for _, character := range characters {
		r.Render(character.Summary())
	}
	return nil
}
