package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/teyvatdex/catalog/internal/domain/entities"
	"github.com/teyvatdex/catalog/internal/ports"
)

// ShowCommand prints the detail block for one character by id.
type ShowCommand struct{}

// NewShowCommand creates the show command
func NewShowCommand() *ShowCommand {
	return &ShowCommand{}
}

func (c *ShowCommand) Selectors() []string {
	return []string{"show", "view"}
}

func (c *ShowCommand) Execute(_ context.Context, _ string, args []string, store ports.CharacterStore, r ports.Renderer) error {
	if len(args) == 0 {
		r.Render("Error: provide a character ID")
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("character id must be an integer, got %q", args[0])
	}

	character, err := store.GetByID(id)
	if err != nil {
		if errors.Is(err, entities.ErrCharacterNotFound) {
			r.Render("Character not found")
			return nil
		}
		return err
	}

	r.Render(fmt.Sprintf("\n=== %s ===", character.Name))
	r.Render(fmt.Sprintf("ID: %d", character.ID))
	r.Render(fmt.Sprintf("Type: %s", character.Type))
	r.Render(fmt.Sprintf("Health: %d", character.Health))
	r.Render(fmt.Sprintf("Attack: %d", character.Attack))
	if character.ImageURL != "" {
		r.Render(fmt.Sprintf("Image: %s", character.ImageURL))
	}
	return nil
}
