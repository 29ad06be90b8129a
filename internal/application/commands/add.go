package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/teyvatdex/catalog/internal/domain/entities"
	"github.com/teyvatdex/catalog/internal/ports"
)

// AddCommand creates one catalog entry from interactive field-by-field input.
// The new id is count+1 at the time of the call; the import command uses
// max+1 instead and the two are deliberately not unified.
type AddCommand struct {
	prompter ports.Prompter
}

// NewAddCommand creates the add command
func NewAddCommand(prompter ports.Prompter) *AddCommand {
	return &AddCommand{prompter: prompter}
}

func (c *AddCommand) Selectors() []string {
	return []string{"add", "create"}
}

func (c *AddCommand) Execute(_ context.Context, _ string, _ []string, store ports.CharacterStore, r ports.Renderer) error {
	r.Render("=== Create character ===")

	name, err := c.prompter.Prompt("Name: ")
	if err != nil {
		return fmt.Errorf("read name: %w", err)
	}
	charType, err := c.prompter.Prompt("Type (warrior/mage/archer): ")
	if err != nil {
		return fmt.Errorf("read type: %w", err)
	}

	rawHealth, err := c.prompter.Prompt("Health: ")
	if err != nil {
		return fmt.Errorf("read health: %w", err)
	}
	health, err := strconv.Atoi(rawHealth)
	if err != nil {
		return fmt.Errorf("health must be an integer, got %q", rawHealth)
	}

	rawAttack, err := c.prompter.Prompt("Attack: ")
	if err != nil {
		return fmt.Errorf("read attack: %w", err)
	}
	attack, err := strconv.Atoi(rawAttack)
	if err != nil {
		return fmt.Errorf("attack must be an integer, got %q", rawAttack)
	}

	imageURL, err := c.prompter.Prompt("Image URL (optional): ")
	if err != nil {
		return fmt.Errorf("read image url: %w", err)
	}

	character := entities.Character{
		ID:       len(store.GetAll()) + 1,
		Name:     name,
		Type:     charType,
		Health:   health,
		Attack:   attack,
		ImageURL: imageURL,
	}

	if err := store.Add(character); err != nil {
		return err
	}

	r.Render(fmt.Sprintf("✓ Character '%s' created!", name))
	return nil
}
