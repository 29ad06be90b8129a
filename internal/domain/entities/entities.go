package entities

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrDetailUnavailable = errors.New("character detail unavailable")
)

// Character represents one catalog entry. The id is assigned by the caller
// and never changes after creation; there is no update path in this tool.
type Character struct {
	ID       int    `json:"id" validate:"gt=0"`
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Health   int    `json:"health" validate:"gte=0"`
	Attack   int    `json:"attack" validate:"gte=0"`
	ImageURL string `json:"image_url"`
}

// Summary returns the single-line form used by catalog listings.
func (c Character) Summary() string {
	return fmt.Sprintf("%d. %s (%s) - HP: %d, ATK: %d", c.ID, c.Name, c.Type, c.Health, c.Attack)
}
