package ports

import (
	"context"

	"github.com/teyvatdex/catalog/internal/domain/entities"
)

// CharacterStore owns the in-memory catalog and its file-backed persistence.
// Add persists synchronously; after a successful Add the in-memory slice and
// the backing file agree.
type CharacterStore interface {
	Load() error
	Save() error
	Add(c entities.Character) error
	GetAll() []entities.Character
	GetByID(id int) (entities.Character, error)
}

// Renderer is the output sink commands write user-facing lines to.
type Renderer interface {
	Render(line string)
}

// Prompter supplies one line of user input per call. Commands that need
// interactive input receive a Prompter at construction so they stay testable
// without a real terminal.
type Prompter interface {
	Prompt(label string) (string, error)
}

// CharacterDetail is the raw shape returned by the character API before it is
// turned into a catalog entry.
type CharacterDetail struct {
	Slug   string `json:"-"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Vision string `json:"vision"`
	Weapon string `json:"weapon"`
	Nation string `json:"nation"`
	Rarity int    `json:"rarity"`
}

// CharacterAPI is the external collaborator the import pipeline talks to.
// ListCharacterNames may legitimately return an empty slice on upstream
// failure; FetchCharacter reports a missing character with
// entities.ErrDetailUnavailable. ToCharacter turns a fetched detail into a
// catalog entry with the caller-assigned id.
type CharacterAPI interface {
	ListCharacterNames(ctx context.Context) ([]string, error)
	FetchCharacter(ctx context.Context, name string) (*CharacterDetail, error)
	ToCharacter(detail *CharacterDetail, id int) entities.Character
}
