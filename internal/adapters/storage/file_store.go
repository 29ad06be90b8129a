package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/teyvatdex/catalog/internal/domain/entities"
	"github.com/teyvatdex/catalog/internal/infrastructure/logger"
	"github.com/teyvatdex/catalog/internal/ports"
)

// FileStore implements the CharacterStore interface backed by a single JSON
// file. The whole catalog is rewritten in place on every mutation; there is no
// incremental persistence and no temp-file-then-rename step.
type FileStore struct {
	path       string
	characters []entities.Character
	validate   *validator.Validate
	log        *logger.Logger
}

// NewFileStore creates a file-backed character store
func NewFileStore(path string, log *logger.Logger) ports.CharacterStore {
	return &FileStore{
		path:     path,
		validate: validator.New(),
		log:      log.WithComponent("storage"),
	}
}

// Load reads the backing file into memory. A missing file means an empty
// catalog; a present but unreadable or invalid file is an error the caller is
// expected to treat as fatal.
func (s *FileStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.characters = nil
			s.log.Debugw("catalog file absent, starting empty", "path", s.path)
			return nil
		}
		return fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse catalog %s: %w", s.path, err)
	}

	characters := make([]entities.Character, 0, len(raw))
	for i, rec := range raw {
		c, err := decodeRecord(rec)
		if err != nil {
			return fmt.Errorf("invalid record %d in catalog %s: %w", i, s.path, err)
		}
		if err := s.validate.Struct(c); err != nil {
			return fmt.Errorf("invalid record %d in catalog %s: %w", i, s.path, err)
		}
		characters = append(characters, c)
	}

	s.characters = characters
	s.log.Debugw("catalog loaded", "path", s.path, "records", len(characters))
	return nil
}

// decodeRecord decodes one catalog entry. Every field except image_url must
// be present in the JSON object; an explicit zero and an absent key are not
// the same thing.
func decodeRecord(rec json.RawMessage) (entities.Character, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rec, &fields); err != nil {
		return entities.Character{}, err
	}

	for _, key := range []string{"id", "name", "type", "health", "attack"} {
		if _, ok := fields[key]; !ok {
			return entities.Character{}, fmt.Errorf("missing required field %q", key)
		}
	}

	var c entities.Character
	if err := json.Unmarshal(rec, &c); err != nil {
		return entities.Character{}, err
	}
	return c, nil
}

// Save writes the in-memory catalog back to the file as an indented JSON
// array, overwriting whatever is there.
func (s *FileStore) Save() error {
	records := s.characters
	if records == nil {
		records = []entities.Character{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write catalog %s: %w", s.path, err)
	}

	s.log.Debugw("catalog saved", "path", s.path, "records", len(records))
	return nil
}

// Add appends the character and persists immediately. The in-memory append is
// not rolled back when the write fails.
func (s *FileStore) Add(c entities.Character) error {
	s.characters = append(s.characters, c)
	if err := s.Save(); err != nil {
		return fmt.Errorf("add character %q: %w", c.Name, err)
	}
	return nil
}

// GetAll returns the catalog in insertion order.
func (s *FileStore) GetAll() []entities.Character {
	return append([]entities.Character(nil), s.characters...)
}

// GetByID returns the first character with the given id.
func (s *FileStore) GetByID(id int) (entities.Character, error) {
	for _, c := range s.characters {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Character{}, entities.ErrCharacterNotFound
}
