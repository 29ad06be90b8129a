package commands_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/teyvatdex/catalog/internal/adapters/storage"
	"github.com/teyvatdex/catalog/internal/domain/entities"
	"github.com/teyvatdex/catalog/internal/infrastructure/logger"
	"github.com/teyvatdex/catalog/internal/ports"
)

func newTestStore(t *testing.T) ports.CharacterStore {
	t.Helper()
	s := storage.NewFileStore(filepath.Join(t.TempDir(), "characters.json"), logger.Nop())
	if err := s.Load(); err != nil {
		t.Fatalf("Load err: %v", err)
	}
	return s
}

type fakeRenderer struct {
	lines []string
}

func (r *fakeRenderer) Render(line string) {
	r.lines = append(r.lines, line)
}

func (r *fakeRenderer) contains(t *testing.T, want string) {
	t.Helper()
	for _, line := range r.lines {
		if line == want {
			return
		}
	}
	t.Fatalf("line %q not rendered; got %q", want, r.lines)
}

type fakePrompter struct {
	responses []string
	err       error
}

func (p *fakePrompter) Prompt(string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if len(p.responses) == 0 {
		return "", io.EOF
	}
	next := p.responses[0]
	p.responses = p.responses[1:]
	return next, nil
}

type fakeAPI struct {
	names   []string
	listErr error
	failFor map[string]bool
}

func (a *fakeAPI) ListCharacterNames(context.Context) ([]string, error) {
	return a.names, a.listErr
}

func (a *fakeAPI) FetchCharacter(_ context.Context, name string) (*ports.CharacterDetail, error) {
	if a.failFor[name] {
		return nil, entities.ErrDetailUnavailable
	}
	return &ports.CharacterDetail{Slug: name, Name: name, Vision: "Anemo", Rarity: 4}, nil
}

func (a *fakeAPI) ToCharacter(detail *ports.CharacterDetail, id int) entities.Character {
	return entities.Character{ID: id, Name: detail.Name, Type: detail.Vision, Health: 100, Attack: 10}
}
