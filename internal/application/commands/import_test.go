package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/teyvatdex/catalog/internal/application/commands"
	"github.com/teyvatdex/catalog/internal/domain/entities"
	"github.com/teyvatdex/catalog/internal/infrastructure/logger"
	"github.com/teyvatdex/catalog/internal/ports"
)

func runImport(t *testing.T, api *fakeAPI, p *fakePrompter, store ports.CharacterStore, r *fakeRenderer) {
	t.Helper()
	cmd := commands.NewImportCommand(api, p, logger.Nop())
	if err := cmd.Execute(context.Background(), "import", nil, store, r); err != nil {
		t.Fatalf("Execute err: %v", err)
	}
}

func TestImportEmptyListAborts(t *testing.T) {
	store := newTestStore(t)
	r := &fakeRenderer{}
	runImport(t, &fakeAPI{names: nil}, &fakePrompter{responses: []string{"3"}}, store, r)

	if len(store.GetAll()) != 0 {
		t.Fatal("empty list must not mutate the store")
	}
	r.contains(t, "❌ Could not fetch characters")
}

func TestImportListErrorAborts(t *testing.T) {
	store := newTestStore(t)
	r := &fakeRenderer{}
	runImport(t, &fakeAPI{listErr: errors.New("upstream down")}, &fakePrompter{responses: []string{"3"}}, store, r)

	if len(store.GetAll()) != 0 {
		t.Fatal("list failure must not mutate the store")
	}
	r.contains(t, "❌ Could not fetch characters")
}

func TestImportAssignsMaxPlusOffset(t *testing.T) {
	store := newTestStore(t)
	if err := store.Add(entities.Character{ID: 7, Name: "Amber", Type: "Pyro", Health: 800, Attack: 80}); err != nil {
		t.Fatalf("Add err: %v", err)
	}

	api := &fakeAPI{names: []string{"xiao", "keqing", "venti"}}
	r := &fakeRenderer{}
	runImport(t, api, &fakePrompter{responses: []string{"3"}}, store, r)

	all := store.GetAll()
	if len(all) != 4 {
		t.Fatalf("expected 4 records, got %d", len(all))
	}
	for i, wantID := range []int{8, 9, 10} {
		if all[i+1].ID != wantID {
			t.Fatalf("expected ids 8,9,10 in listing order, got %+v", all[1:])
		}
	}
	r.contains(t, "✓ Successfully imported 3 characters!")
}

func TestImportSkipsFailedFetchAndLeavesIDGap(t *testing.T) {
	store := newTestStore(t)
	api := &fakeAPI{
		names:   []string{"xiao", "ghost", "keqing"},
		failFor: map[string]bool{"ghost": true},
	}
	r := &fakeRenderer{}
	runImport(t, api, &fakePrompter{responses: []string{"3"}}, store, r)

	all := store.GetAll()
	if len(all) != 2 {
		t.Fatalf("expected 2 records after one skip, got %d", len(all))
	}
	// Slot 2 belonged to the skipped name; the next success keeps its own
	// listing offset.
	if all[0].ID != 1 || all[1].ID != 3 {
		t.Fatalf("expected ids 1 and 3, got %+v", all)
	}
	r.contains(t, "✓ Successfully imported 2 characters!")
}

func TestImportClampsRequestedCount(t *testing.T) {
	store := newTestStore(t)
	api := &fakeAPI{names: []string{"xiao", "keqing"}}
	r := &fakeRenderer{}
	runImport(t, api, &fakePrompter{responses: []string{"99"}}, store, r)

	if len(store.GetAll()) != 2 {
		t.Fatalf("expected clamp to 2 available names, got %d records", len(store.GetAll()))
	}
}

func TestImportDefaultsToFiveOnBadCount(t *testing.T) {
	store := newTestStore(t)
	api := &fakeAPI{names: []string{"a", "b", "c", "d", "e", "f", "g"}}
	r := &fakeRenderer{}
	runImport(t, api, &fakePrompter{responses: []string{"many"}}, store, r)

	if len(store.GetAll()) != 5 {
		t.Fatalf("expected default of 5 imports, got %d", len(store.GetAll()))
	}
}

func TestImportDefaultsToFiveOnPromptError(t *testing.T) {
	store := newTestStore(t)
	api := &fakeAPI{names: []string{"a", "b", "c", "d", "e", "f", "g"}}
	r := &fakeRenderer{}
	runImport(t, api, &fakePrompter{err: errors.New("no input")}, store, r)

	if len(store.GetAll()) != 5 {
		t.Fatalf("expected default of 5 imports, got %d", len(store.GetAll()))
	}
}

func TestImportZeroCountImportsNothing(t *testing.T) {
	store := newTestStore(t)
	api := &fakeAPI{names: []string{"a", "b"}}
	r := &fakeRenderer{}
	runImport(t, api, &fakePrompter{responses: []string{"0"}}, store, r)

	if len(store.GetAll()) != 0 {
		t.Fatalf("expected no imports for count 0, got %d", len(store.GetAll()))
	}
	r.contains(t, "✓ Successfully imported 0 characters!")
}

func TestImportRendersPerItemProgress(t *testing.T) {
	store := newTestStore(t)
	api := &fakeAPI{names: []string{"xiao", "keqing"}}
	r := &fakeRenderer{}
	runImport(t, api, &fakePrompter{responses: []string{"2"}}, store, r)

	r.contains(t, "[1/2] Downloading xiao...")
	r.contains(t, "[2/2] Downloading keqing...")
}
