package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/teyvatdex/catalog/internal/infrastructure/logger"
	"github.com/teyvatdex/catalog/internal/ports"
)

// defaultImportCount is used when the requested count does not parse.
const defaultImportCount = 5

// ImportCommand bulk-creates catalog entries from the character API. One
// failed fetch skips that name and the batch continues; only an empty name
// list aborts the import outright. Assigned ids start at max(existing)+1 and
// follow the listing position, so a skipped name leaves a gap.
type ImportCommand struct {
	api      ports.CharacterAPI
	prompter ports.Prompter
	log      *logger.Logger
}

// NewImportCommand creates the import command
func NewImportCommand(api ports.CharacterAPI, prompter ports.Prompter, log *logger.Logger) *ImportCommand {
	return &ImportCommand{
		api:      api,
		prompter: prompter,
		log:      log.WithComponent("import"),
	}
}

func (c *ImportCommand) Selectors() []string {
	return []string{"import", "fetch"}
}

func (c *ImportCommand) Execute(ctx context.Context, _ string, _ []string, store ports.CharacterStore, r ports.Renderer) error {
	r.Render("=== Import characters from API ===")
	r.Render("Fetching character list...")

	names, err := c.api.ListCharacterNames(ctx)
	if err != nil {
		c.log.Warnw("character list fetch failed", "error", err)
		names = nil
	}
	if len(names) == 0 {
		r.Render("❌ Could not fetch characters")
		return nil
	}

	r.Render(fmt.Sprintf("Found %d characters", len(names)))

	count := c.askCount(len(names))
	r.Render(fmt.Sprintf("Downloading %d characters...", count))

	base := 0
	for _, existing := range store.GetAll() {
		if existing.ID > base {
			base = existing.ID
		}
	}

	imported := 0
	for i, name := range names[:count] {
		r.Render(fmt.Sprintf("[%d/%d] Downloading %s...", i+1, count, name))

		detail, err := c.api.FetchCharacter(ctx, name)
		if err != nil {
			c.log.Warnw("fetch failed, skipping", "name", name, "error", err)
			continue
		}

		character := c.api.ToCharacter(detail, base+i+1)
		if err := store.Add(character); err != nil {
			return fmt.Errorf("import %q: %w", name, err)
		}
		imported++
	}

	c.log.Infow("import finished", "requested", count, "imported", imported)
	r.Render(fmt.Sprintf("✓ Successfully imported %d characters!", imported))
	return nil
}

// askCount prompts for how many characters to import. Anything that does not
// parse as an integer falls back to the default; the result is clamped to the
// available count and to zero.
func (c *ImportCommand) askCount(available int) int {
	count := defaultImportCount

	raw, err := c.prompter.Prompt(fmt.Sprintf("How many to import? (1-%d): ", available))
	if err == nil {
		if n, perr := strconv.Atoi(strings.TrimSpace(raw)); perr == nil {
			count = n
		}
	}

	if count > available {
		count = available
	}
	if count < 0 {
		count = 0
	}
	return count
}
