package crafting

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/IconIdle_Go/internal/domain"
)

// registered pairs a recipe with its ingredients pre-sorted for matching
type registered struct {
	recipe *domain.Recipe
	sorted []string
}

// Registry owns crafting rules in registration order and resolves
// ingredient submissions by multiset equality.
type Registry struct {
	mu      sync.RWMutex
	recipes []registered
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry creates a registry loaded with DefaultRecipes
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, recipe := range DefaultRecipes() {
		r.Register(recipe)
	}
	return r
}

// Register appends a recipe. nil recipes and empty ids are ignored.
// Duplicates are kept; an identical multiset is shadowed by the earlier recipe.
func (r *Registry) Register(recipe *domain.Recipe) {
	if recipe == nil || recipe.ID == "" {
		return
	}

	stored := recipe.Clone()
	entry := registered{recipe: stored, sorted: sortedCopy(stored.Ingredients)}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.recipes {
		if existing.recipe.ID == stored.ID {
			slog.Default().Warn(LogMsgDuplicateRecipeID, "recipe_id", stored.ID)
		}
		if slices.Equal(existing.sorted, entry.sorted) {
			slog.Default().Warn(LogMsgDuplicateMultiset,
				"recipe_id", stored.ID,
				"shadowed_by", existing.recipe.ID,
				"ingredients", strings.Join(entry.sorted, ","))
		}
	}
	r.recipes = append(r.recipes, entry)
}

// FindMatch returns the first recipe, in registration order, whose
// ingredients equal the submission as a multiset. No match is not an error.
func (r *Registry) FindMatch(ingredients []string) (*domain.Recipe, bool) {
	query := sortedCopy(ingredients)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.recipes {
		if len(entry.sorted) != len(query) {
			continue
		}
		if slices.Equal(entry.sorted, query) {
			return entry.recipe.Clone(), true
		}
	}
	return nil, false
}

// MarkDiscovered flips the discovery flag of every recipe with id.
// It reports whether any flag changed; unknown ids are a no-op.
func (r *Registry) MarkDiscovered(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := false
	for _, entry := range r.recipes {
		if entry.recipe.ID == id && !entry.recipe.Discovered {
			entry.recipe.Discovered = true
			changed = true
		}
	}
	return changed
}

// ListDiscovered returns discovered recipes in registration order
func (r *Registry) ListDiscovered() []*domain.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Recipe, 0)
	for _, entry := range r.recipes {
		if entry.recipe.Discovered {
			out = append(out, entry.recipe.Clone())
		}
	}
	return out
}

// DiscoveredIDs returns the ids of discovered recipes without repeats
func (r *Registry) DiscoveredIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, entry := range r.recipes {
		if entry.recipe.Discovered && !seen[entry.recipe.ID] {
			seen[entry.recipe.ID] = true
			ids = append(ids, entry.recipe.ID)
		}
	}
	return ids
}

// All returns every recipe in registration order
func (r *Registry) All() []*domain.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Recipe, len(r.recipes))
	for i, entry := range r.recipes {
		out[i] = entry.recipe.Clone()
	}
	return out
}

// Get returns the first recipe registered under id
func (r *Registry) Get(id string) (*domain.Recipe, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.recipes {
		if entry.recipe.ID == id {
			return entry.recipe.Clone(), true
		}
	}
	return nil, false
}

// Len returns the number of registered recipes
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recipes)
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	slices.Sort(out)
	return out
}
