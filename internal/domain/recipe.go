package domain

// Recipe is a crafting rule: an unordered multiset of ingredient icon ids
// produces a single result icon. Discovered is the only mutable field and
// only ever goes from false to true.
type Recipe struct {
	ID          string   `json:"id"`
	Ingredients []string `json:"ingredients"`
	ResultID    string   `json:"result_id"`
	DisplayName string   `json:"display_name"`
	Discovered  bool     `json:"discovered"`
}

// Clone returns a copy that does not share the ingredient slice
func (r Recipe) Clone() *Recipe {
	ingredients := make([]string, len(r.Ingredients))
	copy(ingredients, r.Ingredients)
	r.Ingredients = ingredients
	return &r
}

// CraftResult is the outcome of submitting ingredients
type CraftResult struct {
	Matched       bool    `json:"matched"`
	Recipe        *Recipe `json:"recipe,omitempty"`
	Result        *Icon   `json:"result,omitempty"`
	NewDiscovery  bool    `json:"new_discovery"`
	NewlyUnlocked bool    `json:"newly_unlocked"`
}
