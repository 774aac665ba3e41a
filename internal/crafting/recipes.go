package crafting

import (
	"github.com/osse101/IconIdle_Go/internal/catalog"
	"github.com/osse101/IconIdle_Go/internal/domain"
)

type recipeSeed struct {
	id          string
	ingredients []string
	result      string
	displayName string
}

// recipeSeeds is the compiled-in recipe table. Order matters: on an
// identical multiset the earlier entry wins.
var recipeSeeds = []recipeSeed{
	{"recipe_tree", []string{catalog.IconSeed, catalog.IconWater}, catalog.IconTree, "Arbre"},
	{"recipe_fire", []string{catalog.IconWood, catalog.IconStone}, catalog.IconFire, "Feu de camp"},
	{"recipe_rain", []string{catalog.IconCloud, catalog.IconWater}, catalog.IconRain, "Averse"},
	{"recipe_bread", []string{catalog.IconGrain, catalog.IconGrain, catalog.IconFire}, catalog.IconBread, "Pain"},
	{"recipe_brick", []string{catalog.IconStone, catalog.IconFire}, catalog.IconBrick, "Brique"},
	{"recipe_glass", []string{catalog.IconSand, catalog.IconFire}, catalog.IconGlass, "Verre"},
	{"recipe_flower", []string{catalog.IconSeed, catalog.IconSun, catalog.IconWater}, catalog.IconFlower, "Fleur"},
	{"recipe_lumber", []string{catalog.IconForest, catalog.IconHardware}, catalog.IconWood, "Scierie"},
	{"recipe_tractor", []string{catalog.IconForest, catalog.IconForest, catalog.IconHardware}, catalog.IconTractor, "Tracteur"},
	{"recipe_rainbow", []string{catalog.IconRain, catalog.IconSun}, catalog.IconRainbow, "Arc-en-ciel"},
	{"recipe_house", []string{catalog.IconBrick, catalog.IconBrick, catalog.IconWood}, catalog.IconHouse, "Maison"},
	{"recipe_garden", []string{catalog.IconFlower, catalog.IconSeed, catalog.IconWater, catalog.IconGrain}, catalog.IconGarden, "Potager"},
	{"recipe_lighthouse", []string{catalog.IconGlass, catalog.IconFire, catalog.IconStone}, catalog.IconLighthouse, "Phare"},
	{"recipe_crown", []string{catalog.IconHardware, catalog.IconGlass, catalog.IconSun}, catalog.IconCrown, "Couronne"},
	{"recipe_castle", []string{catalog.IconHouse, catalog.IconBrick, catalog.IconBrick, catalog.IconStone}, catalog.IconCastle, "Château"},
	{"recipe_phoenix", []string{catalog.IconFire, catalog.IconFire, catalog.IconFire, catalog.IconRainbow}, catalog.IconPhoenix, "Phénix"},
}

// DefaultRecipes returns fresh, undiscovered copies of the compiled-in recipes
func DefaultRecipes() []*domain.Recipe {
	out := make([]*domain.Recipe, 0, len(recipeSeeds))
	for _, s := range recipeSeeds {
		ingredients := make([]string, len(s.ingredients))
		copy(ingredients, s.ingredients)
		out = append(out, &domain.Recipe{
			ID:          s.id,
			Ingredients: ingredients,
			ResultID:    s.result,
			DisplayName: s.displayName,
		})
	}
	return out
}
