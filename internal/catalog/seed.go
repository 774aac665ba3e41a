package catalog

import "github.com/osse101/IconIdle_Go/internal/domain"

// Icon ids referenced elsewhere in code (recipes, hidden challenge rewards)
const (
	IconGrain       = "grain"
	IconForest      = "forest"
	IconWater       = "water"
	IconStone       = "stone"
	IconSeed        = "seed"
	IconSun         = "sun"
	IconCloud       = "cloud"
	IconSand        = "sand"
	IconWood        = "wood"
	IconLeaf        = "leaf"
	IconHardware    = "hardware"
	IconFire        = "fire"
	IconBread       = "bread"
	IconTree        = "tree"
	IconRain        = "rain"
	IconBrick       = "brick"
	IconFlower      = "flower"
	IconGlass       = "glass"
	IconHouse       = "house"
	IconRainbow     = "rainbow"
	IconGarden      = "garden"
	IconTractor     = "tractor"
	IconLighthouse  = "lighthouse"
	IconCastle      = "castle"
	IconCrown       = "crown"
	IconPhoenix     = "phoenix"
	IconBattery0Bar = "battery_0_bar"
	IconBatteryFull = "battery_full"
	IconPlug        = "plug"
	IconMute        = "volume_off"
	IconVolumeMax   = "volume_max"
	IconUpsideDown  = "upside_down"
	IconLandscape   = "screen_rotation"
	IconAirplane    = "airplane_mode"
	IconWifi        = "wifi"
	IconCellTower   = "cell_tower"
)

// DefaultIcons is the compiled-in icon table in catalog order
func DefaultIcons() []domain.Icon {
	return []domain.Icon{
		{ID: IconGrain, DisplayName: "Grain", Rarity: domain.RarityCommon},
		{ID: IconForest, DisplayName: "Forêt", Rarity: domain.RarityCommon},
		{ID: IconWater, DisplayName: "Eau", Rarity: domain.RarityCommon},
		{ID: IconStone, DisplayName: "Pierre", Rarity: domain.RarityCommon},
		{ID: IconSeed, DisplayName: "Graine", Rarity: domain.RarityCommon},
		{ID: IconSun, DisplayName: "Soleil", Rarity: domain.RarityCommon},
		{ID: IconCloud, DisplayName: "Nuage", Rarity: domain.RarityCommon},
		{ID: IconSand, DisplayName: "Sable", Rarity: domain.RarityCommon},
		{ID: IconWood, DisplayName: "Bois", Rarity: domain.RarityCommon},
		{ID: IconLeaf, DisplayName: "Feuille", Rarity: domain.RarityCommon},

		{ID: IconHardware, DisplayName: "Quincaillerie", Rarity: domain.RarityUncommon},
		{ID: IconFire, DisplayName: "Feu", Rarity: domain.RarityUncommon},
		{ID: IconBread, DisplayName: "Pain", Rarity: domain.RarityUncommon},
		{ID: IconTree, DisplayName: "Arbre", Rarity: domain.RarityUncommon},
		{ID: IconRain, DisplayName: "Pluie", Rarity: domain.RarityUncommon},
		{ID: IconBrick, DisplayName: "Brique", Rarity: domain.RarityUncommon},
		{ID: IconFlower, DisplayName: "Fleur", Rarity: domain.RarityUncommon},
		{ID: IconGlass, DisplayName: "Verre", Rarity: domain.RarityUncommon},

		{ID: IconHouse, DisplayName: "Maison", Rarity: domain.RarityRare},
		{ID: IconRainbow, DisplayName: "Arc-en-ciel", Rarity: domain.RarityRare},
		{ID: IconGarden, DisplayName: "Potager", Rarity: domain.RarityRare},
		{ID: IconTractor, DisplayName: "Tracteur", Rarity: domain.RarityRare},
		{ID: IconLighthouse, DisplayName: "Phare", Rarity: domain.RarityRare},

		{ID: IconCastle, DisplayName: "Château", Rarity: domain.RarityLegendary},
		{ID: IconCrown, DisplayName: "Couronne", Rarity: domain.RarityLegendary},
		{ID: IconPhoenix, DisplayName: "Phénix", Rarity: domain.RarityLegendary},

		// hidden challenge rewards
		{ID: IconBattery0Bar, DisplayName: "Batterie vide", Rarity: domain.RarityRare, Hidden: true},
		{ID: IconBatteryFull, DisplayName: "Batterie pleine", Rarity: domain.RarityRare, Hidden: true},
		{ID: IconPlug, DisplayName: "Prise", Rarity: domain.RarityUncommon, Hidden: true},
		{ID: IconMute, DisplayName: "Silence", Rarity: domain.RarityUncommon, Hidden: true},
		{ID: IconVolumeMax, DisplayName: "Volume à fond", Rarity: domain.RarityUncommon, Hidden: true},
		{ID: IconUpsideDown, DisplayName: "Tête en bas", Rarity: domain.RarityRare, Hidden: true},
		{ID: IconLandscape, DisplayName: "Paysage", Rarity: domain.RarityUncommon, Hidden: true},
		{ID: IconAirplane, DisplayName: "Mode avion", Rarity: domain.RarityLegendary, Hidden: true},
		{ID: IconWifi, DisplayName: "Wi-Fi", Rarity: domain.RarityUncommon, Hidden: true},
		{ID: IconCellTower, DisplayName: "Antenne relais", Rarity: domain.RarityUncommon, Hidden: true},
	}
}
