package achievement

import (
	"github.com/minjae-ko/habitquest/internal/domain"
)

// Category groups catalog entries by what they measure.
type Category string

const (
	CategoryMission Category = "MISSION"
	CategoryStreak  Category = "STREAK"
	CategoryPoints  Category = "POINTS"
	CategorySpecial Category = "SPECIAL"
)

// Definition is one catalog entry. Threshold is the aggregate count at which
// the achievement unlocks; FIRST_MISSION uses 1.
type Definition struct {
	Type      domain.AchievementType
	Name      string
	Rarity    domain.AchievementRarity
	Category  Category
	Threshold int
}

// SpecialistThreshold is the per-category completion count the specialist
// achievements unlock at.
const SpecialistThreshold = 10

// Catalog is the fixed achievement list in display order. Position within the
// slice breaks rarity ties when sorting.
var Catalog = []Definition{
	{Type: domain.AchFirstMission, Name: "First Steps", Rarity: domain.RarityCommon, Category: CategoryMission, Threshold: 1},
	{Type: domain.AchMissions10, Name: "Getting Serious", Rarity: domain.RarityCommon, Category: CategoryMission, Threshold: 10},
	{Type: domain.AchMissions50, Name: "Habit Machine", Rarity: domain.RarityRare, Category: CategoryMission, Threshold: 50},
	{Type: domain.AchMissions100, Name: "Centurion", Rarity: domain.RarityEpic, Category: CategoryMission, Threshold: 100},
	{Type: domain.AchStreak3, Name: "Warming Up", Rarity: domain.RarityCommon, Category: CategoryStreak, Threshold: 3},
	{Type: domain.AchStreak7, Name: "Full Week", Rarity: domain.RarityRare, Category: CategoryStreak, Threshold: 7},
	{Type: domain.AchStreak30, Name: "Iron Will", Rarity: domain.RarityLegendary, Category: CategoryStreak, Threshold: 30},
	{Type: domain.AchPoints1000, Name: "Point Collector", Rarity: domain.RarityRare, Category: CategoryPoints, Threshold: 1000},
	{Type: domain.AchPoints10000, Name: "Point Hoarder", Rarity: domain.RarityMythic, Category: CategoryPoints, Threshold: 10000},
	{Type: domain.AchHealthSpecialist, Name: "Health Specialist", Rarity: domain.RarityEpic, Category: CategorySpecial, Threshold: SpecialistThreshold},
	{Type: domain.AchCreativeArtist, Name: "Creative Artist", Rarity: domain.RarityEpic, Category: CategorySpecial, Threshold: SpecialistThreshold},
	{Type: domain.AchSocialButterfly, Name: "Social Butterfly", Rarity: domain.RarityEpic, Category: CategorySpecial, Threshold: SpecialistThreshold},
}

// catalogIndex maps type to position in Catalog for sorting and lookup.
var catalogIndex = func() map[domain.AchievementType]int {
	idx := make(map[domain.AchievementType]int, len(Catalog))
	for i, def := range Catalog {
		idx[def.Type] = i
	}
	return idx
}()

// Lookup returns the catalog entry for a type.
func Lookup(t domain.AchievementType) (Definition, bool) {
	i, ok := catalogIndex[t]
	if !ok {
		return Definition{}, false
	}
	return Catalog[i], true
}

// specialistCategory maps specialist achievements to the mission category they
// count.
var specialistCategory = map[domain.AchievementType]domain.MissionCategory{
	domain.AchHealthSpecialist: domain.CategoryHealth,
	domain.AchCreativeArtist:   domain.CategoryCreative,
	domain.AchSocialButterfly:  domain.CategorySocial,
}
