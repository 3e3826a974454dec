package domain

// Species identifies a supported houseplant species.
type Species string

const (
	SpeciesPothos           Species = "pothos"
	SpeciesMonstera         Species = "monstera"
	SpeciesSpiderPlant      Species = "spider-plant"
	SpeciesSnakePlant       Species = "snake-plant"
	SpeciesRubberPlant      Species = "rubber-plant"
	SpeciesPeaceLily        Species = "peace-lily"
	SpeciesZzPlant          Species = "zz-plant"
	SpeciesPhilodendron     Species = "philodendron"
	SpeciesDracaena         Species = "dracaena"
	SpeciesAloeVera         Species = "aloe-vera"
	SpeciesFiddleLeafFig    Species = "fiddle-leaf-fig"
	SpeciesChineseEvergreen Species = "chinese-evergreen"
	SpeciesBostonFern       Species = "boston-fern"
	SpeciesJadePlant        Species = "jade-plant"
	SpeciesEnglishIvy       Species = "english-ivy"
)

func (s Species) String() string {
	return string(s)
}

// DayRange is an inclusive interval of whole days.
type DayRange struct {
	Minimum int
	Maximum int
}

// SeasonalRange holds a day range for the growing season and one for the
// dormant season.
type SeasonalRange struct {
	InSeason    DayRange
	OutOfSeason DayRange
}

func (r SeasonalRange) ForSeason(inSeason bool) DayRange {
	if inSeason {
		return r.InSeason
	}
	return r.OutOfSeason
}

// SpeciesCareProfile holds the static care parameters for a species.
// Fertilizing intervals are carried as data only; no scheduling keys off them.
type SpeciesCareProfile struct {
	Watering    SeasonalRange
	Fertilizing SeasonalRange
}

// careProfiles is the static catalog of supported species. Loaded once,
// never mutated.
var careProfiles = map[Species]SpeciesCareProfile{
	SpeciesMonstera: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{14, 21}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesPothos: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{14, 21}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesSpiderPlant: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{10, 14}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesSnakePlant: {
		Watering:    SeasonalRange{InSeason: DayRange{14, 21}, OutOfSeason: DayRange{28, 42}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesRubberPlant: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{14, 21}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesPeaceLily: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{10, 14}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesZzPlant: {
		Watering:    SeasonalRange{InSeason: DayRange{14, 21}, OutOfSeason: DayRange{28, 42}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesPhilodendron: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{10, 14}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesDracaena: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{14, 21}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesAloeVera: {
		Watering:    SeasonalRange{InSeason: DayRange{14, 21}, OutOfSeason: DayRange{28, 42}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesFiddleLeafFig: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{10, 14}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesChineseEvergreen: {
		Watering:    SeasonalRange{InSeason: DayRange{7, 10}, OutOfSeason: DayRange{14, 21}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesBostonFern: {
		Watering:    SeasonalRange{InSeason: DayRange{2, 3}, OutOfSeason: DayRange{3, 5}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesJadePlant: {
		Watering:    SeasonalRange{InSeason: DayRange{14, 21}, OutOfSeason: DayRange{28, 42}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
	SpeciesEnglishIvy: {
		Watering:    SeasonalRange{InSeason: DayRange{5, 7}, OutOfSeason: DayRange{7, 10}},
		Fertilizing: SeasonalRange{InSeason: DayRange{14, 28}, OutOfSeason: DayRange{28, 35}},
	},
}

// CareProfileFor returns the care profile for the given species.
func CareProfileFor(species Species) (SpeciesCareProfile, error) {
	profile, ok := careProfiles[species]
	if !ok {
		return SpeciesCareProfile{}, ErrUnknownSpecies
	}
	return profile, nil
}

// KnownSpecies returns all species present in the catalog.
func KnownSpecies() []Species {
	species := make([]Species, 0, len(careProfiles))
	for s := range careProfiles {
		species = append(species, s)
	}
	return species
}
