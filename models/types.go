package models

import "errors"

// GDP band labels
const (
	BandLow    = "Low GDP"
	BandMedium = "Medium GDP"
	BandHigh   = "High GDP"
)

// GDP band thresholds. A GDP below LowCeiling is low, a GDP above
// MediumCeiling is high, everything between (inclusive on both ends)
// is medium.
const (
	LowCeiling    = 1e10
	MediumCeiling = 1e11
)

// ErrCountryNotFound is returned when a country name resolves to no row.
var ErrCountryNotFound = errors.New("country not found")

// GDPBand classifies a GDP value into one of the three band labels.
// Deterministic and pure; must agree with the SQL CASE expression and
// the gdp_band engine function for every input, including exact
// boundary values (1e10 is medium, 1e11 is medium).
func GDPBand(gdp float64) string {
	switch {
	case gdp < LowCeiling:
		return BandLow
	case gdp <= MediumCeiling:
		return BandMedium
	default:
		return BandHigh
	}
}

// Domain types

type Continent struct {
	ID   int64
	Name string
}

type Region struct {
	ID          int64
	Name        string
	ContinentID int64
}

type Country struct {
	ID       int64
	Name     string
	RegionID int64
}

type Language struct {
	ID   int64
	Name string
}

type CountryLanguage struct {
	CountryID  int64
	LanguageID int64
	Official   bool
}

type CountryStat struct {
	CountryID  int64
	Year       int
	GDP        float64
	Population int64
}

type CountryDistance struct {
	Origin      int64
	Destination int64
	Distance    float64
}

// Result row types

// CountryLanguageRow is one language linked to a country.
type CountryLanguageRow struct {
	Language string
	Official bool
}

// SpeakerRow is one (country, language) pair from the union query,
// enriched with the country's region. Region may be empty when the
// outer join finds no parent row.
type SpeakerRow struct {
	Country  string
	Region   string
	Language string
}

// MultilingualRow is one country that passed the HAVING threshold.
type MultilingualRow struct {
	Country       string
	LanguageCount int
}

// PopulationRow is one country above the yearly population average.
type PopulationRow struct {
	Country    string
	Population int64
}

// TreeRow is one node of the continent/region/country walk.
type TreeRow struct {
	Kind  string // "continent", "region" or "country"
	Name  string
	Depth int
}

// GDPBandRow is one yearly stat with its band label attached.
type GDPBandRow struct {
	Country string
	Year    int
	GDP     float64
	Band    string
}

// ReportRow is one line of the staged official-language report.
type ReportRow struct {
	Country       string
	Language      string
	OfficialCount int
}
