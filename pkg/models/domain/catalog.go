package domain

// Country is one orderable destination. SkuID identifies its product in the
// package catalog.
type Country struct {
	ContinentCode int
	CountryCode   int
	Display       string
	ImageURL      string
	Note          string
	Search        string
	SkuID         int
}

// ContinentData groups countries by continent, preserving the upstream
// continent ordering.
type ContinentData struct {
	Continents []string
	Countries  map[string][]Country
}

// PopularCountry is one entry of the curated shortcut list shown above the
// continent navigation.
type PopularCountry struct {
	Name   string
	Search string
	Flag   string
}

// CatalogOverview is the continent catalog with the curated popular
// countries resolved against it.
type CatalogOverview struct {
	ContinentData
	Popular []Country
}
