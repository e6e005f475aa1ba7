package store

// Country is a single entry of the roamwifi continent catalog.
type Country struct {
	ContinentCode int     `json:"continentCode"`
	CountryCode   int     `json:"countryCode"`
	Display       string  `json:"display"`
	ImageURL      string  `json:"imageUrl"`
	Note          *string `json:"note"`
	Search        string  `json:"search"`
	SkuID         int     `json:"skuid"`
}

// ContinentData is the payload of get-sku-list-continent. Continents lists
// the navigable continent names; Data may contain extra keys that are not
// reachable through Continents.
type ContinentData struct {
	Continents []string             `json:"continent"`
	Data       map[string][]Country `json:"data"`
}
