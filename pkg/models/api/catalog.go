package api

// Country is one destination entry of the continents response.
type Country struct {
	ContinentCode int    `json:"continent_code"`
	CountryCode   int    `json:"country_code"`
	Display       string `json:"display"`
	ImageURL      string `json:"image_url,omitempty"`
	Note          string `json:"note,omitempty"`
	Flag          string `json:"flag"`
	SkuID         int    `json:"skuid"`
}

// ContinentsResponse is the full catalog browse payload: ordered continent
// names, their countries, and the resolved popular shortcuts.
type ContinentsResponse struct {
	Continents []string             `json:"continents"`
	Countries  map[string][]Country `json:"countries"`
	Popular    []Country            `json:"popular"`
}
