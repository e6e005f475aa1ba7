package roamwifi

import "github.com/dokind/esim-admin/pkg/models/store"

// DefaultCatalog is the minimal dataset served when both catalog tiers are
// down. It covers the popular Asian destinations so the dashboard is never
// blank.
func DefaultCatalog() *store.ContinentData {
	return &store.ContinentData{
		Continents: []string{"Asia", "Europe", "Africa"},
		Data: map[string][]store.Country{
			"Asia": {
				{ContinentCode: 1, CountryCode: 156, Display: "China", Search: "China", SkuID: 155},
				{ContinentCode: 1, CountryCode: 392, Display: "Japan", Search: "Japan", SkuID: 26},
				{ContinentCode: 1, CountryCode: 410, Display: "South Korea", Search: "Korea", SkuID: 16},
				{ContinentCode: 1, CountryCode: 764, Display: "Thailand", Search: "Thailand", SkuID: 15},
				{ContinentCode: 1, CountryCode: 704, Display: "Vietnam", Search: "Vietnam", SkuID: 39},
				{ContinentCode: 1, CountryCode: 702, Display: "Singapore", Search: "Singapore", SkuID: 10},
				{ContinentCode: 1, CountryCode: 458, Display: "Malaysia", Search: "Malaysia", SkuID: 13},
				{ContinentCode: 1, CountryCode: 360, Display: "Indonesia", Search: "Indonesia", SkuID: 14},
			},
		},
	}
}
