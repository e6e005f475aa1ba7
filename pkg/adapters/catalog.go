package adapters

import (
	"github.com/dokind/esim-admin/pkg/models/api"
	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/models/store"
)

func MapCountryStoreToDomain(c store.Country) domain.Country {
	note := ""
	if c.Note != nil {
		note = *c.Note
	}
	return domain.Country{
		ContinentCode: c.ContinentCode,
		CountryCode:   c.CountryCode,
		Display:       c.Display,
		ImageURL:      c.ImageURL,
		Note:          note,
		Search:        c.Search,
		SkuID:         c.SkuID,
	}
}

func MapContinentDataStoreToDomain(data store.ContinentData) domain.ContinentData {
	countries := make(map[string][]domain.Country, len(data.Data))
	for continent, list := range data.Data {
		mapped := make([]domain.Country, 0, len(list))
		for _, c := range list {
			mapped = append(mapped, MapCountryStoreToDomain(c))
		}
		countries[continent] = mapped
	}
	return domain.ContinentData{
		Continents: append([]string(nil), data.Continents...),
		Countries:  countries,
	}
}

func MapCountryDomainToApi(c domain.Country, flag string) api.Country {
	return api.Country{
		ContinentCode: c.ContinentCode,
		CountryCode:   c.CountryCode,
		Display:       c.Display,
		ImageURL:      c.ImageURL,
		Note:          c.Note,
		Flag:          flag,
		SkuID:         c.SkuID,
	}
}
