package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dokind/esim-admin/pkg/adapters"
	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/models/store"
)

// Fetcher is the catalog side of the roamwifi client.
type Fetcher interface {
	FetchCatalog(ctx context.Context) (store.ContinentData, error)
}

// Explorer serves the continent browse screen.
type Explorer interface {
	Overview(ctx context.Context) (domain.CatalogOverview, error)
	FlagFor(countryName string) string
}

type catalogExplorer struct {
	fetcher Fetcher
	popular []domain.PopularCountry
}

func NewExplorer(fetcher Fetcher, popular []domain.PopularCountry) Explorer {
	return &catalogExplorer{fetcher: fetcher, popular: popular}
}

func (e *catalogExplorer) Overview(ctx context.Context) (domain.CatalogOverview, error) {
	raw, err := e.fetcher.FetchCatalog(ctx)
	if err != nil {
		return domain.CatalogOverview{}, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	data := adapters.MapContinentDataStoreToDomain(raw)
	return domain.CatalogOverview{
		ContinentData: data,
		Popular:       MatchPopular(data, e.popular),
	}, nil
}

// FlagFor returns the curated flag of the first popular entry whose search
// term appears in the country name, or the globe fallback.
func (e *catalogExplorer) FlagFor(countryName string) string {
	name := strings.ToLower(countryName)
	for _, p := range e.popular {
		if strings.Contains(name, strings.ToLower(p.Search)) {
			return p.Flag
		}
	}
	return "🌍"
}

// MatchPopular resolves each curated entry to the first fetched country
// whose search or display field contains the term case-insensitively.
// Unmatched entries are omitted.
func MatchPopular(data domain.ContinentData, curated []domain.PopularCountry) []domain.Country {
	all := flatten(data)

	var matched []domain.Country
	for _, p := range curated {
		term := strings.ToLower(p.Search)
		for _, c := range all {
			if strings.Contains(strings.ToLower(c.Search), term) ||
				strings.Contains(strings.ToLower(c.Display), term) {
				matched = append(matched, c)
				break
			}
		}
	}
	return matched
}

// flatten lists every country in continent-navigation order. Continents not
// reachable through the navigation come last, in name order, so matching
// stays deterministic.
func flatten(data domain.ContinentData) []domain.Country {
	seen := make(map[string]bool, len(data.Countries))
	var all []domain.Country
	for _, continent := range data.Continents {
		seen[continent] = true
		all = append(all, data.Countries[continent]...)
	}

	var rest []string
	for continent := range data.Countries {
		if !seen[continent] {
			rest = append(rest, continent)
		}
	}
	sort.Strings(rest)
	for _, continent := range rest {
		all = append(all, data.Countries[continent]...)
	}
	return all
}
