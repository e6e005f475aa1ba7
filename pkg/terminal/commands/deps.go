package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/services/catalog"
	"github.com/dokind/esim-admin/pkg/services/config"
	"github.com/dokind/esim-admin/pkg/services/pricing"
	"github.com/dokind/esim-admin/pkg/store/khanbank"
	"github.com/dokind/esim-admin/pkg/store/priceboard"
	"github.com/dokind/esim-admin/pkg/store/roamwifi"
	"github.com/rs/zerolog"
)

const commandTimeout = 60 * time.Second

// deps bundles the service layer a command works against.
type deps struct {
	catalog catalog.Explorer
	pricing pricing.Manager
}

func buildDeps(cfgPath, profile string) (*deps, error) {
	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", cfgPath, err)
	}

	ctx := context.Background()
	endpoints, err := registry.GetEndpoints(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile %q: %w", profile, err)
	}

	roamwifiClient := roamwifi.NewClient(roamwifi.Config{
		ProxyURL:        endpoints.ProxyURL,
		BaseURL:         endpoints.APIBase,
		FallbackCatalog: roamwifi.DefaultCatalog(),
	})
	priceClient := priceboard.NewClient(priceboard.Config{BaseURL: endpoints.PriceURL})
	rateResolver := khanbank.NewResolver(khanbank.Config{RatesURL: endpoints.RatesURL})

	curated := make([]domain.PopularCountry, 0)
	for _, p := range config.DefaultPopular() {
		curated = append(curated, domain.PopularCountry{Name: p.Name, Search: p.Search, Flag: p.Flag})
	}

	return &deps{
		catalog: catalog.NewExplorer(roamwifiClient, curated),
		pricing: pricing.NewManager(roamwifiClient, rateResolver, priceClient),
	}, nil
}

// commandContext gives every command a bounded context with a stderr
// console logger attached, so tier-fallback warnings stay visible.
func commandContext() (context.Context, context.CancelFunc) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())
	return context.WithTimeout(ctx, commandTimeout)
}

func defaultCfgPath() string {
	home, _ := os.UserHomeDir()
	return fmt.Sprintf("%s/.esimcfg", home)
}
