package main

import (
	"fmt"
	"os"

	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/server"
	"github.com/dokind/esim-admin/pkg/services/catalog"
	"github.com/dokind/esim-admin/pkg/services/config"
	"github.com/dokind/esim-admin/pkg/services/pricing"
	"github.com/dokind/esim-admin/pkg/store/khanbank"
	"github.com/dokind/esim-admin/pkg/store/priceboard"
	"github.com/dokind/esim-admin/pkg/store/roamwifi"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	settingsPath string
	profile      string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the eSIM admin dashboard server",
		RunE:  runServer,
	}

	home, _ := os.UserHomeDir()
	defaultPath := fmt.Sprintf("%s/.esimcfg", home)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the upstream profiles file (default is $HOME/.esimcfg)")
	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to the optional YAML settings file")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "default",
		"Upstream profile to use")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	endpoints, err := registry.GetEndpoints(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", profile, err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	profiles, _ := registry.GetProfiles(ctx)
	logger.Info().Strs("profiles", profiles).Str("active", profile).Msg("upstream profiles")

	roamwifiClient := roamwifi.NewClient(roamwifi.Config{
		ProxyURL:        endpoints.ProxyURL,
		BaseURL:         endpoints.APIBase,
		FallbackCatalog: roamwifi.DefaultCatalog(),
	})
	priceClient := priceboard.NewClient(priceboard.Config{
		BaseURL: endpoints.PriceURL,
	})
	rateResolver := khanbank.NewResolver(khanbank.Config{
		RatesURL:     endpoints.RatesURL,
		Currency:     settings.Currency,
		FallbackRate: settings.FallbackRate,
	})

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            settings.Addr,
		ShutdownTimeout: settings.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Catalog: catalog.NewExplorer(roamwifiClient, popularCountries(settings)),
			Pricing: pricing.NewManager(roamwifiClient, rateResolver, priceClient),
			Rates:   rateResolver,
		},
	})

	return webAPI.Start()
}

func popularCountries(settings *config.Settings) []domain.PopularCountry {
	curated := make([]domain.PopularCountry, 0, len(settings.Popular))
	for _, p := range settings.Popular {
		curated = append(curated, domain.PopularCountry{Name: p.Name, Search: p.Search, Flag: p.Flag})
	}
	return curated
}
