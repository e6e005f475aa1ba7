package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// PopularEntry is one curated popular-country shortcut.
type PopularEntry struct {
	Name   string `mapstructure:"name"`
	Search string `mapstructure:"search"`
	Flag   string `mapstructure:"flag"`
}

// Settings are the runtime knobs of the dashboard service.
type Settings struct {
	Addr            string         `mapstructure:"addr"`
	ShutdownTimeout time.Duration  `mapstructure:"shutdown_timeout"`
	Currency        string         `mapstructure:"currency"`
	FallbackRate    float64        `mapstructure:"fallback_rate"`
	Popular         []PopularEntry `mapstructure:"popular"`
}

// DefaultPopular is the curated shortcut list used when the settings file
// does not override it.
func DefaultPopular() []PopularEntry {
	return []PopularEntry{
		{Name: "China", Search: "China", Flag: "🇨🇳"},
		{Name: "Japan", Search: "Japan", Flag: "🇯🇵"},
		{Name: "South Korea", Search: "Korea", Flag: "🇰🇷"},
		{Name: "Thailand", Search: "Thailand", Flag: "🇹🇭"},
		{Name: "Vietnam", Search: "Vietnam", Flag: "🇻🇳"},
		{Name: "Singapore", Search: "Singapore", Flag: "🇸🇬"},
		{Name: "Malaysia", Search: "Malaysia", Flag: "🇲🇾"},
		{Name: "Indonesia", Search: "Indonesia", Flag: "🇮🇩"},
	}
}

// LoadSettings reads the YAML settings file. A missing path yields pure
// defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("currency", "USD")
	v.SetDefault("fallback_rate", 3000)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if len(settings.Popular) == 0 {
		settings.Popular = DefaultPopular()
	}
	return &settings, nil
}
