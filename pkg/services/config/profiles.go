package config

import (
	"context"
	"fmt"

	"github.com/dokind/esim-admin/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry resolves named profiles of an .esimcfg file to upstream
// endpoints. Profiles let operators point the dashboard at staging or
// production backends without rebuilding.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetEndpoints(ctx context.Context, profile string) (*domain.Endpoints, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetEndpoints(_ context.Context, profile string) (*domain.Endpoints, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	endpoints := &domain.Endpoints{
		ProxyURL: section.Key("proxy_url").String(),
		APIBase:  section.Key("api_base").String(),
		PriceURL: section.Key("price_url").String(),
		RatesURL: section.Key("rates_url").String(),
	}
	if endpoints.APIBase == "" {
		return nil, fmt.Errorf("profile %s has no api_base", profile)
	}
	return endpoints, nil
}
