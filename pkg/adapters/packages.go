package adapters

import (
	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/models/store"
)

func MapEsimPackageStoreToDomain(p store.EsimPackage) domain.EsimPackage {
	networks := make([]domain.Network, 0, len(p.NetworkDtoList))
	for _, n := range p.NetworkDtoList {
		networks = append(networks, domain.Network{
			NameEn:   n.NameEn,
			Operator: n.Operator,
			Type:     n.Type,
		})
	}
	return domain.EsimPackage{
		PID:            p.PID,
		PriceID:        p.PriceID,
		Price:          p.Price,
		Flows:          p.Flows,
		Unit:           p.Unit,
		Days:           p.Days,
		MaxDiscount:    p.MaxDiscount,
		SingleDiscount: p.SingleDiscount,
		DayPass:        p.SupportDaypass == 1,
		Popular:        p.Overlay == 1,
		ShowName:       p.ShowName,
		Networks:       networks,
	}
}

func MapPackageResponseStoreToDomain(resp store.PackageResponse) domain.PackageCatalog {
	packages := make([]domain.EsimPackage, 0, len(resp.EsimPackageDtoList))
	for _, p := range resp.EsimPackageDtoList {
		packages = append(packages, MapEsimPackageStoreToDomain(p))
	}
	return domain.PackageCatalog{
		CountryCode: resp.CountryCode,
		Display:     resp.Display,
		DisplayEn:   resp.DisplayEn,
		ImageURL:    resp.ImageURL,
		Packages:    packages,
	}
}
