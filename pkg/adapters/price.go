package adapters

import (
	"github.com/dokind/esim-admin/pkg/models/api"
	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/models/store"
)

func MapSellingPriceStoreToDomain(sp store.SellingPrice) domain.SellingPrice {
	return domain.SellingPrice{
		RowID:       sp.RowID,
		PackageID:   sp.PackageID,
		Price:       sp.Price,
		SkuID:       sp.SkuID,
		CountryName: sp.CountryName,
		Duration:    sp.Duration,
		DataGB:      sp.DataGB,
		PackageName: sp.PackageName,
	}
}

func MapSellingPriceDomainToApi(sp domain.SellingPrice) api.SellingPrice {
	return api.SellingPrice{
		RowID:       sp.RowID,
		PackageID:   sp.PackageID,
		Price:       sp.Price,
		SkuID:       sp.SkuID,
		CountryName: sp.CountryName,
		Duration:    sp.Duration,
		DataGB:      sp.DataGB,
		PackageName: sp.PackageName,
	}
}

func MapExchangeRateDomainToApi(rate domain.ExchangeRate) api.Rate {
	return api.Rate{
		Value:     rate.Rate,
		Fallback:  rate.Fallback,
		FetchedAt: rate.FetchedAt,
	}
}
