package adapters

import (
	"github.com/dokind/esim-admin/pkg/models/api"
	"github.com/dokind/esim-admin/pkg/models/domain"
)

func MapPackageCardDomainToApi(card domain.PackageCard) api.PackageCard {
	return api.PackageCard{
		PID:          card.PID,
		PriceID:      card.PriceID,
		Name:         card.Name,
		DataAmount:   card.DataAmount,
		Duration:     card.Duration,
		Discount:     card.Discount,
		DollarPrice:  card.DollarPrice,
		TugrikPrice:  card.TugrikPrice,
		SellingPrice: card.SellingPrice,
		PriceSet:     card.SellingPrice != "",
		DayPass:      card.DayPass,
		Popular:      card.Popular,
	}
}

func MapPackageBoardDomainToApi(board domain.PackageBoard) api.PackageBoard {
	cards := make([]api.PackageCard, 0, len(board.Cards))
	for _, c := range board.Cards {
		cards = append(cards, MapPackageCardDomainToApi(c))
	}
	return api.PackageBoard{
		SkuID:           board.SkuID,
		CountryName:     board.CountryName,
		ImageURL:        board.ImageURL,
		Networks:        board.Networks,
		Rate:            MapExchangeRateDomainToApi(board.Rate),
		Packages:        cards,
		PricesAvailable: board.PricesAvailable,
	}
}
