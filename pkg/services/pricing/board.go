package pricing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dokind/esim-admin/pkg/adapters"
	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/models/store"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrPackageNotFound means the sku has no package with the given priceid.
	ErrPackageNotFound = errors.New("package not found")
	// ErrPriceNotFound means no resale price is stored for the package.
	ErrPriceNotFound = errors.New("selling price not found")
	// ErrInvalidPrice rejects non-positive resale prices.
	ErrInvalidPrice = errors.New("price must be positive")
)

// PackageFetcher is the package side of the roamwifi client.
type PackageFetcher interface {
	FetchPackages(ctx context.Context, skuID int) (store.PackageResponse, error)
}

// RateResolver yields the current USD/MNT rate, degrading to a fallback.
type RateResolver interface {
	Resolve(ctx context.Context) domain.ExchangeRate
}

// PriceStore is the selling-price store client.
type PriceStore interface {
	List(ctx context.Context, skuID int) ([]store.SellingPrice, error)
	Save(ctx context.Context, record store.SavePriceRequest) error
	Delete(ctx context.Context, rowID string) error
}

// Manager builds the package board for a country and runs the resale-price
// workflows against the store.
type Manager interface {
	Board(ctx context.Context, skuID int, countryName string) (domain.PackageBoard, error)
	Prices(ctx context.Context, skuID int) ([]domain.SellingPrice, bool)
	SetPrice(ctx context.Context, draft domain.PriceDraft) error
	DeletePrice(ctx context.Context, skuID, priceID int) error
}

type manager struct {
	packages PackageFetcher
	rates    RateResolver
	prices   PriceStore
}

func NewManager(packages PackageFetcher, rates RateResolver, prices PriceStore) Manager {
	return &manager{packages: packages, rates: rates, prices: prices}
}

// Board fetches packages, the exchange rate, and the stored prices
// concurrently. Only the package fetch can fail the board: the rate
// degrades to its fallback and an unreachable price store just marks
// PricesAvailable false.
func (m *manager) Board(ctx context.Context, skuID int, countryName string) (domain.PackageBoard, error) {
	var (
		catalog   domain.PackageCatalog
		rate      domain.ExchangeRate
		prices    []domain.SellingPrice
		available bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := m.packages.FetchPackages(gctx, skuID)
		if err != nil {
			return fmt.Errorf("failed to fetch packages for sku %d: %w", skuID, err)
		}
		catalog = adapters.MapPackageResponseStoreToDomain(raw)
		return nil
	})
	g.Go(func() error {
		rate = m.rates.Resolve(gctx)
		return nil
	})
	g.Go(func() error {
		prices, available = m.listPrices(gctx, skuID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.PackageBoard{}, err
	}

	name := catalog.DisplayEn
	if name == "" {
		name = countryName
	}

	sorted := SortPackages(catalog.Packages)
	cards := make([]domain.PackageCard, 0, len(sorted))
	for _, pkg := range sorted {
		cards = append(cards, buildCard(pkg, rate, prices))
	}

	return domain.PackageBoard{
		SkuID:           skuID,
		CountryName:     name,
		ImageURL:        catalog.ImageURL,
		Networks:        networkOperators(sorted),
		Rate:            rate,
		Cards:           cards,
		PricesAvailable: available,
	}, nil
}

// Prices lists the stored resale prices of one sku. The second result is
// false when the store was unreachable, so callers can tell a degraded
// empty list from a genuinely empty one.
func (m *manager) Prices(ctx context.Context, skuID int) ([]domain.SellingPrice, bool) {
	return m.listPrices(ctx, skuID)
}

// SetPrice persists a resale price. The stored record is matched by the
// package's priceid; a match turns the save into an update carrying the
// record's rowid.
func (m *manager) SetPrice(ctx context.Context, draft domain.PriceDraft) error {
	if draft.Price <= 0 {
		return ErrInvalidPrice
	}

	raw, err := m.packages.FetchPackages(ctx, draft.SkuID)
	if err != nil {
		return fmt.Errorf("failed to fetch packages for sku %d: %w", draft.SkuID, err)
	}
	catalog := adapters.MapPackageResponseStoreToDomain(raw)

	pkg, ok := findPackage(catalog.Packages, draft.PriceID)
	if !ok {
		return fmt.Errorf("sku %d priceid %d: %w", draft.SkuID, draft.PriceID, ErrPackageNotFound)
	}

	records, err := m.prices.List(ctx, draft.SkuID)
	if err != nil {
		return fmt.Errorf("failed to list prices for sku %d: %w", draft.SkuID, err)
	}
	existing := mapSellingPrices(records)

	countryName := catalog.DisplayEn
	if countryName == "" {
		countryName = draft.CountryName
	}

	record := store.SavePriceRequest{
		SkuID:       strconv.Itoa(draft.SkuID),
		CountryName: countryName,
		Duration:    DurationText(pkg.Days),
		DataGB:      FormatDataAmount(pkg.Flows, pkg.Unit),
		Price:       strconv.Itoa(draft.Price),
		PackageID:   strconv.Itoa(pkg.PriceID),
		PackageName: PackageName(pkg),
	}
	if match := matchSellingPrice(existing, pkg.PriceID); match != nil {
		record.RowID = match.RowID
	}

	return m.prices.Save(ctx, record)
}

// DeletePrice removes the stored resale price of one package. The store's
// delete key is the rowid, so the record is looked up first.
func (m *manager) DeletePrice(ctx context.Context, skuID, priceID int) error {
	records, err := m.prices.List(ctx, skuID)
	if err != nil {
		return fmt.Errorf("failed to list prices for sku %d: %w", skuID, err)
	}

	match := matchSellingPrice(mapSellingPrices(records), priceID)
	if match == nil {
		return fmt.Errorf("sku %d priceid %d: %w", skuID, priceID, ErrPriceNotFound)
	}
	return m.prices.Delete(ctx, match.RowID)
}

func (m *manager) listPrices(ctx context.Context, skuID int) ([]domain.SellingPrice, bool) {
	raw, err := m.prices.List(ctx, skuID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int("sku_id", skuID).
			Msg("price store unavailable, rendering prices as unset")
		return nil, false
	}

	return mapSellingPrices(raw), true
}

func mapSellingPrices(records []store.SellingPrice) []domain.SellingPrice {
	prices := make([]domain.SellingPrice, 0, len(records))
	for _, sp := range records {
		prices = append(prices, adapters.MapSellingPriceStoreToDomain(sp))
	}
	return prices
}

// SortPackages orders packages by validity then data volume, keeping the
// input order of equal pairs.
func SortPackages(packages []domain.EsimPackage) []domain.EsimPackage {
	sorted := append([]domain.EsimPackage(nil), packages...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Days != sorted[j].Days {
			return sorted[i].Days < sorted[j].Days
		}
		return sorted[i].Flows < sorted[j].Flows
	})
	return sorted
}

func buildCard(pkg domain.EsimPackage, rate domain.ExchangeRate, prices []domain.SellingPrice) domain.PackageCard {
	card := domain.PackageCard{
		PID:         pkg.PID,
		PriceID:     pkg.PriceID,
		Name:        PackageName(pkg),
		DataAmount:  FormatDataAmount(pkg.Flows, pkg.Unit),
		Duration:    DurationText(pkg.Days),
		Discount:    DiscountLabel(pkg.MaxDiscount, pkg.SingleDiscount),
		DollarPrice: FormatDollar(pkg.Price),
		TugrikPrice: FormatTugrik(pkg.Price, rate.Rate),
		DayPass:     pkg.DayPass,
		Popular:     pkg.Popular,
	}
	if match := matchSellingPrice(prices, pkg.PriceID); match != nil {
		card.SellingPrice = SellingPriceLabel(match.Price)
		card.RowID = match.RowID
	}
	return card
}

// matchSellingPrice joins a package to its stored record: the package's
// priceid rendered as a string must equal the record's packageid. First
// match wins.
func matchSellingPrice(prices []domain.SellingPrice, priceID int) *domain.SellingPrice {
	key := strconv.Itoa(priceID)
	for i := range prices {
		if prices[i].PackageID == key {
			return &prices[i]
		}
	}
	return nil
}

func findPackage(packages []domain.EsimPackage, priceID int) (domain.EsimPackage, bool) {
	for _, pkg := range packages {
		if pkg.PriceID == priceID {
			return pkg, true
		}
	}
	return domain.EsimPackage{}, false
}

// networkOperators summarizes the carriers of the first package, the way
// the dashboard's network banner shows them.
func networkOperators(sorted []domain.EsimPackage) []string {
	if len(sorted) == 0 {
		return nil
	}
	operators := make([]string, 0, len(sorted[0].Networks))
	for _, n := range sorted[0].Networks {
		operators = append(operators, n.Operator)
	}
	return operators
}
