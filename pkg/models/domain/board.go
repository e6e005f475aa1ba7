package domain

// PackageCard is one package with its display labels derived and its resale
// price joined in. DollarPrice/TugrikPrice are the formatted cost price;
// SellingPrice is empty when no resale price is set.
type PackageCard struct {
	PID          int
	PriceID      int
	DataAmount   string
	Duration     string
	Discount     string
	DollarPrice  string
	TugrikPrice  string
	SellingPrice string
	RowID        string
	DayPass      bool
	Popular      bool
	Name         string
}

// PackageBoard is the fully derived package screen for one country: sorted
// cards, the rate used for conversion, and whether the selling-price store
// answered. PricesAvailable false means every card renders as "price not
// set" because the store was unreachable, not because nothing is set.
type PackageBoard struct {
	SkuID           int
	CountryName     string
	ImageURL        string
	Networks        []string
	Rate            ExchangeRate
	Cards           []PackageCard
	PricesAvailable bool
}
