package domain

// Network is one carrier network serving a package.
type Network struct {
	NameEn   string
	Operator string
	Type     string
}

// EsimPackage is one package variant of a sku. PriceID is the join key
// against selling-price records; PID is only unique within one catalog
// response.
type EsimPackage struct {
	PID            int
	PriceID        int
	Price          float64
	Flows          int
	Unit           string
	Days           int
	MaxDiscount    int
	SingleDiscount int
	DayPass        bool
	Popular        bool
	ShowName       string
	Networks       []Network
}

// PackageCatalog is the package listing for one sku.
type PackageCatalog struct {
	CountryCode string
	Display     string
	DisplayEn   string
	ImageURL    string
	Packages    []EsimPackage
}
