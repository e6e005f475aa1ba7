package store

// NetworkDto describes one carrier network attached to a package.
type NetworkDto struct {
	NameCn   string `json:"namecn"`
	NameEn   string `json:"nameen"`
	Operator string `json:"operator"`
	Type     string `json:"type"`
}

// EsimPackage is one purchasable package variant as returned by get-packages.
// PriceID, not PID, is the key the selling-price store joins on.
type EsimPackage struct {
	APICode        string       `json:"apiCode"`
	Days           int          `json:"days"`
	ExpireDays     int          `json:"expireDays"`
	FlowType       int          `json:"flowType"`
	Flows          int          `json:"flows"`
	MaxDay         int          `json:"maxDay"`
	MaxDiscount    int          `json:"maxDiscount"`
	MinDay         int          `json:"minDay"`
	NetworkDtoList []NetworkDto `json:"networkDtoList"`
	OpenCardFee    float64      `json:"openCardFee"`
	Overlay        int          `json:"overlay"`
	PID            int          `json:"pid"`
	Premark        string       `json:"premark"`
	Price          float64      `json:"price"`
	PriceID        int          `json:"priceid"`
	ShowName       string       `json:"showName"`
	SingleDiscount int          `json:"singleDiscount"`
	SupportDaypass int          `json:"supportDaypass"`
	Unit           string       `json:"unit"`
}

// PackageResponse is the payload of get-packages for one sku.
// EsimPackageDtoList may legitimately be empty.
type PackageResponse struct {
	CountryCode        string        `json:"countrycode"`
	Display            string        `json:"display"`
	DisplayEn          string        `json:"displayEn"`
	EsimPackageDtoList []EsimPackage `json:"esimPackageDtoList"`
	ImageURL           string        `json:"imageUrl"`
}
