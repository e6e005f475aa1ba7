package domain

// Endpoints holds the upstream URLs of one configuration profile.
type Endpoints struct {
	ProxyURL string
	APIBase  string
	PriceURL string
	RatesURL string
}
