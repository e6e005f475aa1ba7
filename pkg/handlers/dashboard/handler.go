package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dokind/esim-admin/pkg/adapters"
	"github.com/dokind/esim-admin/pkg/models/api"
	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/services/catalog"
	"github.com/dokind/esim-admin/pkg/services/pricing"
	"github.com/dokind/esim-admin/pkg/store/roamwifi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	catalog catalog.Explorer
	pricing pricing.Manager
	rates   pricing.RateResolver
}

func NewHandler(catalogExplorer catalog.Explorer, pricingManager pricing.Manager, rates pricing.RateResolver) *Handler {
	return &Handler{
		catalog: catalogExplorer,
		pricing: pricingManager,
		rates:   rates,
	}
}

func (h *Handler) Continents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	overview, err := h.catalog.Overview(ctx)
	if err != nil {
		writeUpstreamError(w, r, err, "failed to load catalog")
		return
	}

	response := api.ContinentsResponse{
		Continents: overview.Continents,
		Countries:  make(map[string][]api.Country, len(overview.Countries)),
		Popular:    h.mapCountries(overview.Popular),
	}
	for continent, countries := range overview.Countries {
		response.Countries[continent] = h.mapCountries(countries)
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) PackageBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skuID, err := skuParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid sku id", false)
		return
	}

	board, err := h.pricing.Board(ctx, skuID, r.URL.Query().Get("name"))
	if err != nil {
		writeUpstreamError(w, r, err, "failed to load packages")
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapPackageBoardDomainToApi(board))
}

func (h *Handler) ListPrices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skuID, err := skuParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid sku id", false)
		return
	}

	prices, available := h.pricing.Prices(ctx, skuID)
	response := api.PricesResponse{
		Prices:    make([]api.SellingPrice, 0, len(prices)),
		Available: available,
	}
	for _, p := range prices {
		response.Prices = append(response.Prices, adapters.MapSellingPriceDomainToApi(p))
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) SetPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skuID, err := skuParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid sku id", false)
		return
	}

	var req api.SetPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", false)
		return
	}

	err = h.pricing.SetPrice(ctx, domain.PriceDraft{
		SkuID:       skuID,
		CountryName: req.CountryName,
		PriceID:     req.PriceID,
		Price:       req.Price,
	})
	switch {
	case errors.Is(err, pricing.ErrInvalidPrice):
		writeError(w, r, http.StatusBadRequest, err.Error(), false)
	case errors.Is(err, pricing.ErrPackageNotFound):
		writeError(w, r, http.StatusNotFound, err.Error(), false)
	case err != nil:
		writeUpstreamError(w, r, err, "failed to save price")
	default:
		writeJSON(w, r, http.StatusOK, api.Status{Message: "success"})
	}
}

func (h *Handler) DeletePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skuID, err := skuParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid sku id", false)
		return
	}
	priceID, err := strconv.Atoi(chi.URLParam(r, "priceid"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid price id", false)
		return
	}

	err = h.pricing.DeletePrice(ctx, skuID, priceID)
	switch {
	case errors.Is(err, pricing.ErrPriceNotFound):
		writeError(w, r, http.StatusNotFound, err.Error(), false)
	case err != nil:
		writeUpstreamError(w, r, err, "failed to delete price")
	default:
		writeJSON(w, r, http.StatusOK, api.Status{Message: "success"})
	}
}

func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	rate := h.rates.Resolve(r.Context())
	writeJSON(w, r, http.StatusOK, adapters.MapExchangeRateDomainToApi(rate))
}

func (h *Handler) mapCountries(countries []domain.Country) []api.Country {
	mapped := make([]api.Country, 0, len(countries))
	for _, c := range countries {
		mapped = append(mapped, adapters.MapCountryDomainToApi(c, h.catalog.FlagFor(c.Display)))
	}
	return mapped
}

func skuParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "skuid"))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, retryable bool) {
	writeJSON(w, r, status, api.Error{Error: msg, Retryable: retryable})
}

// writeUpstreamError maps exhausted fetch tiers to a retryable 502 and
// everything else to a plain 502.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger := zerolog.Ctx(r.Context())
	logger.Error().Err(err).Msg(msg)

	var fetchErr *roamwifi.FetchError
	if errors.As(err, &fetchErr) {
		writeError(w, r, http.StatusBadGateway, err.Error(), true)
		return
	}
	writeError(w, r, http.StatusBadGateway, msg, false)
}
