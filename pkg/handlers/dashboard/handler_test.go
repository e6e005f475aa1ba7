package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dokind/esim-admin/pkg/models/api"
	"github.com/dokind/esim-admin/pkg/models/domain"
	"github.com/dokind/esim-admin/pkg/services/pricing"
	"github.com/dokind/esim-admin/pkg/store/roamwifi"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) Overview(ctx context.Context) (domain.CatalogOverview, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CatalogOverview), args.Error(1)
}

func (m *mockExplorer) FlagFor(countryName string) string {
	args := m.Called(countryName)
	return args.String(0)
}

type mockManager struct {
	mock.Mock
}

func (m *mockManager) Board(ctx context.Context, skuID int, countryName string) (domain.PackageBoard, error) {
	args := m.Called(ctx, skuID, countryName)
	return args.Get(0).(domain.PackageBoard), args.Error(1)
}

func (m *mockManager) Prices(ctx context.Context, skuID int) ([]domain.SellingPrice, bool) {
	args := m.Called(ctx, skuID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.SellingPrice), args.Bool(1)
}

func (m *mockManager) SetPrice(ctx context.Context, draft domain.PriceDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *mockManager) DeletePrice(ctx context.Context, skuID, priceID int) error {
	args := m.Called(ctx, skuID, priceID)
	return args.Error(0)
}

type mockRates struct {
	mock.Mock
}

func (m *mockRates) Resolve(ctx context.Context) domain.ExchangeRate {
	args := m.Called(ctx)
	return args.Get(0).(domain.ExchangeRate)
}

func withSkuParam(req *http.Request, skuID string, priceID string) *http.Request {
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("skuid", skuID)
	if priceID != "" {
		ctx.URLParams.Add("priceid", priceID)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

func TestContinents(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mockExplorer)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful response",
			setupMock: func(m *mockExplorer) {
				m.On("Overview", mock.Anything).Return(domain.CatalogOverview{
					ContinentData: domain.ContinentData{
						Continents: []string{"Asia"},
						Countries: map[string][]domain.Country{
							"Asia": {{Display: "Japan", SkuID: 26}},
						},
					},
					Popular: []domain.Country{{Display: "Japan", SkuID: 26}},
				}, nil)
				m.On("FlagFor", "Japan").Return("🇯🇵")
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var response api.ContinentsResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, []string{"Asia"}, response.Continents)
				require.Len(t, response.Popular, 1)
				assert.Equal(t, "🇯🇵", response.Popular[0].Flag)
			},
		},
		{
			name: "both fetch tiers exhausted",
			setupMock: func(m *mockExplorer) {
				m.On("Overview", mock.Anything).Return(domain.CatalogOverview{},
					&roamwifi.FetchError{Endpoint: "get-sku-list-continent", Err: fmt.Errorf("status 502")})
			},
			expectedStatus: http.StatusBadGateway,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var response api.Error
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.True(t, response.Retryable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explorer := new(mockExplorer)
			tt.setupMock(explorer)
			handler := NewHandler(explorer, new(mockManager), new(mockRates))

			req := httptest.NewRequest("GET", "/continents", nil)
			rec := httptest.NewRecorder()

			handler.Continents(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.check(t, rec)
			explorer.AssertExpectations(t)
		})
	}
}

func TestPackageBoard(t *testing.T) {
	manager := new(mockManager)
	manager.On("Board", mock.Anything, 16, "Korea").Return(domain.PackageBoard{
		SkuID:       16,
		CountryName: "South Korea",
		Rate:        domain.ExchangeRate{Rate: 3500},
		Cards: []domain.PackageCard{
			{PriceID: 42, DataAmount: "1GB", Duration: "7 Days", DollarPrice: "$10.50", TugrikPrice: "36,750₮", SellingPrice: "45,000₮"},
		},
		PricesAvailable: true,
	}, nil)

	handler := NewHandler(new(mockExplorer), manager, new(mockRates))

	req := withSkuParam(httptest.NewRequest("GET", "/countries/16/packages?name=Korea", nil), "16", "")
	rec := httptest.NewRecorder()

	handler.PackageBoard(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.PackageBoard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "South Korea", response.CountryName)
	require.Len(t, response.Packages, 1)
	assert.True(t, response.Packages[0].PriceSet)
	assert.Equal(t, "36,750₮", response.Packages[0].TugrikPrice)
	manager.AssertExpectations(t)
}

func TestPackageBoard_InvalidSku(t *testing.T) {
	handler := NewHandler(new(mockExplorer), new(mockManager), new(mockRates))

	req := withSkuParam(httptest.NewRequest("GET", "/countries/abc/packages", nil), "abc", "")
	rec := httptest.NewRecorder()

	handler.PackageBoard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPrices_Unavailable(t *testing.T) {
	manager := new(mockManager)
	manager.On("Prices", mock.Anything, 16).Return(nil, false)

	handler := NewHandler(new(mockExplorer), manager, new(mockRates))

	req := withSkuParam(httptest.NewRequest("GET", "/countries/16/prices", nil), "16", "")
	rec := httptest.NewRecorder()

	handler.ListPrices(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.PricesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.False(t, response.Available)
	assert.Empty(t, response.Prices)
}

func TestSetPrice(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockManager)
		expectedStatus int
	}{
		{
			name: "successful save",
			body: `{"priceid":42,"price":45000,"country_name":"Korea"}`,
			setupMock: func(m *mockManager) {
				m.On("SetPrice", mock.Anything, domain.PriceDraft{
					SkuID: 16, CountryName: "Korea", PriceID: 42, Price: 45000,
				}).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "non-positive price",
			body: `{"priceid":42,"price":0}`,
			setupMock: func(m *mockManager) {
				m.On("SetPrice", mock.Anything, mock.Anything).Return(pricing.ErrInvalidPrice)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown package",
			body: `{"priceid":999,"price":1000}`,
			setupMock: func(m *mockManager) {
				m.On("SetPrice", mock.Anything, mock.Anything).Return(
					fmt.Errorf("sku 16 priceid 999: %w", pricing.ErrPackageNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "store rejects save",
			body: `{"priceid":42,"price":1000}`,
			setupMock: func(m *mockManager) {
				m.On("SetPrice", mock.Anything, mock.Anything).Return(fmt.Errorf("price store rejected save"))
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "malformed body",
			body:           `{"priceid":`,
			setupMock:      func(m *mockManager) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := new(mockManager)
			tt.setupMock(manager)
			handler := NewHandler(new(mockExplorer), manager, new(mockRates))

			req := withSkuParam(
				httptest.NewRequest("POST", "/countries/16/prices", bytes.NewBufferString(tt.body)), "16", "")
			rec := httptest.NewRecorder()

			handler.SetPrice(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			manager.AssertExpectations(t)
		})
	}
}

func TestDeletePrice(t *testing.T) {
	tests := []struct {
		name           string
		priceID        string
		setupMock      func(*mockManager)
		expectedStatus int
	}{
		{
			name:    "successful delete",
			priceID: "42",
			setupMock: func(m *mockManager) {
				m.On("DeletePrice", mock.Anything, 16, 42).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "no stored price",
			priceID: "42",
			setupMock: func(m *mockManager) {
				m.On("DeletePrice", mock.Anything, 16, 42).Return(
					fmt.Errorf("sku 16 priceid 42: %w", pricing.ErrPriceNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid price id",
			priceID:        "abc",
			setupMock:      func(m *mockManager) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := new(mockManager)
			tt.setupMock(manager)
			handler := NewHandler(new(mockExplorer), manager, new(mockRates))

			req := withSkuParam(
				httptest.NewRequest("DELETE", "/countries/16/prices/"+tt.priceID, nil), "16", tt.priceID)
			rec := httptest.NewRecorder()

			handler.DeletePrice(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			manager.AssertExpectations(t)
		})
	}
}

func TestRate(t *testing.T) {
	rates := new(mockRates)
	rates.On("Resolve", mock.Anything).Return(domain.ExchangeRate{Rate: 3550.25})

	handler := NewHandler(new(mockExplorer), new(mockManager), rates)

	req := httptest.NewRequest("GET", "/rates/usd", nil)
	rec := httptest.NewRecorder()

	handler.Rate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.Rate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 3550.25, response.Value)
	assert.False(t, response.Fallback)
}
