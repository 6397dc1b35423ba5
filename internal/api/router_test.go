package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/flexprice/rewardengine/internal/api/v1"
	"github.com/flexprice/rewardengine/internal/config"
	ierr "github.com/flexprice/rewardengine/internal/errors"
	"github.com/flexprice/rewardengine/internal/logger"
	"github.com/flexprice/rewardengine/internal/service"
	"github.com/flexprice/rewardengine/internal/types"
	"github.com/flexprice/rewardengine/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()
	rewardService := service.NewRewardService(service.ServiceParams{Logger: log, Config: cfg})

	return NewRouter(Handlers{
		Health: v1.NewHealthHandler(log),
		Reward: v1.NewRewardHandler(rewardService, log),
	}, cfg, log, nil)
}

type cartBody struct {
	Cart struct {
		ID             string          `json:"id"`
		Currency       string          `json:"currency"`
		DiscountAmount decimal.Decimal `json:"discount_amount"`
		Items          []struct {
			ID             string          `json:"id"`
			DiscountAmount decimal.Decimal `json:"discount_amount"`
			Discounts      []struct {
				Coupon         string          `json:"coupon"`
				DiscountAmount decimal.Decimal `json:"discount_amount"`
			} `json:"discounts"`
		} `json:"items"`
		AvailablePaymentMethods []struct {
			Code           string          `json:"code"`
			DiscountAmount decimal.Decimal `json:"discount_amount"`
		} `json:"available_payment_methods"`
	} `json:"cart"`
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(types.HeaderRequestID))
}

func TestApplyRewards(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"cart": {
			"id": "cart_1",
			"currency": "eur",
			"sub_total": "100",
			"items": [
				{"id": "line_1", "product_id": "sku-1", "list_price": "50", "sale_price": "40", "quantity": 2}
			],
			"available_payment_methods": [
				{"code": "card", "price": "4"}
			]
		},
		"rewards": [
			{"type": "cart_subtotal", "is_valid": true, "amount_type": "relative", "amount": "10"},
			{"type": "catalog_item_amount", "is_valid": true, "coupon": "SKU", "product_id": "SKU-1", "amount": "2.5"},
			{"type": "payment", "is_valid": true, "payment_method": "card", "amount": 1}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/carts/rewards/apply", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(types.HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(types.HeaderRequestID))

	var body cartBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cart_1", body.Cart.ID)
	assert.Equal(t, "EUR", body.Cart.Currency)
	assert.True(t, decimal.NewFromInt(10).Equal(body.Cart.DiscountAmount))

	require.Len(t, body.Cart.Items, 1)
	assert.True(t, decimal.NewFromInt(15).Equal(body.Cart.Items[0].DiscountAmount))
	require.Len(t, body.Cart.Items[0].Discounts, 1)
	assert.Equal(t, "SKU", body.Cart.Items[0].Discounts[0].Coupon)
	assert.True(t, decimal.NewFromInt(5).Equal(body.Cart.Items[0].Discounts[0].DiscountAmount))

	require.Len(t, body.Cart.AvailablePaymentMethods, 1)
	assert.True(t, decimal.NewFromInt(1).Equal(body.Cart.AvailablePaymentMethods[0].DiscountAmount))
}

func TestApplyRewards_Errors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name            string
		payload         string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "malformed_json",
			payload:         `{"cart": `,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request format",
		},
		{
			name:            "missing_currency",
			payload:         `{"cart": {"sub_total": "10"}}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Request validation failed",
		},
		{
			name:            "negative_price",
			payload:         `{"cart": {"currency": "USD", "shipments": [{"price": "-1"}]}}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Request validation failed",
		},
		{
			name:            "invalid_amount_type",
			payload:         `{"cart": {"currency": "USD"}, "rewards": [{"type": "payment", "amount_type": "bogus", "amount": "1"}]}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Please provide a valid reward amount type (absolute or relative)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/carts/rewards/apply", bytes.NewBufferString(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp ierr.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedMessage, resp.Error.Display)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/carts", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The requested resource was not found", resp.Error.Display)
	assert.Equal(t, "/v1/carts", resp.Error.Details["path"])
}
