package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carmarket/internal/adapter/http/handlers/mocks"
	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCartHandler_GetCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("echoes the session header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.GET("/v1/cart", h.GetCart)

		uc.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Cart{SessionID: "sess-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("X-Session-ID"); got != "sess-1" {
			t.Fatalf("expected session header echoed, got %q", got)
		}
	})

	t.Run("mints a session when the header is absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.GET("/v1/cart", h.GetCart)

		var seen string
		uc.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sessionID string) (entities.Cart, error) {
				seen = sessionID
				return entities.Cart{SessionID: sessionID}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if seen == "" {
			t.Fatalf("expected a minted session id")
		}
		if got := w.Header().Get("X-Session-ID"); got != seen {
			t.Fatalf("expected header %q, got %q", seen, got)
		}
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing vehicle id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "sess-1", "999").Return(entities.Cart{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"vehicle_id":"999"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		cart := entities.Cart{SessionID: "sess-1", Lines: []entities.CartLine{
			{Vehicle: entities.Vehicle{ID: "1", Make: "Toyota", Price: 28500}, Quantity: 2},
		}}
		uc.EXPECT().AddItem(gomock.Any(), "sess-1", "1").Return(cart, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"vehicle_id":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			TotalPrice float64 `json:"total_price"`
			TotalCount int     `json:"total_count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.TotalPrice != 57000 || body.TotalCount != 2 {
			t.Fatalf("unexpected totals: %+v", body)
		}
	})
}

func TestCartHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body uses the default payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/checkout", h.Checkout)

		order := entities.Order{ID: "ord-1", SessionID: "sess-1", TotalPrice: 28500, TotalCount: 1, PaymentMethod: "credit-card", Status: entities.OrderStatusApproved, CreatedAt: time.Now().UTC()}
		uc.EXPECT().Checkout(gomock.Any(), "sess-1", "").Return(order, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/checkout", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "ord-1" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/checkout", h.Checkout)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/checkout", h.Checkout)

		uc.EXPECT().Checkout(gomock.Any(), "sess-1", "").Return(entities.Order{}, usecase.ErrCartEmpty)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/checkout", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/checkout", h.Checkout)

		wrapped := errors.Join(usecase.ErrPaymentGatewayFailed, errors.New("timeout"))
		uc.EXPECT().Checkout(gomock.Any(), "sess-1", "pix").Return(entities.Order{}, wrapped)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/checkout", bytes.NewBufferString(`{"payment_method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("gateway not configured maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/checkout", h.Checkout)

		uc.EXPECT().Checkout(gomock.Any(), "sess-1", "").Return(entities.Order{}, usecase.ErrPaymentGatewayNotReady)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/checkout", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.DELETE("/v1/cart", h.ClearCart)

	uc.EXPECT().Clear(gomock.Any(), "sess-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/cart", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestCartHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cart/items/:vehicle_id", h.UpdateQuantity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items/1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero quantity is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cart/items/:vehicle_id", h.UpdateQuantity)

		unchanged := entities.Cart{SessionID: "sess-1", Lines: []entities.CartLine{
			{Vehicle: entities.Vehicle{ID: "1", Price: 28500}, Quantity: 1},
		}}
		uc.EXPECT().UpdateQuantity(gomock.Any(), "sess-1", "1", 0).Return(unchanged, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items/1", bytes.NewBufferString(`{"quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			TotalCount int `json:"total_count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.TotalCount != 1 {
			t.Fatalf("expected unchanged cart, got %s", w.Body.String())
		}
	})

	t.Run("sets the line quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cart/items/:vehicle_id", h.UpdateQuantity)

		updated := entities.Cart{SessionID: "sess-1", Lines: []entities.CartLine{
			{Vehicle: entities.Vehicle{ID: "1", Price: 28500}, Quantity: 3},
		}}
		uc.EXPECT().UpdateQuantity(gomock.Any(), "sess-1", "1", 3).Return(updated, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items/1", bytes.NewBufferString(`{"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.DELETE("/v1/cart/items/:vehicle_id", h.RemoveItem)

	uc.EXPECT().RemoveItem(gomock.Any(), "sess-1", "1").Return(entities.Cart{SessionID: "sess-1"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/cart/items/1", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCartHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)

	uc.EXPECT().Orders(gomock.Any(), "sess-1").
		Return([]entities.Order{{ID: "o-1", Status: entities.OrderStatusApproved}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Orders []map[string]interface{} `json:"orders"`
		Total  int                      `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Total != 1 || len(body.Orders) != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
