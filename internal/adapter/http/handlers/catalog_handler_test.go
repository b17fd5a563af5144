package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmarket/internal/adapter/http/handlers/mocks"
	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_Browse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty query browses full catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles", h.Browse)

		uc.EXPECT().Browse(gomock.Any(), entities.VehicleFilter{}, entities.SortOrder("")).
			Return([]entities.Vehicle{{ID: "1", Make: "Toyota", Model: "Camry"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Vehicles []map[string]interface{} `json:"vehicles"`
			Total    int                      `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Total != 1 || len(body.Vehicles) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("query params become filter facets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles", h.Browse)

		uc.EXPECT().Browse(gomock.Any(), gomock.Any(), entities.SortPriceAsc).
			DoAndReturn(func(_ context.Context, filter entities.VehicleFilter, _ entities.SortOrder) ([]entities.Vehicle, error) {
				if filter.Make != "Toyota" {
					t.Fatalf("expected make facet, got %q", filter.Make)
				}
				if len(filter.Transmissions) != 2 {
					t.Fatalf("expected 2 transmissions, got %v", filter.Transmissions)
				}
				if filter.PriceMax == nil || *filter.PriceMax != 30000 {
					t.Fatalf("expected price_max 30000, got %v", filter.PriceMax)
				}
				return nil, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?make=Toyota&transmission=Automatic&transmission=Manual&price_max=30000&sort=price_asc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed numeric param", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles", h.Browse)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?price_min=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inverted range maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles", h.Browse)

		uc.EXPECT().Browse(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidPriceRange)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?price_min=100&price_max=1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/:id", h.GetVehicle)

		uc.EXPECT().GetByID(gomock.Any(), "999").Return(entities.Vehicle{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/:id", h.GetVehicle)

		uc.EXPECT().GetByID(gomock.Any(), "3").
			Return(entities.Vehicle{ID: "3", Make: "BMW", Model: "3 Series", Year: 2021, Price: 41200}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["make"] != "BMW" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_Metadata(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("makes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/makes", h.Makes)

		uc.EXPECT().Makes(gomock.Any()).Return([]string{"BMW", "Toyota"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/makes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Makes []string `json:"makes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body.Makes) != 2 {
			t.Fatalf("unexpected makes: %v", body.Makes)
		}
	})

	t.Run("models by make", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/makes/:make/models", h.Models)

		uc.EXPECT().ModelsByMake(gomock.Any(), "Toyota").Return([]string{"Camry", "RAV4"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/makes/Toyota/models", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("filter metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/filters", h.FilterMetadata)

		uc.EXPECT().FilterMetadata(gomock.Any()).
			Return(usecase.FilterMetadata{Makes: []string{"Toyota"}, PriceMin: 18500, PriceMax: 72000, YearMin: 2019, YearMax: 2023}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/filters", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.FilterMetadata
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.PriceMax != 72000 || body.YearMin != 2019 {
			t.Fatalf("unexpected metadata: %+v", body)
		}
	})

	t.Run("featured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/featured", h.Featured)

		uc.EXPECT().Featured(gomock.Any()).Return([]entities.Vehicle{{ID: "1"}, {ID: "2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/featured", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
