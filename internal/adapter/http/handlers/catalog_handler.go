package handlers

import (
	"errors"
	"net/http"

	request "carmarket/internal/adapter/http/dto/request"
	response "carmarket/internal/adapter/http/dto/response"
	"carmarket/internal/usecase"
	"carmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBrowseQuery = pkg.NewDomainErrorSimple("INVALID_BROWSE_QUERY", "Invalid browse query", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for catalog browsing.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// Browse lists the catalog through the filter/sort pipeline. Every facet is
// optional; an empty query returns the full catalog in default order.
func (h *CatalogHandler) Browse(c *gin.Context) {
	var query request.BrowseVehiclesRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidBrowseQuery.HTTPStatus, errInvalidBrowseQuery.ToHTTPError())
		return
	}

	vehicles, err := h.usecase.Browse(c.Request.Context(), query.ToFilter(), query.ToSortOrder())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *CatalogHandler) Featured(c *gin.Context) {
	vehicles, err := h.usecase.Featured(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *CatalogHandler) Makes(c *gin.Context) {
	makes, err := h.usecase.Makes(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"makes": makes})
}

func (h *CatalogHandler) Models(c *gin.Context) {
	models, err := h.usecase.ModelsByMake(c.Request.Context(), c.Param("make"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"models": models})
}

func (h *CatalogHandler) FilterMetadata(c *gin.Context) {
	meta, err := h.usecase.FilterMetadata(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, meta)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPriceRange), errors.Is(err, usecase.ErrInvalidYearRange):
		return pkg.NewDomainErrorSimple("INVALID_RANGE", "Range minimum exceeds maximum", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
