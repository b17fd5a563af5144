package handlers

import (
	"net/http"

	request "carmarket/internal/adapter/http/dto/request"
	response "carmarket/internal/adapter/http/dto/response"
	"carmarket/internal/usecase"
	"carmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWishlistPayload = pkg.NewDomainErrorSimple("INVALID_WISHLIST_INPUT", "Invalid wishlist payload", http.StatusBadRequest)
)

// WishlistHandler handles HTTP requests for the session wishlist.
type WishlistHandler struct {
	usecase usecase.IWishlistUseCase
}

func NewWishlistHandler(uc usecase.IWishlistUseCase) *WishlistHandler {
	return &WishlistHandler{usecase: uc}
}

func (h *WishlistHandler) List(c *gin.Context) {
	vehicles, err := h.usecase.List(c.Request.Context(), sessionID(c))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var payload request.SaveVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWishlistPayload.HTTPStatus, errInvalidWishlistPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Add(c.Request.Context(), sessionID(c), payload.VehicleID); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove drops a vehicle from the wishlist; removing an absent one still
// answers 204.
func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), sessionID(c), c.Param("vehicle_id")); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
