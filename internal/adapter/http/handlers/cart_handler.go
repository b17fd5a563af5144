package handlers

import (
	"errors"
	"io"
	"net/http"

	request "carmarket/internal/adapter/http/dto/request"
	response "carmarket/internal/adapter/http/dto/response"
	"carmarket/internal/usecase"
	"carmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
)

// CartHandler handles HTTP requests for the session cart and checkout.
//
// The session comes from the X-Session-ID header; a fresh one is minted and
// echoed when the header is absent.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), sessionID(c), payload.VehicleID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

// UpdateQuantity sets the quantity of one cart line. Quantities below 1 and
// unknown vehicle IDs are silent no-ops: the unchanged cart comes back with
// 200.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.UpdateQuantity(c.Request.Context(), sessionID(c), c.Param("vehicle_id"), *payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.usecase.RemoveItem(c.Request.Context(), sessionID(c), c.Param("vehicle_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), sessionID(c)); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Checkout(c *gin.Context) {
	// The body is optional: an absent payload checks out with the default
	// payment method.
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Checkout(c.Request.Context(), sessionID(c), payload.ResolvePaymentMethod())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders returns the session's checkout history.
func (h *CartHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.Orders(c.Request.Context(), sessionID(c))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *CartHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartEmpty):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "Cannot check out an empty cart", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_FAILED", "Payment could not be processed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotReady):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_READY", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
