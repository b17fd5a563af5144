package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "carmarket/internal/adapter/http/dto/request"
	response "carmarket/internal/adapter/http/dto/response"
	"carmarket/internal/domain/wizard"
	"carmarket/internal/usecase"
	"carmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	errInvalidPhotoIndex   = pkg.NewDomainErrorSimple("INVALID_PHOTO_INDEX", "Invalid photo index", http.StatusBadRequest)
)

// ListingHandler handles HTTP requests for the sell-a-car wizard and the
// listings it produces.
type ListingHandler struct {
	usecase usecase.IListingUseCase
}

func NewListingHandler(uc usecase.IListingUseCase) *ListingHandler {
	return &ListingHandler{usecase: uc}
}

func (h *ListingHandler) StartDraft(c *gin.Context) {
	draft, err := h.usecase.StartDraft(c.Request.Context())
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDraft(draft, nil))
}

func (h *ListingHandler) GetDraft(c *gin.Context) {
	draft, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

// UpdateDraft merges field edits. Edits are never validated here; gating
// happens on advance and submit.
func (h *ListingHandler) UpdateDraft(c *gin.Context) {
	var payload request.UpdateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.SetFields(c.Request.Context(), c.Param("id"), payload.Fields)
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

// Next advances the wizard. A failed step gate answers 422 naming the
// missing fields; the advisory photo recommendation rides along with 200.
func (h *ListingHandler) Next(c *gin.Context) {
	draft, advisory, err := h.usecase.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, advisory))
}

func (h *ListingHandler) Back(c *gin.Context) {
	draft, err := h.usecase.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

func (h *ListingHandler) AddPhoto(c *gin.Context) {
	var payload request.AddPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.AddPhoto(c.Request.Context(), c.Param("id"), payload.URL)
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

func (h *ListingHandler) RemovePhoto(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidPhotoIndex.HTTPStatus, errInvalidPhotoIndex.ToHTTPError())
		return
	}

	draft, err := h.usecase.RemovePhoto(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

func (h *ListingHandler) Submit(c *gin.Context) {
	listing, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromListing(listing))
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.usecase.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListing(listing))
}

func (h *ListingHandler) ListListings(c *gin.Context) {
	listings, err := h.usecase.Listings(c.Request.Context())
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListings(listings))
}

func mapListingError(err error) *pkg.AppError {
	var vErr *wizard.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Required fields are missing", http.StatusUnprocessableEntity).
			WithDetails(vErr.Missing...)
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidListingID), errors.Is(err, usecase.ErrInvalidPhotoURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftCompleted):
		return pkg.NewDomainErrorSimple("DRAFT_COMPLETED", "Draft already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftNotAtReview):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_AT_REVIEW", "Draft has not reached the review step", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
