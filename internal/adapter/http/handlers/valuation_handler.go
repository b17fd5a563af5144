package handlers

import (
	"errors"
	"net/http"

	request "carmarket/internal/adapter/http/dto/request"
	response "carmarket/internal/adapter/http/dto/response"
	"carmarket/internal/domain/wizard"
	"carmarket/internal/usecase"
	"carmarket/pkg"

	"github.com/gin-gonic/gin"
)

// ValuationHandler handles HTTP requests for the valuation wizard.
type ValuationHandler struct {
	usecase usecase.IValuationUseCase
}

func NewValuationHandler(uc usecase.IValuationUseCase) *ValuationHandler {
	return &ValuationHandler{usecase: uc}
}

func (h *ValuationHandler) StartDraft(c *gin.Context) {
	draft, err := h.usecase.StartDraft(c.Request.Context())
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDraft(draft, nil))
}

func (h *ValuationHandler) GetDraft(c *gin.Context) {
	draft, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

func (h *ValuationHandler) UpdateDraft(c *gin.Context) {
	var payload request.UpdateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.SetFields(c.Request.Context(), c.Param("id"), payload.Fields, payload.Features)
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

func (h *ValuationHandler) Next(c *gin.Context) {
	draft, err := h.usecase.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

func (h *ValuationHandler) Back(c *gin.Context) {
	draft, err := h.usecase.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft, nil))
}

// Submit computes the estimate and answers with the terminal draft plus the
// valuation it produced.
func (h *ValuationHandler) Submit(c *gin.Context) {
	draft, valuation, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, valuationSubmitResponse{
		Draft:     response.FromDraft(draft, nil),
		Valuation: response.FromValuation(valuation),
	})
}

func (h *ValuationHandler) GetValuation(c *gin.Context) {
	valuation, err := h.usecase.GetValuation(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromValuation(valuation))
}

type valuationSubmitResponse struct {
	Draft     response.DraftResponse     `json:"draft"`
	Valuation response.ValuationResponse `json:"valuation"`
}

func mapValuationError(err error) *pkg.AppError {
	var vErr *wizard.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Required fields are missing", http.StatusUnprocessableEntity).
			WithDetails(vErr.Missing...)
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidValuationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValuationNotFound):
		return pkg.NewDomainErrorSimple("VALUATION_NOT_FOUND", "Valuation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftCompleted):
		return pkg.NewDomainErrorSimple("DRAFT_COMPLETED", "Draft already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmitRequired):
		return pkg.NewDomainErrorSimple("SUBMIT_REQUIRED", "The result step is reached by submitting", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftNotAtReview):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_AT_CONTACT", "Draft has not reached the contact step", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
