package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"slot-auction/internal/auctionerrors"
	"slot-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrSlotNotFound):
		return http.StatusNotFound, "slot not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrResultNotFound):
		return http.StatusNotFound, "result not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrAlreadyDeclared):
		return http.StatusConflict, "result already declared"
	case errors.Is(err, auctionerrors.ErrInsufficientSlots):
		return http.StatusConflict, "insufficient slots available"
	case errors.Is(err, auctionerrors.ErrInvalidBidPrice):
		return http.StatusConflict, "bid price does not match slot price"
	case errors.Is(err, auctionerrors.ErrInvalidTransition):
		return http.StatusBadRequest, "invalid status transition"
	case errors.Is(err, auctionerrors.ErrProductNotReady),
		errors.Is(err, auctionerrors.ErrBidEnded),
		errors.Is(err, auctionerrors.ErrNoSlotsConfigured),
		errors.Is(err, auctionerrors.ErrSlotsFull),
		errors.Is(err, auctionerrors.ErrNotWithdrawable),
		errors.Is(err, auctionerrors.ErrWithdrawalExpired),
		errors.Is(err, auctionerrors.ErrAmountMismatch),
		errors.Is(err, auctionerrors.ErrAmountLocked),
		errors.Is(err, auctionerrors.ErrBidStarted),
		errors.Is(err, auctionerrors.ErrAlreadySold),
		errors.Is(err, auctionerrors.ErrProductMismatch),
		errors.Is(err, auctionerrors.ErrNoUpdateFields),
		errors.Is(err, auctionerrors.ErrInvalidProductStatus),
		errors.Is(err, auctionerrors.ErrNoBids),
		errors.Is(err, auctionerrors.ErrNoTickets):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
