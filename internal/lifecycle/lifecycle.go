// Package lifecycle gates which status transitions are legal for a product.
package lifecycle

import (
	"fmt"

	"slot-auction/internal/auctionerrors"
	"slot-auction/internal/models"
)

// allowed maps each status to the statuses it may move to. READY_FOR_BID can
// roll back to READY_FOR_SLOT (slot edits), BID_STARTED to READY_FOR_BID is
// unused in practice but permitted, and BID_ENDED reopens to READY_FOR_BID
// when a withdrawal frees capacity. SOLD is terminal.
var allowed = map[models.ProductStatus][]models.ProductStatus{
	models.StatusReadyForSlot: {models.StatusReadyForBid},
	models.StatusReadyForBid:  {models.StatusBidStarted, models.StatusReadyForSlot},
	models.StatusBidStarted:   {models.StatusBidEnded, models.StatusReadyForBid},
	models.StatusBidEnded:     {models.StatusSold, models.StatusReadyForBid},
	models.StatusSold:         nil,
}

// Validate returns an error unless the current status may transition to target.
func Validate(current, target models.ProductStatus) error {
	if current == models.StatusSold {
		return fmt.Errorf("lifecycle: transition from %s to %s: %w", current, target, auctionerrors.ErrAlreadySold)
	}
	for _, next := range allowed[current] {
		if next == target {
			return nil
		}
	}
	return fmt.Errorf("lifecycle: transition from %s to %s: %w", current, target, auctionerrors.ErrInvalidTransition)
}

// CanAcceptBids reports whether a product in the given status may receive bids.
func CanAcceptBids(status models.ProductStatus) bool {
	return status == models.StatusReadyForBid || status == models.StatusBidStarted
}
