package slot

import (
	"fmt"
	"time"

	"slot-auction/internal/auctionerrors"
	"slot-auction/internal/lifecycle"
	"slot-auction/internal/models"
	"slot-auction/internal/repository"
	"slot-auction/utils"

	"github.com/sirupsen/logrus"
)

// Service defines the business logic for slot configuration. Slots can only
// be changed while the product is still editable; the sum of slot values may
// never exceed the product amount, and exact equality makes the product ready
// for bidding.
type Service struct {
	repo repository.AuctionDB
	log  *logrus.Entry
}

// NewService creates a new slot Service instance
func NewService(repo repository.AuctionDB, log *logrus.Entry) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// SlotRequest is a single slot definition in a create request
type SlotRequest struct {
	BidPrice  float64
	SlotCount int
}

// UpdateSlotRequest patches an existing slot definition
type UpdateSlotRequest struct {
	SlotID    string
	BidPrice  *float64
	SlotCount *int
}

// CreateSlots adds slot definitions to a product, merging entries whose price
// matches an existing slot. Returns the affected slots and whether the product
// became ready for bidding.
func (s *Service) CreateSlots(productID string, reqs []SlotRequest) ([]models.Slot, bool, error) {
	if len(reqs) == 0 {
		return nil, false, fmt.Errorf("service: %w - no slots provided", auctionerrors.ErrInvalidInput)
	}
	for _, req := range reqs {
		if req.BidPrice <= 0 || req.SlotCount <= 0 {
			return nil, false, fmt.Errorf("service: %w - non-positive slot price or count", auctionerrors.ErrInvalidInput)
		}
	}

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return nil, false, fmt.Errorf("service: create slots: %w", err)
	}
	if err := s.checkEditable(product); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetSlotsByProduct(productID)
	if err != nil {
		return nil, false, fmt.Errorf("service: create slots for product %s: %w", productID, err)
	}

	existingTotal := slotValueSum(existing)
	newTotal := 0.0
	for _, req := range reqs {
		newTotal += float64(req.SlotCount) * req.BidPrice
	}

	finalTotal := existingTotal + newTotal
	if finalTotal > product.Amount {
		return nil, false, fmt.Errorf("service: create slots for product %s: %w", productID, auctionerrors.ErrAmountMismatch)
	}

	now := time.Now().UTC()
	byPrice := make(map[float64]int, len(existing)) // price -> index into existing
	for i, sl := range existing {
		byPrice[sl.BidPrice] = i
	}

	saved := make([]models.Slot, 0, len(reqs))
	for _, req := range reqs {
		var sl models.Slot
		if i, ok := byPrice[req.BidPrice]; ok {
			// merge into the slot with the same price
			sl = existing[i]
			sl.SlotCount += req.SlotCount
			sl.UpdatedAt = now
			existing[i] = sl
		} else {
			sl = models.Slot{
				SlotID:    utils.GenerateID(),
				ProductID: productID,
				BidPrice:  req.BidPrice,
				SlotCount: req.SlotCount,
				CreatedAt: now,
				UpdatedAt: now,
			}
			existing = append(existing, sl)
			byPrice[req.BidPrice] = len(existing) - 1
		}
		if err := s.repo.SaveSlot(sl); err != nil {
			return nil, false, fmt.Errorf("service: save slot for product %s: %w", productID, err)
		}
		saved = append(saved, sl)
	}

	if finalTotal == product.Amount {
		if err := s.transition(product, models.StatusReadyForBid, true); err != nil {
			return nil, false, err
		}
		s.log.WithField("product_id", productID).Info("all slots created, product ready for bidding")
		return saved, true, nil
	}

	if !product.HasSlots {
		product.HasSlots = true
		product.UpdatedAt = now
		if err := s.repo.UpdateProduct(product); err != nil {
			return nil, false, fmt.Errorf("service: mark product %s hasSlots: %w", productID, err)
		}
	}

	s.log.WithFields(logrus.Fields{"product_id": productID, "slots": len(saved)}).Info("slots created")
	return saved, false, nil
}

// GetProductSlots returns a product's slot definitions ordered by price
func (s *Service) GetProductSlots(productID string) ([]models.Slot, error) {
	if _, err := s.repo.GetProduct(productID); err != nil {
		return nil, fmt.Errorf("service: get slots: %w", err)
	}

	slots, err := s.repo.GetSlotsByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: get slots for product %s: %w", productID, err)
	}
	return slots, nil
}

// UpdateSlots patches slot definitions, revalidates the value sum against the
// product amount, and moves the product lifecycle forward or backward to match.
func (s *Service) UpdateSlots(productID string, reqs []UpdateSlotRequest) ([]models.Slot, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("service: %w - no slot updates provided", auctionerrors.ErrInvalidInput)
	}

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: update slots: %w", err)
	}
	if err := s.checkEditable(product); err != nil {
		return nil, err
	}

	slots, err := s.repo.GetSlotsByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: update slots for product %s: %w", productID, err)
	}
	byID := make(map[string]int, len(slots))
	for i, sl := range slots {
		byID[sl.SlotID] = i
	}

	// Apply patches to a working copy first, so the sum check sees the
	// whole outcome before anything is written.
	now := time.Now().UTC()
	touched := make([]int, 0, len(reqs))
	for _, req := range reqs {
		if req.BidPrice == nil && req.SlotCount == nil {
			return nil, fmt.Errorf("service: update slot %s: %w", req.SlotID, auctionerrors.ErrNoUpdateFields)
		}
		i, ok := byID[req.SlotID]
		if !ok {
			return nil, fmt.Errorf("service: update slot %s: %w", req.SlotID, auctionerrors.ErrSlotNotFound)
		}
		sl := slots[i]
		if req.BidPrice != nil {
			if *req.BidPrice <= 0 {
				return nil, fmt.Errorf("service: %w - non-positive slot price", auctionerrors.ErrInvalidInput)
			}
			sl.BidPrice = *req.BidPrice
		}
		if req.SlotCount != nil {
			if *req.SlotCount <= 0 {
				return nil, fmt.Errorf("service: %w - non-positive slot count", auctionerrors.ErrInvalidInput)
			}
			sl.SlotCount = *req.SlotCount
		}
		sl.UpdatedAt = now
		slots[i] = sl
		touched = append(touched, i)
	}

	currentTotal := slotValueSum(slots)
	if currentTotal > product.Amount {
		return nil, fmt.Errorf("service: update slots for product %s: %w", productID, auctionerrors.ErrAmountMismatch)
	}

	updated := make([]models.Slot, 0, len(touched))
	for _, i := range touched {
		if err := s.repo.SaveSlot(slots[i]); err != nil {
			return nil, fmt.Errorf("service: save slot %s: %w", slots[i].SlotID, err)
		}
		updated = append(updated, slots[i])
	}

	if err := s.reconcileStatus(product, currentTotal); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"product_id": productID, "slots": len(updated)}).Info("slots updated")
	return updated, nil
}

// DeleteSlots removes slot definitions and rolls the product back to the
// slot-definition phase when the value sum drops below the amount.
func (s *Service) DeleteSlots(productID string, slotIDs []string) error {
	if len(slotIDs) == 0 {
		return fmt.Errorf("service: %w - no slot ids provided", auctionerrors.ErrInvalidInput)
	}

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return fmt.Errorf("service: delete slots: %w", err)
	}
	if err := s.checkEditable(product); err != nil {
		return err
	}

	for _, id := range slotIDs {
		sl, err := s.repo.GetSlot(id)
		if err != nil {
			return fmt.Errorf("service: delete slot %s: %w", id, err)
		}
		if sl.ProductID != productID {
			return fmt.Errorf("service: delete slot %s: %w", id, auctionerrors.ErrProductMismatch)
		}
	}

	if err := s.repo.DeleteSlots(slotIDs); err != nil {
		return fmt.Errorf("service: delete slots for product %s: %w", productID, err)
	}

	remaining, err := s.repo.GetSlotsByProduct(productID)
	if err != nil {
		return fmt.Errorf("service: delete slots for product %s: %w", productID, err)
	}

	if err := s.reconcileStatus(product, slotValueSum(remaining)); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"product_id": productID, "slots": len(slotIDs)}).Info("slots deleted")
	return nil
}

// checkEditable rejects slot changes once bidding has started or the product
// is sold
func (s *Service) checkEditable(product models.Product) error {
	switch product.Status {
	case models.StatusBidStarted, models.StatusBidEnded:
		return fmt.Errorf("service: product %s: %w", product.ProductID, auctionerrors.ErrBidStarted)
	case models.StatusSold:
		return fmt.Errorf("service: product %s: %w", product.ProductID, auctionerrors.ErrAlreadySold)
	}
	return nil
}

// reconcileStatus moves the product between READY_FOR_SLOT and READY_FOR_BID
// based on how the slot value sum compares to the product amount
func (s *Service) reconcileStatus(product models.Product, total float64) error {
	switch {
	case total == product.Amount && product.Status != models.StatusReadyForBid:
		return s.transition(product, models.StatusReadyForBid, true)
	case total < product.Amount && product.Status == models.StatusReadyForBid:
		return s.transition(product, models.StatusReadyForSlot, total > 0)
	}
	return nil
}

func (s *Service) transition(product models.Product, target models.ProductStatus, hasSlots bool) error {
	if err := lifecycle.Validate(product.Status, target); err != nil {
		return fmt.Errorf("service: product %s: %w", product.ProductID, err)
	}
	product.Status = target
	product.HasSlots = hasSlots
	product.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateProduct(product); err != nil {
		return fmt.Errorf("service: transition product %s to %s: %w", product.ProductID, target, err)
	}
	return nil
}

func slotValueSum(slots []models.Slot) float64 {
	sum := 0.0
	for _, sl := range slots {
		sum += float64(sl.SlotCount) * sl.BidPrice
	}
	return sum
}
