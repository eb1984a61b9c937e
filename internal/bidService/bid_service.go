package bid

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"slot-auction/internal/auctionerrors"
	"slot-auction/internal/inventory"
	"slot-auction/internal/lifecycle"
	"slot-auction/internal/locker"
	"slot-auction/internal/models"
	"slot-auction/internal/repository"
	"slot-auction/utils"

	"github.com/sirupsen/logrus"
)

// Withdrawal windows, tiered by bid value. Elapsed time strictly exceeding
// the window blocks the withdrawal; exactly at the limit is still allowed.
const (
	smallBidThreshold   = 1000
	smallBidWindow      = 30 * time.Minute
	largeBidWindow      = 24 * time.Hour
	leaderboardCapacity = 10
)

// Service defines the business logic for placing and withdrawing bids. All
// mutations for a product run under that product's lock: availability is
// re-derived inside the lock and every validation completes before the first
// write.
type Service struct {
	repo  repository.AuctionDB
	locks *locker.Locker
	log   *logrus.Entry
	now   func() time.Time
}

// NewService creates a new bid Service instance
func NewService(repo repository.AuctionDB, locks *locker.Locker, log *logrus.Entry) *Service {
	return &Service{
		repo:  repo,
		locks: locks,
		log:   log,
		now:   time.Now,
	}
}

// LeaderboardEntry is one user's aggregated standing on a product
type LeaderboardEntry struct {
	UserID          string    `json:"user_id"`
	TotalAmount     float64   `json:"total_amount"`
	TotalSlots      int       `json:"total_slots"`
	AverageBidPrice float64   `json:"average_bid_price"`
	BidCount        int       `json:"bid_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// PlaceBid reserves slot units for a user. A repeat placement merges into the
// user's existing active bid instead of creating a second one. Saturating the
// last slot ends bidding and freezes withdrawability on all active bids.
func (s *Service) PlaceBid(productID, userID string, requested []models.BidSlot) (models.Bid, error) {
	if productID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing productID or userID", auctionerrors.ErrInvalidInput)
	}
	if len(requested) == 0 {
		return models.Bid{}, fmt.Errorf("service: %w - no slots requested", auctionerrors.ErrInvalidInput)
	}
	for _, req := range requested {
		if req.SlotID == "" || req.Count <= 0 || req.BidPrice <= 0 {
			return models.Bid{}, fmt.Errorf("service: %w - invalid slot request", auctionerrors.ErrInvalidInput)
		}
	}
	requested = mergeRequested(requested)

	s.locks.Lock(productID)
	defer s.locks.Unlock(productID)

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid: %w", err)
	}
	if product.Status == models.StatusBidEnded {
		return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, auctionerrors.ErrBidEnded)
	}
	if !lifecycle.CanAcceptBids(product.Status) {
		return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, auctionerrors.ErrProductNotReady)
	}

	slots, err := s.repo.GetSlotsByProduct(productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
	}
	if len(slots) == 0 {
		return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, auctionerrors.ErrNoSlotsConfigured)
	}

	activeBids, err := s.repo.GetBidsByProduct(productID, models.BidActive)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
	}
	availability := inventory.ComputeMap(slots, activeBids)

	for _, req := range requested {
		avail, ok := availability[req.SlotID]
		if !ok {
			return models.Bid{}, fmt.Errorf("service: slot %s: %w", req.SlotID, auctionerrors.ErrSlotNotFound)
		}
		if req.Count > avail.AvailableSlots {
			return models.Bid{}, fmt.Errorf("service: slot %s has %d available, requested %d: %w",
				req.SlotID, avail.AvailableSlots, req.Count, auctionerrors.ErrInsufficientSlots)
		}
		// stale-price protection: the request must carry the configured price
		if req.BidPrice != avail.BidPrice {
			return models.Bid{}, fmt.Errorf("service: slot %s priced at %.2f, got %.2f: %w",
				req.SlotID, avail.BidPrice, req.BidPrice, auctionerrors.ErrInvalidBidPrice)
		}
	}

	now := s.now().UTC()
	var saved models.Bid
	existing, err := s.repo.GetActiveBidByUser(productID, userID)
	switch {
	case err == nil:
		saved = mergeBid(existing, requested, now)
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		saved = models.Bid{
			BidID:          utils.GenerateID(),
			ProductID:      productID,
			UserID:         userID,
			Slots:          requested,
			TotalAmount:    requestValue(requested),
			Status:         models.BidActive,
			IsWithdrawable: true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	default:
		return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
	}

	if err := s.repo.SaveBid(saved); err != nil {
		return models.Bid{}, fmt.Errorf("service: save bid for product %s: %w", productID, err)
	}

	// First bid moves the product into BID_STARTED before the saturation
	// check, so a single bid that fills everything still walks legal edges.
	if !product.HasBids || product.Status == models.StatusReadyForBid {
		if product.Status == models.StatusReadyForBid {
			if err := lifecycle.Validate(product.Status, models.StatusBidStarted); err != nil {
				return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
			}
			product.Status = models.StatusBidStarted
		}
		product.HasBids = true
		product.UpdatedAt = now
		if err := s.repo.UpdateProduct(product); err != nil {
			return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
		}
	}

	activeBids, err = s.repo.GetBidsByProduct(productID, models.BidActive)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
	}
	if inventory.AllFull(inventory.Compute(slots, activeBids)) {
		if err := lifecycle.Validate(product.Status, models.StatusBidEnded); err != nil {
			return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
		}
		product.Status = models.StatusBidEnded
		product.UpdatedAt = now
		if err := s.repo.UpdateProduct(product); err != nil {
			return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
		}
		if err := s.repo.SetWithdrawableByProduct(productID, false); err != nil {
			return models.Bid{}, fmt.Errorf("service: place bid on product %s: %w", productID, err)
		}
		saved.IsWithdrawable = false
	}

	s.log.WithFields(logrus.Fields{
		"product_id": productID,
		"user_id":    userID,
		"bid_id":     saved.BidID,
		"slots":      len(requested),
	}).Info("bid placed")
	return saved, nil
}

// WithdrawBid withdraws an active bid within its time window. Withdrawing
// from a saturated product is rejected outright; a successful withdrawal on a
// BID_ENDED product that frees capacity reopens bidding and restores
// withdrawability on the remaining active bids.
func (s *Service) WithdrawBid(bidID, reason string) (models.Bid, error) {
	if bidID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty bid ID", auctionerrors.ErrInvalidInput)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: withdraw bid: %w", err)
	}

	s.locks.Lock(bid.ProductID)
	defer s.locks.Unlock(bid.ProductID)

	// Re-read inside the lock; a concurrent withdrawal may have beaten us.
	bid, err = s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: withdraw bid: %w", err)
	}
	if bid.Status != models.BidActive {
		return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}

	product, err := s.repo.GetProduct(bid.ProductID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, err)
	}
	slots, err := s.repo.GetSlotsByProduct(bid.ProductID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, err)
	}
	activeBids, err := s.repo.GetBidsByProduct(bid.ProductID, models.BidActive)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, err)
	}

	// Hybrid rule: no withdrawals once every slot is booked, regardless of
	// the bid's own flag.
	if inventory.AllFull(inventory.Compute(slots, activeBids)) {
		return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, auctionerrors.ErrSlotsFull)
	}
	if !bid.IsWithdrawable {
		return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, auctionerrors.ErrNotWithdrawable)
	}

	now := s.now().UTC()
	window := smallBidWindow
	if bid.TotalAmount >= smallBidThreshold {
		window = largeBidWindow
	}
	if now.Sub(bid.CreatedAt) > window {
		return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, auctionerrors.ErrWithdrawalExpired)
	}

	bid.Status = models.BidWithdrawn
	bid.WithdrawalTime = &now
	bid.WithdrawalReason = reason
	bid.UpdatedAt = now
	if err := s.repo.SaveBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, err)
	}

	if product.Status == models.StatusBidEnded {
		remaining, err := s.repo.GetBidsByProduct(bid.ProductID, models.BidActive)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, err)
		}
		if inventory.HasCapacity(inventory.Compute(slots, remaining)) {
			if err := lifecycle.Validate(product.Status, models.StatusReadyForBid); err != nil {
				return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, err)
			}
			product.Status = models.StatusReadyForBid
			product.UpdatedAt = now
			if err := s.repo.UpdateProduct(product); err != nil {
				return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, err)
			}
			if err := s.repo.SetWithdrawableByProduct(bid.ProductID, true); err != nil {
				return models.Bid{}, fmt.Errorf("service: withdraw bid %s: %w", bidID, err)
			}
			s.log.WithField("product_id", bid.ProductID).Info("capacity freed, product reopened for bidding")
		}
	}

	s.log.WithFields(logrus.Fields{"bid_id": bidID, "product_id": bid.ProductID}).Info("bid withdrawn")
	return bid, nil
}

// GetLeaderboard returns the top bidders on a product by total amount,
// earliest bid first on ties, at most ten entries.
func (s *Service) GetLeaderboard(productID string) ([]LeaderboardEntry, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}
	if _, err := s.repo.GetProduct(productID); err != nil {
		return nil, fmt.Errorf("service: leaderboard: %w", err)
	}

	activeBids, err := s.repo.GetBidsByProduct(productID, models.BidActive)
	if err != nil {
		return nil, fmt.Errorf("service: leaderboard for product %s: %w", productID, err)
	}

	order := make([]string, 0)
	grouped := make(map[string][]models.Bid)
	for _, b := range activeBids {
		if _, ok := grouped[b.UserID]; !ok {
			order = append(order, b.UserID)
		}
		grouped[b.UserID] = append(grouped[b.UserID], b)
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, userID := range order {
		userBids := grouped[userID]
		entry := LeaderboardEntry{
			UserID:    userID,
			BidCount:  len(userBids),
			CreatedAt: userBids[0].CreatedAt,
		}
		totalValue := 0.0
		for _, b := range userBids {
			entry.TotalAmount += b.TotalAmount
			for _, slot := range b.Slots {
				entry.TotalSlots += slot.Count
				totalValue += float64(slot.Count) * slot.BidPrice
			}
			if b.CreatedAt.Before(entry.CreatedAt) {
				entry.CreatedAt = b.CreatedAt
			}
		}
		if entry.TotalSlots > 0 {
			entry.AverageBidPrice = math.Round(totalValue/float64(entry.TotalSlots)*100) / 100
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalAmount != entries[j].TotalAmount {
			return entries[i].TotalAmount > entries[j].TotalAmount
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	if len(entries) > leaderboardCapacity {
		entries = entries[:leaderboardCapacity]
	}
	return entries, nil
}

// GetSlotStatus returns the current availability of every slot on a product
func (s *Service) GetSlotStatus(productID string) ([]inventory.SlotAvailability, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}
	if _, err := s.repo.GetProduct(productID); err != nil {
		return nil, fmt.Errorf("service: slot status: %w", err)
	}

	slots, err := s.repo.GetSlotsByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: slot status for product %s: %w", productID, err)
	}
	if len(slots) == 0 {
		return []inventory.SlotAvailability{}, nil
	}

	activeBids, err := s.repo.GetBidsByProduct(productID, models.BidActive)
	if err != nil {
		return nil, fmt.Errorf("service: slot status for product %s: %w", productID, err)
	}
	return inventory.Compute(slots, activeBids), nil
}

// mergeRequested folds duplicate slot ids in one request into a single entry,
// so availability is checked against the combined count
func mergeRequested(requested []models.BidSlot) []models.BidSlot {
	merged := make([]models.BidSlot, 0, len(requested))
	index := make(map[string]int, len(requested))
	for _, req := range requested {
		if i, ok := index[req.SlotID]; ok {
			merged[i].Count += req.Count
			continue
		}
		index[req.SlotID] = len(merged)
		merged = append(merged, req)
	}
	return merged
}

// mergeBid returns a new bid combining an existing active bid with newly
// requested slots. The stored bid is never mutated in place.
func mergeBid(existing models.Bid, requested []models.BidSlot, now time.Time) models.Bid {
	merged := existing
	merged.Slots = append([]models.BidSlot(nil), existing.Slots...)

	index := make(map[string]int, len(merged.Slots))
	for i, slot := range merged.Slots {
		index[slot.SlotID] = i
	}
	for _, req := range requested {
		if i, ok := index[req.SlotID]; ok {
			merged.Slots[i].Count += req.Count
		} else {
			merged.Slots = append(merged.Slots, req)
		}
		merged.TotalAmount += float64(req.Count) * req.BidPrice
	}
	merged.UpdatedAt = now
	return merged
}

func requestValue(requested []models.BidSlot) float64 {
	total := 0.0
	for _, req := range requested {
		total += float64(req.Count) * req.BidPrice
	}
	return total
}
