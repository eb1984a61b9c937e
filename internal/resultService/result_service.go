package result

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"slot-auction/internal/auctionerrors"
	"slot-auction/internal/lifecycle"
	"slot-auction/internal/locker"
	"slot-auction/internal/models"
	"slot-auction/internal/repository"
	"slot-auction/utils"

	"github.com/sirupsen/logrus"
)

// Service runs the weighted lottery for a product and records its result
// exactly once. Declaration holds the product lock for the whole sequence:
// existence check, status check, weight computation, draw, persistence and
// the transition to SOLD.
type Service struct {
	repo  repository.AuctionDB
	locks *locker.Locker
	log   *logrus.Entry
	rng   *rand.Rand
}

// NewService creates a new result Service instance. A nil rng falls back to a
// time-seeded source; tests pass a fixed seed for deterministic draws.
func NewService(repo repository.AuctionDB, locks *locker.Locker, log *logrus.Entry, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		repo:  repo,
		locks: locks,
		log:   log,
		rng:   rng,
	}
}

// weightedUser is one user's ticket computation plus their cumulative upper
// bound in the draw range
type weightedUser struct {
	userID     string
	bidID      string
	breakdown  models.WeightBreakdown
	cumulative int
}

// DeclareResult draws the winner for a product whose bidding has ended and
// persists the result. A second call for the same product fails.
func (s *Service) DeclareResult(productID string) (models.Result, error) {
	if productID == "" {
		return models.Result{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}

	s.locks.Lock(productID)
	defer s.locks.Unlock(productID)

	if _, err := s.repo.GetResultByProduct(productID); err == nil {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, auctionerrors.ErrAlreadyDeclared)
	} else if !errors.Is(err, auctionerrors.ErrResultNotFound) {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, err)
	}

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Result{}, fmt.Errorf("service: declare result: %w", err)
	}
	if product.Status != models.StatusBidEnded {
		return models.Result{}, fmt.Errorf("service: declare result for product %s in status %s: %w",
			productID, product.Status, auctionerrors.ErrInvalidProductStatus)
	}

	activeBids, err := s.repo.GetBidsByProduct(productID, models.BidActive)
	if err != nil {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, err)
	}
	if len(activeBids) == 0 {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	weighted, totalTickets, err := s.computeWeights(activeBids)
	if err != nil {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, err)
	}
	if totalTickets == 0 {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, auctionerrors.ErrNoTickets)
	}

	winner := pickWinner(weighted, s.rng.Intn(totalTickets))

	calculation := make(map[string]models.WeightBreakdown, len(weighted))
	for _, u := range weighted {
		calculation[u.userID] = u.breakdown
	}

	res := models.Result{
		ResultID:          utils.GenerateID(),
		ProductID:         productID,
		WinnerID:          winner.userID,
		WinningBidID:      winner.bidID,
		WeightCalculation: calculation,
		TotalTickets:      totalTickets,
		DeclaredAt:        time.Now().UTC(),
	}
	if err := s.repo.SaveResult(res); err != nil {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, err)
	}

	if err := lifecycle.Validate(product.Status, models.StatusSold); err != nil {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, err)
	}
	product.Status = models.StatusSold
	product.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateProduct(product); err != nil {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, err)
	}

	// The sold product's bids are frozen for good.
	if err := s.repo.LockBidsByProduct(productID); err != nil {
		return models.Result{}, fmt.Errorf("service: declare result for product %s: %w", productID, err)
	}

	s.log.WithFields(logrus.Fields{
		"product_id":    productID,
		"winner_id":     winner.userID,
		"total_tickets": totalTickets,
	}).Info("result declared")
	return res, nil
}

// GetResult returns the declared result for a product
func (s *Service) GetResult(productID string) (models.Result, error) {
	if productID == "" {
		return models.Result{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}

	res, err := s.repo.GetResultByProduct(productID)
	if err != nil {
		return models.Result{}, fmt.Errorf("service: get result: %w", err)
	}
	return res, nil
}

// computeWeights groups active bids by user in first-appearance order and
// builds each user's ticket breakdown plus the cumulative draw bounds in one
// fixed pass.
func (s *Service) computeWeights(activeBids []models.Bid) ([]weightedUser, int, error) {
	order := make([]string, 0)
	grouped := make(map[string][]models.Bid)
	for _, b := range activeBids {
		if _, ok := grouped[b.UserID]; !ok {
			order = append(order, b.UserID)
		}
		grouped[b.UserID] = append(grouped[b.UserID], b)
	}

	weighted := make([]weightedUser, 0, len(order))
	cumulative := 0
	for _, userID := range order {
		userBids := grouped[userID]

		baseTickets := 0
		totalAmount := 0.0
		for _, b := range userBids {
			totalAmount += b.TotalAmount
			for _, slot := range b.Slots {
				baseTickets += slot.Count
			}
		}

		historyCount, err := s.repo.CountBidsByUser(userID)
		if err != nil {
			return nil, 0, err
		}
		newbieBoost := 0
		if historyCount < 2 {
			newbieBoost = 1
		}

		performanceBonus := int(totalAmount * 0.05)

		previousWins, err := s.repo.CountWinsByUser(userID)
		if err != nil {
			return nil, 0, err
		}
		decayPenalty := int(float64(baseTickets+performanceBonus) * 0.1 * float64(previousWins))

		// Clamped at zero: a heavy decay penalty removes a user from the
		// draw rather than producing a negative interval.
		finalWeight := baseTickets + newbieBoost + performanceBonus - decayPenalty
		if finalWeight < 0 {
			finalWeight = 0
		}

		cumulative += finalWeight
		weighted = append(weighted, weightedUser{
			userID: userID,
			bidID:  userBids[0].BidID,
			breakdown: models.WeightBreakdown{
				BaseTickets:      baseTickets,
				NewbieBoost:      newbieBoost,
				PerformanceBonus: performanceBonus,
				DecayPenalty:     decayPenalty,
				FinalWeight:      finalWeight,
			},
			cumulative: cumulative,
		})
	}
	return weighted, cumulative, nil
}

// pickWinner returns the first user whose cumulative upper bound exceeds the
// draw. draw must be in [0, totalTickets).
func pickWinner(weighted []weightedUser, draw int) weightedUser {
	for _, u := range weighted {
		if u.cumulative > draw {
			return u
		}
	}
	// unreachable for a draw inside the range
	return weighted[len(weighted)-1]
}
