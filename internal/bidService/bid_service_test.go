package bid

import (
	"testing"
	"time"

	"slot-auction/internal/auctionerrors"
	"slot-auction/internal/locker"
	model "slot-auction/internal/models"
	"slot-auction/internal/repository"
	"slot-auction/utils"

	"github.com/stretchr/testify/require"
)

// fixture wires a service over a fresh in-memory repo with one biddable
// product: amount 100, slots 5x@10 and 2x@25. The clock is frozen so the
// withdrawal window can be tested deterministically.
type fixture struct {
	service   *Service
	repo      *repository.MemoryRepo
	productID string
	slotLow   string // 5 units at price 10
	slotHigh  string // 2 units at price 25
	clock     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	productID := utils.GenerateID()
	require.NoError(t, repo.CreateProduct(model.Product{
		ProductID: productID,
		Name:      "Lamp",
		Amount:    100,
		Status:    model.StatusReadyForBid,
		HasSlots:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	slotLow := utils.GenerateID()
	slotHigh := utils.GenerateID()
	require.NoError(t, repo.SaveSlot(model.Slot{SlotID: slotLow, ProductID: productID, BidPrice: 10, SlotCount: 5, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.SaveSlot(model.Slot{SlotID: slotHigh, ProductID: productID, BidPrice: 25, SlotCount: 2, CreatedAt: now, UpdatedAt: now}))

	f := &fixture{
		service:   NewService(repo, locker.New(), utils.NewEntry("test")),
		repo:      repo,
		productID: productID,
		slotLow:   slotLow,
		slotHigh:  slotHigh,
		clock:     now,
	}
	f.service.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func (f *fixture) product(t *testing.T) model.Product {
	t.Helper()
	p, err := f.repo.GetProduct(f.productID)
	require.NoError(t, err)
	return p
}

// Tests PlaceBid
func TestBidService_PlaceBid(t *testing.T) {
	t.Parallel()

	t.Run("first_bid_starts_bidding", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10},
		})
		require.NoError(t, err)
		require.Equal(t, model.BidActive, placed.Status)
		require.True(t, placed.IsWithdrawable)
		require.Equal(t, 20.0, placed.TotalAmount)

		p := f.product(t)
		require.Equal(t, model.StatusBidStarted, p.Status)
		require.True(t, p.HasBids)
	})

	t.Run("repeat_bid_merges_into_existing", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		first, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 1, BidPrice: 10},
		})
		require.NoError(t, err)

		second, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10},
			{SlotID: f.slotHigh, Count: 1, BidPrice: 25},
		})
		require.NoError(t, err)
		require.Equal(t, first.BidID, second.BidID)
		require.Equal(t, 55.0, second.TotalAmount)
		require.Len(t, second.Slots, 2)

		// still one active bid for the user
		bids, err := f.repo.GetBidsByProduct(f.productID, model.BidActive)
		require.NoError(t, err)
		require.Len(t, bids, 1)
	})

	t.Run("duplicate_slot_ids_in_one_request_combine", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		// 3 + 3 on a 5-unit slot must be judged as 6, not twice 3
		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 3, BidPrice: 10},
			{SlotID: f.slotLow, Count: 3, BidPrice: 10},
		})
		require.ErrorIs(t, err, auctionerrors.ErrInsufficientSlots)
	})

	t.Run("overbooking_rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotHigh, Count: 3, BidPrice: 25},
		})
		require.ErrorIs(t, err, auctionerrors.ErrInsufficientSlots)
	})

	t.Run("stale_price_rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 1, BidPrice: 12},
		})
		require.ErrorIs(t, err, auctionerrors.ErrInvalidBidPrice)
	})

	t.Run("unknown_slot_rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: "ghost", Count: 1, BidPrice: 10},
		})
		require.ErrorIs(t, err, auctionerrors.ErrSlotNotFound)
	})

	t.Run("saturating_bid_ends_bidding_and_freezes_withdrawals", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		first, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 5, BidPrice: 10},
		})
		require.NoError(t, err)
		require.True(t, first.IsWithdrawable)

		second, err := f.service.PlaceBid(f.productID, "user2", []model.BidSlot{
			{SlotID: f.slotHigh, Count: 2, BidPrice: 25},
		})
		require.NoError(t, err)
		require.False(t, second.IsWithdrawable)

		p := f.product(t)
		require.Equal(t, model.StatusBidEnded, p.Status)

		// the earlier bid is frozen too
		stored, err := f.repo.GetBid(first.BidID)
		require.NoError(t, err)
		require.False(t, stored.IsWithdrawable)
	})

	t.Run("single_bid_can_saturate_from_ready_for_bid", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 5, BidPrice: 10},
			{SlotID: f.slotHigh, Count: 2, BidPrice: 25},
		})
		require.NoError(t, err)
		require.False(t, placed.IsWithdrawable)
		require.Equal(t, model.StatusBidEnded, f.product(t).Status)
	})

	t.Run("bidding_rejected_after_bid_ended", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 5, BidPrice: 10},
			{SlotID: f.slotHigh, Count: 2, BidPrice: 25},
		})
		require.NoError(t, err)

		_, err = f.service.PlaceBid(f.productID, "user2", []model.BidSlot{
			{SlotID: f.slotLow, Count: 1, BidPrice: 10},
		})
		require.ErrorIs(t, err, auctionerrors.ErrBidEnded)
	})

	t.Run("product_not_ready_rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		p := f.product(t)
		p.Status = model.StatusReadyForSlot
		require.NoError(t, f.repo.UpdateProduct(p))

		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 1, BidPrice: 10},
		})
		require.ErrorIs(t, err, auctionerrors.ErrProductNotReady)
	})

	t.Run("invalid_inputs", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.PlaceBid("", "user1", []model.BidSlot{{SlotID: f.slotLow, Count: 1, BidPrice: 10}})
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)

		_, err = f.service.PlaceBid(f.productID, "", []model.BidSlot{{SlotID: f.slotLow, Count: 1, BidPrice: 10}})
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)

		_, err = f.service.PlaceBid(f.productID, "user1", nil)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)

		_, err = f.service.PlaceBid(f.productID, "user1", []model.BidSlot{{SlotID: f.slotLow, Count: 0, BidPrice: 10}})
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})
}

// Tests WithdrawBid
func TestBidService_WithdrawBid(t *testing.T) {
	t.Parallel()

	t.Run("withdraw_within_window", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10},
		})
		require.NoError(t, err)

		f.advance(10 * time.Minute)
		withdrawn, err := f.service.WithdrawBid(placed.BidID, "changed my mind")
		require.NoError(t, err)
		require.Equal(t, model.BidWithdrawn, withdrawn.Status)
		require.NotNil(t, withdrawn.WithdrawalTime)
		require.Equal(t, "changed my mind", withdrawn.WithdrawalReason)
	})

	t.Run("small_bid_window_expires_after_30_minutes", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10},
		})
		require.NoError(t, err)

		f.advance(40 * time.Minute)
		_, err = f.service.WithdrawBid(placed.BidID, "")
		require.ErrorIs(t, err, auctionerrors.ErrWithdrawalExpired)
	})

	t.Run("exactly_at_window_limit_still_allowed", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10},
		})
		require.NoError(t, err)

		f.advance(30 * time.Minute)
		_, err = f.service.WithdrawBid(placed.BidID, "")
		require.NoError(t, err)
	})

	t.Run("large_bid_gets_24_hour_window", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		// raise the product's capacity so a >= 1000 bid fits
		p := f.product(t)
		p.Amount = 5000
		require.NoError(t, f.repo.UpdateProduct(p))
		bigSlot := utils.GenerateID()
		require.NoError(t, f.repo.SaveSlot(model.Slot{SlotID: bigSlot, ProductID: f.productID, BidPrice: 500, SlotCount: 4, CreatedAt: f.clock, UpdatedAt: f.clock}))

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: bigSlot, Count: 3, BidPrice: 500},
		})
		require.NoError(t, err)
		require.Equal(t, 1500.0, placed.TotalAmount)

		f.advance(23 * time.Hour)
		withdrawn, err := f.service.WithdrawBid(placed.BidID, "")
		require.NoError(t, err)
		require.Equal(t, model.BidWithdrawn, withdrawn.Status)
	})

	t.Run("large_bid_expires_after_24_hours", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		p := f.product(t)
		p.Amount = 5000
		require.NoError(t, f.repo.UpdateProduct(p))
		bigSlot := utils.GenerateID()
		require.NoError(t, f.repo.SaveSlot(model.Slot{SlotID: bigSlot, ProductID: f.productID, BidPrice: 500, SlotCount: 4, CreatedAt: f.clock, UpdatedAt: f.clock}))

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: bigSlot, Count: 2, BidPrice: 500},
		})
		require.NoError(t, err)

		f.advance(25 * time.Hour)
		_, err = f.service.WithdrawBid(placed.BidID, "")
		require.ErrorIs(t, err, auctionerrors.ErrWithdrawalExpired)
	})

	t.Run("withdrawal_blocked_when_all_slots_full", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		first, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 5, BidPrice: 10},
		})
		require.NoError(t, err)
		_, err = f.service.PlaceBid(f.productID, "user2", []model.BidSlot{
			{SlotID: f.slotHigh, Count: 2, BidPrice: 25},
		})
		require.NoError(t, err)

		_, err = f.service.WithdrawBid(first.BidID, "")
		require.ErrorIs(t, err, auctionerrors.ErrSlotsFull)
	})

	t.Run("freed_capacity_reopens_bidding", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		first, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 5, BidPrice: 10},
		})
		require.NoError(t, err)
		second, err := f.service.PlaceBid(f.productID, "user2", []model.BidSlot{
			{SlotID: f.slotHigh, Count: 2, BidPrice: 25},
		})
		require.NoError(t, err)
		require.Equal(t, model.StatusBidEnded, f.product(t).Status)

		// simulate an operator releasing user2's bid: flip it withdrawable
		// is not enough while the product is saturated, so free capacity by
		// marking the bid withdrawn directly
		stored, err := f.repo.GetBid(second.BidID)
		require.NoError(t, err)
		stored.Status = model.BidWithdrawn
		require.NoError(t, f.repo.SaveBid(stored))

		// restore the flag the saturation freeze cleared
		require.NoError(t, f.repo.SetWithdrawableByProduct(f.productID, true))

		withdrawn, err := f.service.WithdrawBid(first.BidID, "")
		require.NoError(t, err)
		require.Equal(t, model.BidWithdrawn, withdrawn.Status)

		p := f.product(t)
		require.Equal(t, model.StatusReadyForBid, p.Status)
	})

	t.Run("withdrawn_bid_cannot_withdraw_again", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 1, BidPrice: 10},
		})
		require.NoError(t, err)

		_, err = f.service.WithdrawBid(placed.BidID, "")
		require.NoError(t, err)

		_, err = f.service.WithdrawBid(placed.BidID, "")
		require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)
	})

	t.Run("missing_bid", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.WithdrawBid("ghost", "")
		require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)
	})

	t.Run("withdrawn_units_become_available_again", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 3, BidPrice: 10},
		})
		require.NoError(t, err)

		_, err = f.service.WithdrawBid(placed.BidID, "")
		require.NoError(t, err)

		status, err := f.service.GetSlotStatus(f.productID)
		require.NoError(t, err)
		require.Equal(t, 5, status[0].AvailableSlots)
	})
}

// Tests GetLeaderboard
func TestBidService_GetLeaderboard(t *testing.T) {
	t.Parallel()

	t.Run("ranks_by_total_amount", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10}, // 20
		})
		require.NoError(t, err)
		f.advance(time.Minute)
		_, err = f.service.PlaceBid(f.productID, "user2", []model.BidSlot{
			{SlotID: f.slotHigh, Count: 2, BidPrice: 25}, // 50
		})
		require.NoError(t, err)

		entries, err := f.service.GetLeaderboard(f.productID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "user2", entries[0].UserID)
		require.Equal(t, 50.0, entries[0].TotalAmount)
		require.Equal(t, 2, entries[0].TotalSlots)
		require.Equal(t, 25.0, entries[0].AverageBidPrice)
		require.Equal(t, "user1", entries[1].UserID)
	})

	t.Run("tie_broken_by_earliest_bid", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10},
		})
		require.NoError(t, err)
		f.advance(time.Minute)
		_, err = f.service.PlaceBid(f.productID, "user2", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10},
		})
		require.NoError(t, err)

		entries, err := f.service.GetLeaderboard(f.productID)
		require.NoError(t, err)
		require.Equal(t, "user1", entries[0].UserID)
		require.Equal(t, "user2", entries[1].UserID)
	})

	t.Run("withdrawn_bids_excluded", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		placed, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 2, BidPrice: 10},
		})
		require.NoError(t, err)
		_, err = f.service.WithdrawBid(placed.BidID, "")
		require.NoError(t, err)

		entries, err := f.service.GetLeaderboard(f.productID)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("average_price_rounds_to_cents", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
			{SlotID: f.slotLow, Count: 1, BidPrice: 10},
			{SlotID: f.slotHigh, Count: 2, BidPrice: 25},
		})
		require.NoError(t, err)

		entries, err := f.service.GetLeaderboard(f.productID)
		require.NoError(t, err)
		// (10 + 50) / 3 = 20.0
		require.Equal(t, 20.0, entries[0].AverageBidPrice)
	})

	t.Run("missing_product", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.service.GetLeaderboard("ghost")
		require.ErrorIs(t, err, auctionerrors.ErrProductNotFound)
	})
}

// Tests GetSlotStatus
func TestBidService_GetSlotStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.service.PlaceBid(f.productID, "user1", []model.BidSlot{
		{SlotID: f.slotLow, Count: 3, BidPrice: 10},
	})
	require.NoError(t, err)

	status, err := f.service.GetSlotStatus(f.productID)
	require.NoError(t, err)
	require.Len(t, status, 2)
	require.Equal(t, f.slotLow, status[0].SlotID) // ordered by price
	require.Equal(t, 3, status[0].BookedSlots)
	require.Equal(t, 2, status[0].AvailableSlots)
	require.Equal(t, 0, status[1].BookedSlots)
}
