package repository

import (
	"path/filepath"
	"testing"
	"time"

	"slot-auction/internal/auctionerrors"
	model "slot-auction/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to open a throwaway database in the test's temp dir
func newTestSQLiteRepo(t *testing.T) *SQLiteRepo {
	t.Helper()

	repo, err := NewSQLiteRepo(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// Test product round-trip
func TestSQLiteRepo_Products(t *testing.T) {
	t.Parallel()

	repo := newTestSQLiteRepo(t)
	now := time.Now().UTC()

	p := newProduct("product1", 100, now)
	p.Image = "https://example.com/p1.png"
	p.HasSlots = true
	require.NoError(t, repo.CreateProduct(p))

	t.Run("round_trip_preserves_fields", func(t *testing.T) {
		got, err := repo.GetProduct("product1")
		require.NoError(t, err)
		require.Equal(t, p.ProductID, got.ProductID)
		require.Equal(t, p.Name, got.Name)
		require.Equal(t, p.Image, got.Image)
		require.Equal(t, p.Amount, got.Amount)
		require.Equal(t, p.Status, got.Status)
		require.True(t, got.HasSlots)
		require.False(t, got.HasBids)
		require.Equal(t, p.CreatedAt.UnixNano(), got.CreatedAt.UnixNano())
	})

	t.Run("get_missing", func(t *testing.T) {
		_, err := repo.GetProduct("ghost")
		require.ErrorIs(t, err, auctionerrors.ErrProductNotFound)
	})

	t.Run("list_ordered", func(t *testing.T) {
		require.NoError(t, repo.CreateProduct(newProduct("product2", 200, now.Add(time.Second))))

		products, err := repo.ListProducts()
		require.NoError(t, err)
		require.Len(t, products, 2)
		require.Equal(t, "product1", products[0].ProductID)
		require.Equal(t, "product2", products[1].ProductID)
	})

	t.Run("update", func(t *testing.T) {
		p.Status = model.StatusReadyForBid
		p.UpdatedAt = now.Add(time.Minute)
		require.NoError(t, repo.UpdateProduct(p))

		got, err := repo.GetProduct("product1")
		require.NoError(t, err)
		require.Equal(t, model.StatusReadyForBid, got.Status)
	})

	t.Run("update_missing", func(t *testing.T) {
		err := repo.UpdateProduct(newProduct("ghost", 1, now))
		require.ErrorIs(t, err, auctionerrors.ErrProductNotFound)
	})

	t.Run("delete_cascades_slots", func(t *testing.T) {
		s := newSlot("slot1", "product2", 10, 5)
		s.CreatedAt = now
		s.UpdatedAt = now
		require.NoError(t, repo.SaveSlot(s))

		require.NoError(t, repo.DeleteProduct("product2"))
		_, err := repo.GetSlot("slot1")
		require.ErrorIs(t, err, auctionerrors.ErrSlotNotFound)
	})
}

// Test bid round-trip with JSON slot entries and nullable withdrawal fields
func TestSQLiteRepo_Bids(t *testing.T) {
	t.Parallel()

	repo := newTestSQLiteRepo(t)
	now := time.Now().UTC()

	b := newBid("bid1", "product1", "user1", model.BidActive, now)
	b.Slots = []model.BidSlot{
		{SlotID: "slot1", Count: 2, BidPrice: 10},
		{SlotID: "slot2", Count: 1, BidPrice: 25},
	}
	b.TotalAmount = 45
	require.NoError(t, repo.SaveBid(b))

	t.Run("round_trip_preserves_slot_entries", func(t *testing.T) {
		got, err := repo.GetBid("bid1")
		require.NoError(t, err)
		require.Equal(t, b.Slots, got.Slots)
		require.Equal(t, b.TotalAmount, got.TotalAmount)
		require.True(t, got.IsWithdrawable)
		require.Nil(t, got.WithdrawalTime)
		require.Equal(t, b.CreatedAt.UnixNano(), got.CreatedAt.UnixNano())
	})

	t.Run("withdrawal_fields_round_trip", func(t *testing.T) {
		withdrawnAt := now.Add(10 * time.Minute)
		b2 := newBid("bid2", "product1", "user2", model.BidWithdrawn, now.Add(time.Second))
		b2.WithdrawalTime = &withdrawnAt
		b2.WithdrawalReason = "changed my mind"
		require.NoError(t, repo.SaveBid(b2))

		got, err := repo.GetBid("bid2")
		require.NoError(t, err)
		require.Equal(t, model.BidWithdrawn, got.Status)
		require.NotNil(t, got.WithdrawalTime)
		require.Equal(t, withdrawnAt.UnixNano(), got.WithdrawalTime.UnixNano())
		require.Equal(t, "changed my mind", got.WithdrawalReason)
	})

	t.Run("filter_by_status", func(t *testing.T) {
		active, err := repo.GetBidsByProduct("product1", model.BidActive)
		require.NoError(t, err)
		require.Len(t, active, 1)
		require.Equal(t, "bid1", active[0].BidID)

		all, err := repo.GetBidsByProduct("product1", "")
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("active_bid_by_user", func(t *testing.T) {
		got, err := repo.GetActiveBidByUser("product1", "user1")
		require.NoError(t, err)
		require.Equal(t, "bid1", got.BidID)

		_, err = repo.GetActiveBidByUser("product1", "user2")
		require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)
	})

	t.Run("bulk_flag_and_lock", func(t *testing.T) {
		require.NoError(t, repo.SetWithdrawableByProduct("product1", false))
		got, err := repo.GetBid("bid1")
		require.NoError(t, err)
		require.False(t, got.IsWithdrawable)

		require.NoError(t, repo.LockBidsByProduct("product1"))
		got, err = repo.GetBid("bid1")
		require.NoError(t, err)
		require.Equal(t, model.BidLocked, got.Status)

		// withdrawn bid untouched by either flip
		got, err = repo.GetBid("bid2")
		require.NoError(t, err)
		require.Equal(t, model.BidWithdrawn, got.Status)
	})

	t.Run("count_bids_by_user", func(t *testing.T) {
		count, err := repo.CountBidsByUser("user1")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

// Test result round-trip with JSON weight breakdowns
func TestSQLiteRepo_Results(t *testing.T) {
	t.Parallel()

	repo := newTestSQLiteRepo(t)
	now := time.Now().UTC()

	res := model.Result{
		ResultID:     "result1",
		ProductID:    "product1",
		WinnerID:     "user1",
		WinningBidID: "bid1",
		WeightCalculation: map[string]model.WeightBreakdown{
			"user1": {BaseTickets: 3, NewbieBoost: 1, PerformanceBonus: 2, DecayPenalty: 0, FinalWeight: 6},
			"user2": {BaseTickets: 2, NewbieBoost: 0, PerformanceBonus: 1, DecayPenalty: 1, FinalWeight: 2},
		},
		TotalTickets: 8,
		DeclaredAt:   now,
	}

	require.NoError(t, repo.SaveResult(res))

	t.Run("round_trip_preserves_breakdowns", func(t *testing.T) {
		got, err := repo.GetResultByProduct("product1")
		require.NoError(t, err)
		require.Equal(t, res.WinnerID, got.WinnerID)
		require.Equal(t, res.WeightCalculation, got.WeightCalculation)
		require.Equal(t, res.TotalTickets, got.TotalTickets)
		require.Equal(t, res.DeclaredAt.UnixNano(), got.DeclaredAt.UnixNano())
	})

	t.Run("second_save_rejected", func(t *testing.T) {
		err := repo.SaveResult(model.Result{ResultID: "result2", ProductID: "product1", WinnerID: "user2", DeclaredAt: now})
		require.ErrorIs(t, err, auctionerrors.ErrAlreadyDeclared)
	})

	t.Run("get_missing", func(t *testing.T) {
		_, err := repo.GetResultByProduct("ghost")
		require.ErrorIs(t, err, auctionerrors.ErrResultNotFound)
	})

	t.Run("count_wins", func(t *testing.T) {
		wins, err := repo.CountWinsByUser("user1")
		require.NoError(t, err)
		require.Equal(t, 1, wins)
	})
}

// Reopening the database must preserve stored data
func TestSQLiteRepo_Persistence(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "persist.db")
	now := time.Now().UTC()

	first, err := NewSQLiteRepo(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.CreateProduct(newProduct("product1", 100, now)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteRepo(dbPath)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.GetProduct("product1")
	require.NoError(t, err)
	require.Equal(t, "product1", got.ProductID)
	require.Equal(t, 100.0, got.Amount)
}
