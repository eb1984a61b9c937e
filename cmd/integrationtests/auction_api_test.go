package integrationtests

import (
	"net/http"
	"testing"

	"slot-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// createProduct creates a product through the API and returns its id
func createProduct(t *testing.T, router *gin.Engine, name string, amount float64) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/products", "", helpers.CreateProductRequest{
		Name:   name,
		Amount: amount,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return DataObject(t, resp)["product_id"].(string)
}

// configureSlots creates the standard two-tier slot layout (5x@10 + 2x@25 = 100)
func configureSlots(t *testing.T, router *gin.Engine, productID string) (slotLow, slotHigh string) {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/slots/"+productID, "", helpers.CreateSlotsRequest{
		Slots: []helpers.SlotItem{
			{BidPrice: 10, SlotCount: 5},
			{BidPrice: 25, SlotCount: 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	slots := DataArray(t, resp)
	require.Len(t, slots, 2)
	first := slots[0].(map[string]any)
	second := slots[1].(map[string]any)
	return first["slot_id"].(string), second["slot_id"].(string)
}

// Product lifecycle through the HTTP surface
func TestProductLifecycle(t *testing.T) {
	router := SetupTestRouter()

	productID := createProduct(t, router, "Desk Lamp", 100)

	t.Run("created_in_slot_phase", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/products/"+productID, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := DataObject(t, resp)
		require.Equal(t, "READY_FOR_SLOT", data["status"])
		require.Equal(t, 100.0, data["amount"])
	})

	t.Run("full_slot_coverage_makes_it_biddable", func(t *testing.T) {
		configureSlots(t, router, productID)

		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/products/"+productID, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "READY_FOR_BID", DataObject(t, resp)["status"])
	})

	t.Run("amount_locked_once_slots_exist", func(t *testing.T) {
		amount := 150.0
		_, w := ExecuteRequestAndParse(t, router, http.MethodPatch, "/products/"+productID, "", helpers.UpdateProductRequest{
			Amount: &amount,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown_product_404", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/products/ghost", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Full auction flow: configure, bid to saturation, declare, inspect
func TestFullAuctionFlow(t *testing.T) {
	router := SetupTestRouter()

	productID := createProduct(t, router, "Desk Lamp", 100)
	slotLow, slotHigh := configureSlots(t, router, productID)

	// user1 takes the whole low tier
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "user1", helpers.PlaceBidRequest{
		ProductID: productID,
		Slots:     []helpers.BidSlotItem{{SlotID: slotLow, Count: 5, BidPrice: 10}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	firstBid := DataObject(t, resp)
	require.Equal(t, 50.0, firstBid["total_amount"])
	require.Equal(t, true, firstBid["is_withdrawable"])

	// product moved into BID_STARTED
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "BID_STARTED", DataObject(t, resp)["status"])

	// user2 saturates the high tier, which ends bidding
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "user2", helpers.PlaceBidRequest{
		ProductID: productID,
		Slots:     []helpers.BidSlotItem{{SlotID: slotHigh, Count: 2, BidPrice: 25}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, false, DataObject(t, resp)["is_withdrawable"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "BID_ENDED", DataObject(t, resp)["status"])

	// no further bids
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "user3", helpers.PlaceBidRequest{
		ProductID: productID,
		Slots:     []helpers.BidSlotItem{{SlotID: slotLow, Count: 1, BidPrice: 10}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// no withdrawals while saturated
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/withdraw", "user1", helpers.WithdrawBidRequest{
		BidID: firstBid["bid_id"].(string),
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// slot status shows a fully booked product
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/slots/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, entry := range DataArray(t, resp) {
		require.Equal(t, 0.0, entry.(map[string]any)["available_slots"])
	}

	// equal totals on the leaderboard: the earlier bidder ranks first
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/leaderboard/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := DataArray(t, resp)
	require.Len(t, board, 2)
	require.Equal(t, "user1", board[0].(map[string]any)["user_id"])

	// declare the result
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/results", "", helpers.DeclareResultRequest{
		ProductID: productID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	declared := DataObject(t, resp)
	winner := declared["winner_id"].(string)
	require.Contains(t, []string{"user1", "user2"}, winner)
	require.NotEmpty(t, declared["winning_bid_id"])

	// product is sold and a second declaration conflicts
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "SOLD", DataObject(t, resp)["status"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/results", "", helpers.DeclareResultRequest{
		ProductID: productID,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// result is retrievable
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/results/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, winner, DataObject(t, resp)["winner_id"])
}

// Withdrawal reopens a saturated product
func TestWithdrawalReopensBidding(t *testing.T) {
	router := SetupTestRouter()

	productID := createProduct(t, router, "Desk Lamp", 100)
	slotLow, slotHigh := configureSlots(t, router, productID)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "user1", helpers.PlaceBidRequest{
		ProductID: productID,
		Slots: []helpers.BidSlotItem{
			{SlotID: slotLow, Count: 5, BidPrice: 10},
			{SlotID: slotHigh, Count: 1, BidPrice: 25},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bidID := DataObject(t, resp)["bid_id"].(string)

	// one high-tier unit is still free, so withdrawal is allowed
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/withdraw", "user1", helpers.WithdrawBidRequest{
		BidID:  bidID,
		Reason: "changed my mind",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "withdrawn", DataObject(t, resp)["status"])

	// all capacity is back
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/slots/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := DataArray(t, resp)
	require.Equal(t, 5.0, status[0].(map[string]any)["available_slots"])
	require.Equal(t, 2.0, status[1].(map[string]any)["available_slots"])
}

// Bid placement requires a caller identity
func TestPlaceBidRequiresIdentity(t *testing.T) {
	router := SetupTestRouter()

	productID := createProduct(t, router, "Desk Lamp", 100)
	slotLow, _ := configureSlots(t, router, productID)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "", helpers.PlaceBidRequest{
		ProductID: productID,
		Slots:     []helpers.BidSlotItem{{SlotID: slotLow, Count: 1, BidPrice: 10}},
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Slot editing rules over HTTP
func TestSlotEditing(t *testing.T) {
	router := SetupTestRouter()

	productID := createProduct(t, router, "Desk Lamp", 100)

	// partial coverage keeps the product in the slot phase
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/slots/"+productID, "", helpers.CreateSlotsRequest{
		Slots: []helpers.SlotItem{{BidPrice: 10, SlotCount: 5}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	slotID := DataArray(t, resp)[0].(map[string]any)["slot_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "READY_FOR_SLOT", DataObject(t, resp)["status"])

	// overshooting the amount is rejected
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/slots/"+productID, "", helpers.CreateSlotsRequest{
		Slots: []helpers.SlotItem{{BidPrice: 60, SlotCount: 1}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// growing the slot to exactly the amount flips the product to biddable
	count := 10
	_, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/slots/"+productID, "", helpers.UpdateSlotsRequest{
		Slots: []helpers.UpdateSlotItem{{SlotID: slotID, SlotCount: &count}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "READY_FOR_BID", DataObject(t, resp)["status"])

	// deleting the slot rolls the product back and clears the marker
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/slots/"+productID, "", helpers.DeleteSlotsRequest{
		IDs: []string{slotID},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := DataObject(t, resp)
	require.Equal(t, "READY_FOR_SLOT", data["status"])
	require.Equal(t, false, data["has_slots"])
}
