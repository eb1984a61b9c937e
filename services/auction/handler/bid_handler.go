package handler

import (
	"fmt"
	"net/http"

	bid "slot-auction/internal/bidService"
	"slot-auction/internal/inventory"
	model "slot-auction/internal/models"
	"slot-auction/services/auction/helpers"
	"slot-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bid_handler.go -destination=mock_bid_service.go -package=handler

type BidServiceInterface interface {
	PlaceBid(productID, userID string, requested []model.BidSlot) (model.Bid, error)
	WithdrawBid(bidID, reason string) (model.Bid, error)
	GetLeaderboard(productID string) ([]bid.LeaderboardEntry, error)
	GetSlotStatus(productID string) ([]inventory.SlotAvailability, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// userID extracts the caller identity from the X-User-ID header
func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing X-User-ID header"), "missing user identity")
		return "", false
	}
	return id, true
}

// PlaceBidHandler handles POST /bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	user, ok := userID(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	requested := make([]model.BidSlot, 0, len(req.Slots))
	for _, item := range req.Slots {
		requested = append(requested, model.BidSlot{
			SlotID:   item.SlotID,
			Count:    item.Count,
			BidPrice: item.BidPrice,
		})
	}

	placed, err := h.service.PlaceBid(req.ProductID, user, requested)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"product_id": req.ProductID,
			"user_id":    user,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, placed, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":       placed.BidID,
		"product_id":   placed.ProductID,
		"user_id":      user,
		"total_amount": placed.TotalAmount,
	})
}

// WithdrawBidHandler handles POST /bids/withdraw
func (h *BidHandler) WithdrawBidHandler(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}

	var req helpers.WithdrawBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawBidHandler", err)
		return
	}

	withdrawn, err := h.service.WithdrawBid(req.BidID, req.Reason)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WithdrawBidHandler: failed to withdraw bid", map[string]any{
			"bid_id": req.BidID,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, withdrawn, "bid withdrawn successfully")
	helpers.LogSuccess("WithdrawBidHandler", "bid withdrawn successfully", map[string]any{
		"bid_id":     withdrawn.BidID,
		"product_id": withdrawn.ProductID,
	})
}

// GetLeaderboardHandler handles GET /bids/leaderboard/:product_id
func (h *BidHandler) GetLeaderboardHandler(c *gin.Context) {
	productID := c.Param("product_id")
	entries, err := h.service.GetLeaderboard(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLeaderboardHandler: error retrieving leaderboard", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if entries == nil {
		entries = []bid.LeaderboardEntry{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "leaderboard retrieved successfully")
}

// GetSlotStatusHandler handles GET /bids/slots/:product_id
func (h *BidHandler) GetSlotStatusHandler(c *gin.Context) {
	productID := c.Param("product_id")
	availability, err := h.service.GetSlotStatus(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetSlotStatusHandler: error retrieving slot status", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if availability == nil {
		availability = []inventory.SlotAvailability{}
	}

	utils.JSONResponse(c, http.StatusOK, availability, "slot status retrieved successfully")
}
