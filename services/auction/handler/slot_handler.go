package handler

import (
	"fmt"
	"net/http"

	model "slot-auction/internal/models"
	slot "slot-auction/internal/slotService"
	"slot-auction/services/auction/helpers"
	"slot-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=slot_handler.go -destination=mock_slot_service.go -package=handler

type SlotServiceInterface interface {
	CreateSlots(productID string, reqs []slot.SlotRequest) ([]model.Slot, bool, error)
	GetProductSlots(productID string) ([]model.Slot, error)
	UpdateSlots(productID string, reqs []slot.UpdateSlotRequest) ([]model.Slot, error)
	DeleteSlots(productID string, slotIDs []string) error
}

type SlotHandler struct {
	service SlotServiceInterface
}

func NewSlotHandler(service SlotServiceInterface) *SlotHandler {
	return &SlotHandler{service: service}
}

// CreateSlotsHandler handles POST /slots/:product_id
func (h *SlotHandler) CreateSlotsHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.CreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSlotsHandler", err)
		return
	}

	reqs := make([]slot.SlotRequest, 0, len(req.Slots))
	for _, item := range req.Slots {
		reqs = append(reqs, slot.SlotRequest{BidPrice: item.BidPrice, SlotCount: item.SlotCount})
	}

	created, ready, err := h.service.CreateSlots(productID, reqs)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateSlotsHandler: failed to create slots", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
		return
	}

	message := "slots created successfully"
	if ready {
		message = "all slots created - product is ready for bidding"
	}

	utils.JSONResponse(c, http.StatusCreated, created, message)
	helpers.LogSuccess("CreateSlotsHandler", message, map[string]any{
		"product_id": productID,
		"count":      len(created),
	})
}

// GetProductSlotsHandler handles GET /slots/:product_id
func (h *SlotHandler) GetProductSlotsHandler(c *gin.Context) {
	productID := c.Param("product_id")
	slots, err := h.service.GetProductSlots(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductSlotsHandler: error retrieving slots", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if slots == nil {
		slots = []model.Slot{}
	}

	utils.JSONResponse(c, http.StatusOK, slots, "slots retrieved successfully")
}

// UpdateSlotsHandler handles PUT /slots/:product_id
func (h *SlotHandler) UpdateSlotsHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.UpdateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateSlotsHandler", err)
		return
	}

	reqs := make([]slot.UpdateSlotRequest, 0, len(req.Slots))
	for _, item := range req.Slots {
		reqs = append(reqs, slot.UpdateSlotRequest{
			SlotID:    item.SlotID,
			BidPrice:  item.BidPrice,
			SlotCount: item.SlotCount,
		})
	}

	updated, err := h.service.UpdateSlots(productID, reqs)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateSlotsHandler: error updating slots", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "slots updated successfully")
	helpers.LogSuccess("UpdateSlotsHandler", "slots updated successfully", map[string]any{
		"product_id": productID,
		"count":      len(updated),
	})
}

// DeleteSlotsHandler handles DELETE /slots/:product_id
func (h *SlotHandler) DeleteSlotsHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.DeleteSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeleteSlotsHandler", err)
		return
	}

	if err := h.service.DeleteSlots(productID, req.IDs); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteSlotsHandler: error deleting slots", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "slots deleted successfully")
	helpers.LogSuccess("DeleteSlotsHandler", "slots deleted successfully", map[string]any{
		"product_id": productID,
		"count":      len(req.IDs),
	})
}
