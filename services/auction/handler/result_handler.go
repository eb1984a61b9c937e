package handler

import (
	"fmt"
	"net/http"

	model "slot-auction/internal/models"
	"slot-auction/services/auction/helpers"
	"slot-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=result_handler.go -destination=mock_result_service.go -package=handler

type ResultServiceInterface interface {
	DeclareResult(productID string) (model.Result, error)
	GetResult(productID string) (model.Result, error)
}

type ResultHandler struct {
	service ResultServiceInterface
}

func NewResultHandler(service ResultServiceInterface) *ResultHandler {
	return &ResultHandler{service: service}
}

// DeclareResultHandler handles POST /results
func (h *ResultHandler) DeclareResultHandler(c *gin.Context) {
	var req helpers.DeclareResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeclareResultHandler", err)
		return
	}

	declared, err := h.service.DeclareResult(req.ProductID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeclareResultHandler: failed to declare result", map[string]any{
			"product_id": req.ProductID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, declared, "result declared successfully")
	helpers.LogSuccess("DeclareResultHandler", "result declared successfully", map[string]any{
		"product_id":    declared.ProductID,
		"winner_id":     declared.WinnerID,
		"total_tickets": declared.TotalTickets,
	})
}

// GetResultHandler handles GET /results/:product_id
func (h *ResultHandler) GetResultHandler(c *gin.Context) {
	productID := c.Param("product_id")
	found, err := h.service.GetResult(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetResultHandler: error retrieving result", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, found, "result retrieved successfully")
}
