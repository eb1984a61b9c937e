package handler

import (
	"fmt"
	"net/http"

	model "slot-auction/internal/models"
	product "slot-auction/internal/productService"
	"slot-auction/services/auction/helpers"
	"slot-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=product_handler.go -destination=mock_product_service.go -package=handler

type ProductServiceInterface interface {
	Create(req product.CreateRequest) (model.Product, error)
	List() ([]model.Product, error)
	Get(productID string) (model.Product, error)
	Update(productID string, req product.UpdateRequest) (model.Product, error)
	Delete(productID string) error
}

type ProductHandler struct {
	service ProductServiceInterface
}

func NewProductHandler(service ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// CreateProductHandler handles POST /products
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	created, err := h.service.Create(product.CreateRequest{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateProductHandler: failed to create product", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": created.ProductID,
		"amount":     created.Amount,
	})
}

// ListProductsHandler handles GET /products
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.service.List()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListProductsHandler: error retrieving products", map[string]any{"error": err.Error()})
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// GetProductHandler handles GET /products/:product_id
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	found, err := h.service.Get(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductHandler: error retrieving product", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, found, "product retrieved successfully")
}

// UpdateProductHandler handles PATCH /products/:product_id
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	updated, err := h.service.Update(productID, product.UpdateRequest{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateProductHandler: error updating product", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "product updated successfully")
	helpers.LogSuccess("UpdateProductHandler", "product updated successfully", map[string]any{
		"product_id": productID,
	})
}

// DeleteProductHandler handles DELETE /products/:product_id
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	if err := h.service.Delete(productID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteProductHandler: error deleting product", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "product deleted successfully")
	helpers.LogSuccess("DeleteProductHandler", "product deleted successfully", map[string]any{
		"product_id": productID,
	})
}
