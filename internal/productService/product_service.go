package product

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

// Service defines the business logic for product management
type Service struct {
	repo repository.AuctionDB
	log  *logrus.Entry
}

// NewService creates a new product Service instance
func NewService(repo repository.AuctionDB, log *logrus.Entry) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateRequest carries the fields for a new product
type CreateRequest struct {
	Name        string
	Image       string
	Description string
	Amount      float64
}

// UpdateRequest carries optional field patches for an existing product
type UpdateRequest struct {
	Name        *string
	Image       *string
	Description *string
	Amount      *float64
}

// Create stores a new product in its initial lifecycle state
func (s *Service) Create(req CreateRequest) (models.Product, error) {
	if req.Name == "" || req.Amount <= 0 {
		return models.Product{}, fmt.Errorf("service: %w - missing name or non-positive amount", auctionerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	product := models.Product{
		ProductID:   utils.GenerateID(),
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      models.StatusReadyForSlot,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to create product: %w", err)
	}

	s.log.WithField("product_id", product.ProductID).Info("product created")
	return product, nil
}

// List returns all products
func (s *Service) List() ([]models.Product, error) {
	products, err := s.repo.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// Get returns a single product by id
func (s *Service) Get(productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// Update patches a product's editable fields. Editing is rejected once
// bidding has started or the product is sold, and the amount is locked once
// slots exist.
func (s *Service) Update(productID string, req UpdateRequest) (models.Product, error) {
	product, err := s.Get(productID)
	if err != nil {
		return models.Product{}, err
	}

	if product.Status == models.StatusBidStarted {
		return models.Product{}, fmt.Errorf("service: update product %s: %w", productID, auctionerrors.ErrBidStarted)
	}
	if product.Status == models.StatusSold {
		return models.Product{}, fmt.Errorf("service: update product %s: %w", productID, auctionerrors.ErrAlreadySold)
	}
	if req.Amount != nil && product.HasSlots {
		return models.Product{}, fmt.Errorf("service: update product %s: %w", productID, auctionerrors.ErrAmountLocked)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return models.Product{}, fmt.Errorf("service: %w - non-positive amount", auctionerrors.ErrInvalidInput)
		}
		product.Amount = *req.Amount
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to update product %s: %w", productID, err)
	}

	s.log.WithField("product_id", productID).Info("product updated")
	return product, nil
}

// Delete removes a product that has not yet entered bidding
func (s *Service) Delete(productID string) error {
	product, err := s.Get(productID)
	if err != nil {
		return err
	}

	if product.Status == models.StatusBidStarted {
		return fmt.Errorf("service: delete product %s: %w", productID, auctionerrors.ErrBidStarted)
	}
	if product.Status == models.StatusSold {
		return fmt.Errorf("service: delete product %s: %w", productID, auctionerrors.ErrAlreadySold)
	}

	if err := s.repo.DeleteProduct(productID); err != nil {
		return fmt.Errorf("service: failed to delete product %s: %w", productID, err)
	}

	s.log.WithField("product_id", productID).Info("product deleted")
	return nil
}

// UpdateStatus moves a product through the lifecycle after validating the
// transition. hasSlots, when non-nil, updates the slot marker in the same
// write.
func (s *Service) UpdateStatus(productID string, target models.ProductStatus, hasSlots *bool) (models.Product, error) {
	product, err := s.Get(productID)
	if err != nil {
		return models.Product{}, err
	}

	if err := lifecycle.Validate(product.Status, target); err != nil {
		return models.Product{}, fmt.Errorf("service: update status for product %s: %w", productID, err)
	}

	if hasSlots != nil {
		product.HasSlots = *hasSlots
	}
	product.Status = target
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to update status for product %s: %w", productID, err)
	}

	s.log.WithFields(logrus.Fields{"product_id": productID, "status": target}).Info("product status updated")
	return product, nil
}
