package repository

import (
	"fmt"
	"sort"
	"sync"

	"slot-auction/internal/auctionerrors"
	model "slot-auction/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the storage interface for the slot-auction system:
// point lookups, filtered scans by product/user/status, and whole-document
// saves. Callers get read-your-writes consistency per entity.
type AuctionDB interface {
	CreateProduct(p model.Product) error
	GetProduct(productID string) (model.Product, error)
	ListProducts() ([]model.Product, error)
	UpdateProduct(p model.Product) error
	DeleteProduct(productID string) error

	SaveSlot(s model.Slot) error
	GetSlot(slotID string) (model.Slot, error)
	GetSlotsByProduct(productID string) ([]model.Slot, error)
	DeleteSlots(slotIDs []string) error

	SaveBid(b model.Bid) error
	GetBid(bidID string) (model.Bid, error)
	GetBidsByProduct(productID string, status model.BidStatus) ([]model.Bid, error)
	GetActiveBidByUser(productID, userID string) (model.Bid, error)
	CountBidsByUser(userID string) (int, error)
	SetWithdrawableByProduct(productID string, withdrawable bool) error
	LockBidsByProduct(productID string) error

	SaveResult(r model.Result) error
	GetResultByProduct(productID string) (model.Result, error)
	CountWinsByUser(userID string) (int, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	products map[string]model.Product // key: productID
	slots    map[string]model.Slot    // key: slotID
	bids     map[string]model.Bid     // key: bidID
	results  map[string]model.Result  // key: productID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products: make(map[string]model.Product),
		slots:    make(map[string]model.Slot),
		bids:     make(map[string]model.Bid),
		results:  make(map[string]model.Result),
	}
}

// CreateProduct stores a new product
func (r *MemoryRepo) CreateProduct(p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[p.ProductID] = p
	return nil
}

// GetProduct returns the product with the given id
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return p, nil
}

// ListProducts returns all products ordered by creation time
func (r *MemoryRepo) ListProducts() ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		}
		return products[i].ProductID < products[j].ProductID
	})
	return products, nil
}

// UpdateProduct replaces an existing product document
func (r *MemoryRepo) UpdateProduct(p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ProductID]; !ok {
		return fmt.Errorf("update product %s: %w", p.ProductID, auctionerrors.ErrProductNotFound)
	}
	r.products[p.ProductID] = p
	return nil
}

// DeleteProduct removes a product and its slot definitions
func (r *MemoryRepo) DeleteProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	delete(r.products, productID)
	for id, s := range r.slots {
		if s.ProductID == productID {
			delete(r.slots, id)
		}
	}
	return nil
}

// SaveSlot inserts or replaces a slot definition
func (r *MemoryRepo) SaveSlot(s model.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[s.ProductID]; !ok {
		return fmt.Errorf("save slot for product %s: %w", s.ProductID, auctionerrors.ErrProductNotFound)
	}
	r.slots[s.SlotID] = s
	return nil
}

// GetSlot returns the slot with the given id
func (r *MemoryRepo) GetSlot(slotID string) (model.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[slotID]
	if !ok {
		return model.Slot{}, fmt.Errorf("get slot %s: %w", slotID, auctionerrors.ErrSlotNotFound)
	}
	return s, nil
}

// GetSlotsByProduct returns a product's slots ordered by bid price
func (r *MemoryRepo) GetSlotsByProduct(productID string) ([]model.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slots := make([]model.Slot, 0)
	for _, s := range r.slots {
		if s.ProductID == productID {
			slots = append(slots, s)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].BidPrice != slots[j].BidPrice {
			return slots[i].BidPrice < slots[j].BidPrice
		}
		return slots[i].SlotID < slots[j].SlotID
	})
	return slots, nil
}

// DeleteSlots removes the given slot definitions
func (r *MemoryRepo) DeleteSlots(slotIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range slotIDs {
		delete(r.slots, id)
	}
	return nil
}

// SaveBid inserts or replaces a bid document
func (r *MemoryRepo) SaveBid(b model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bids[b.BidID] = copyBid(b)
	return nil
}

// GetBid returns the bid with the given id
func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return copyBid(b), nil
}

// GetBidsByProduct returns a product's bids with the given status, ordered by
// creation time. An empty status returns bids in every status.
func (r *MemoryRepo) GetBidsByProduct(productID string, status model.BidStatus) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.ProductID != productID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		bids = append(bids, copyBid(b))
	}
	sort.Slice(bids, func(i, j int) bool {
		if !bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		}
		return bids[i].BidID < bids[j].BidID
	})
	return bids, nil
}

// GetActiveBidByUser returns the user's active bid on a product, if any
func (r *MemoryRepo) GetActiveBidByUser(productID, userID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bids {
		if b.ProductID == productID && b.UserID == userID && b.Status == model.BidActive {
			return copyBid(b), nil
		}
	}
	return model.Bid{}, fmt.Errorf("active bid for user %s on product %s: %w", userID, productID, auctionerrors.ErrBidNotFound)
}

// CountBidsByUser returns the user's all-time bid count across all products
func (r *MemoryRepo) CountBidsByUser(userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, b := range r.bids {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

// SetWithdrawableByProduct flips the withdrawable flag on all of a product's
// active bids
func (r *MemoryRepo) SetWithdrawableByProduct(productID string, withdrawable bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.bids {
		if b.ProductID == productID && b.Status == model.BidActive {
			b.IsWithdrawable = withdrawable
			r.bids[id] = b
		}
	}
	return nil
}

// LockBidsByProduct freezes all of a product's active bids
func (r *MemoryRepo) LockBidsByProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.bids {
		if b.ProductID == productID && b.Status == model.BidActive {
			b.Status = model.BidLocked
			r.bids[id] = b
		}
	}
	return nil
}

// SaveResult stores a product's lottery result. At most one result may exist
// per product; a second save fails.
func (r *MemoryRepo) SaveResult(res model.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.results[res.ProductID]; ok {
		return fmt.Errorf("save result for product %s: %w", res.ProductID, auctionerrors.ErrAlreadyDeclared)
	}
	r.results[res.ProductID] = res
	return nil
}

// GetResultByProduct returns the result declared for a product
func (r *MemoryRepo) GetResultByProduct(productID string) (model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.results[productID]
	if !ok {
		return model.Result{}, fmt.Errorf("get result for product %s: %w", productID, auctionerrors.ErrResultNotFound)
	}
	return res, nil
}

// CountWinsByUser returns how many results the user has won
func (r *MemoryRepo) CountWinsByUser(userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, res := range r.results {
		if res.WinnerID == userID {
			count++
		}
	}
	return count, nil
}

// copyBid clones a bid so callers never share the stored slot slice
func copyBid(b model.Bid) model.Bid {
	b.Slots = append([]model.BidSlot(nil), b.Slots...)
	return b
}
