package helpers

// Request/Response DTOs

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
}

type SlotItem struct {
	BidPrice  float64 `json:"bid_price" binding:"required,gt=0"`
	SlotCount int     `json:"slot_count" binding:"required,gt=0"`
}

type CreateSlotsRequest struct {
	Slots []SlotItem `json:"slots" binding:"required,min=1,dive"`
}

type UpdateSlotItem struct {
	SlotID    string   `json:"slot_id" binding:"required"`
	BidPrice  *float64 `json:"bid_price"`
	SlotCount *int     `json:"slot_count"`
}

type UpdateSlotsRequest struct {
	Slots []UpdateSlotItem `json:"slots" binding:"required,min=1,dive"`
}

type DeleteSlotsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type BidSlotItem struct {
	SlotID   string  `json:"slot_id" binding:"required"`
	Count    int     `json:"count" binding:"required,gt=0"`
	BidPrice float64 `json:"bid_price" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	ProductID string        `json:"product_id" binding:"required"`
	Slots     []BidSlotItem `json:"slots" binding:"required,min=1,dive"`
}

type WithdrawBidRequest struct {
	BidID  string `json:"bid_id" binding:"required"`
	Reason string `json:"reason"`
}

type DeclareResultRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type BidResponse struct {
	BidID          string  `json:"bid_id"`
	ProductID      string  `json:"product_id"`
	UserID         string  `json:"user_id"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
	IsWithdrawable bool    `json:"is_withdrawable"`
	CreatedAt      string  `json:"created_at"`
}
