package models

import "time"

// ProductStatus is the lifecycle state of a product.
type ProductStatus string

const (
	StatusReadyForSlot ProductStatus = "READY_FOR_SLOT"
	StatusReadyForBid  ProductStatus = "READY_FOR_BID"
	StatusBidStarted   ProductStatus = "BID_STARTED"
	StatusBidEnded     ProductStatus = "BID_ENDED"
	StatusSold         ProductStatus = "SOLD"
)

// BidStatus is the state of a bid.
type BidStatus string

const (
	BidActive    BidStatus = "active"
	BidWithdrawn BidStatus = "withdrawn"
	BidLocked    BidStatus = "locked"
)

// Product is an auction item split into fixed-price slots.
type Product struct {
	ProductID   string        `json:"product_id"`
	Name        string        `json:"name"`
	Image       string        `json:"image"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Status      ProductStatus `json:"status"`
	HasSlots    bool          `json:"has_slots"`
	HasBids     bool          `json:"has_bids"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Slot is a priced, finite-capacity unit of a product.
type Slot struct {
	SlotID    string    `json:"slot_id"`
	ProductID string    `json:"product_id"`
	BidPrice  float64   `json:"bid_price"`
	SlotCount int       `json:"slot_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BidSlot is a single slot reservation inside a bid.
type BidSlot struct {
	SlotID   string  `json:"slot_id"`
	Count    int     `json:"count"`
	BidPrice float64 `json:"bid_price"`
}

// Bid is a user's reservation of slot units on a product. A user holds at
// most one active bid per product; repeat placements merge into it.
type Bid struct {
	BidID            string     `json:"bid_id"`
	ProductID        string     `json:"product_id"`
	UserID           string     `json:"user_id"`
	Slots            []BidSlot  `json:"slots"`
	TotalAmount      float64    `json:"total_amount"`
	Status           BidStatus  `json:"status"`
	IsWithdrawable   bool       `json:"is_withdrawable"`
	WithdrawalTime   *time.Time `json:"withdrawal_time,omitempty"`
	WithdrawalReason string     `json:"withdrawal_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// WeightBreakdown records how a user's lottery weight was computed.
type WeightBreakdown struct {
	BaseTickets      int `json:"base_tickets"`
	NewbieBoost      int `json:"newbie_boost"`
	PerformanceBonus int `json:"performance_bonus"`
	DecayPenalty     int `json:"decay_penalty"`
	FinalWeight      int `json:"final_weight"`
}

// Result is the outcome of a product's lottery draw, created at most once.
type Result struct {
	ResultID          string                     `json:"result_id"`
	ProductID         string                     `json:"product_id"`
	WinnerID          string                     `json:"winner_id"`
	WinningBidID      string                     `json:"winning_bid_id"`
	WeightCalculation map[string]WeightBreakdown `json:"weight_calculation"`
	TotalTickets      int                        `json:"total_tickets"`
	DeclaredAt        time.Time                  `json:"declared_at"`
}
