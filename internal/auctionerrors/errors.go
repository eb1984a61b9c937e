package auctionerrors

import "errors"

// Not-found errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrResultNotFound  = errors.New("result not found")
)

// Business-rule errors
var (
	ErrInvalidInput      = errors.New("invalid request")
	ErrProductNotReady   = errors.New("product is not ready for bidding")
	ErrBidEnded          = errors.New("bidding has ended for this product")
	ErrNoSlotsConfigured = errors.New("product has no slots configured")
	ErrInsufficientSlots = errors.New("insufficient slots available")
	ErrInvalidBidPrice   = errors.New("bid price does not match slot price")
	ErrSlotsFull         = errors.New("cannot withdraw bid - all slots are full")
	ErrNotWithdrawable   = errors.New("bid is not withdrawable")
	ErrWithdrawalExpired = errors.New("withdrawal time limit exceeded")
	ErrAmountMismatch    = errors.New("total slot amount must not exceed product amount")
	ErrAmountLocked      = errors.New("cannot update amount once slots are created")
	ErrBidStarted        = errors.New("cannot perform this action as bidding has started")
	ErrAlreadySold       = errors.New("product has already been sold")
	ErrProductMismatch   = errors.New("slot does not belong to the specified product")
	ErrNoUpdateFields    = errors.New("at least one field must be provided for update")
)

// Lifecycle errors
var ErrInvalidTransition = errors.New("invalid status transition")

// Lottery errors
var (
	ErrAlreadyDeclared      = errors.New("result already declared for this product")
	ErrInvalidProductStatus = errors.New("cannot declare result - product has not finished bidding")
	ErrNoBids               = errors.New("no bids found for this product")
	ErrNoTickets            = errors.New("no lottery tickets available for draw")
)

// Persistence errors
var ErrDatabase = errors.New("database operation failed")
