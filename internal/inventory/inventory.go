// Package inventory derives per-slot availability from slot definitions and
// the currently active bids. It owns no state; every admission decision
// recomputes availability from the two collections.
package inventory

import "slot-auction/internal/models"

// SlotAvailability is the computed capacity view of a single slot.
type SlotAvailability struct {
	SlotID         string  `json:"slot_id"`
	BidPrice       float64 `json:"bid_price"`
	TotalSlots     int     `json:"total_slots"`
	BookedSlots    int     `json:"booked_slots"`
	AvailableSlots int     `json:"available_slots"`
}

// Compute returns availability for each slot, in the order slots are given.
// Only active bids count against capacity; available never goes negative.
func Compute(slots []models.Slot, bids []models.Bid) []SlotAvailability {
	booked := make(map[string]int)
	for _, bid := range bids {
		if bid.Status != models.BidActive {
			continue
		}
		for _, entry := range bid.Slots {
			booked[entry.SlotID] += entry.Count
		}
	}

	availability := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		b := booked[slot.SlotID]
		avail := slot.SlotCount - b
		if avail < 0 {
			avail = 0
		}
		availability = append(availability, SlotAvailability{
			SlotID:         slot.SlotID,
			BidPrice:       slot.BidPrice,
			TotalSlots:     slot.SlotCount,
			BookedSlots:    b,
			AvailableSlots: avail,
		})
	}
	return availability
}

// ComputeMap returns the same availability keyed by slot id.
func ComputeMap(slots []models.Slot, bids []models.Bid) map[string]SlotAvailability {
	availability := Compute(slots, bids)
	m := make(map[string]SlotAvailability, len(availability))
	for _, a := range availability {
		m[a.SlotID] = a
	}
	return m
}

// AllFull reports whether every slot has zero remaining capacity. A product
// with no slots is never considered full.
func AllFull(availability []SlotAvailability) bool {
	if len(availability) == 0 {
		return false
	}
	for _, a := range availability {
		if a.AvailableSlots > 0 {
			return false
		}
	}
	return true
}

// HasCapacity reports whether at least one slot has remaining capacity.
func HasCapacity(availability []SlotAvailability) bool {
	for _, a := range availability {
		if a.AvailableSlots > 0 {
			return true
		}
	}
	return false
}
