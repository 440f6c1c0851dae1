package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// rentalTransitions lists the legal status moves. Completed and cancelled are
// terminal: they have no outgoing edges.
var rentalTransitions = map[RentalStatus]map[RentalStatus]struct{}{
	RentalStatusPending: {
		RentalStatusActive:    {},
		RentalStatusCancelled: {},
	},
	RentalStatusActive: {
		RentalStatusCompleted: {},
		RentalStatusCancelled: {},
	},
}

// CanTransition reports whether a rental may move from one status to another.
func CanTransition(from, to RentalStatus) bool {
	next, ok := rentalTransitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// ValidRentalStatus reports whether s is one of the recognized statuses.
func ValidRentalStatus(s RentalStatus) bool {
	switch s {
	case RentalStatusPending, RentalStatusActive, RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

// Rental is a rental contract binding one vehicle to one customer over a
// half-open interval [StartDate, EndDate).
type Rental struct {
	ID              int32        `json:"id"`
	VehicleID       int32        `json:"vehicle_id"`
	CustomerID      int32        `json:"customer_id"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	TotalPriceCents int32        `json:"total_price_cents"`
	Status          RentalStatus `json:"status"`
	CreatedOn       time.Time    `json:"created_on"`
	UpdatedOn       time.Time    `json:"updated_on"`
}

// Occupies reports whether the rental counts against vehicle availability.
// Completed and cancelled rentals never block an interval.
func (r *Rental) Occupies() bool {
	return r.Status == RentalStatusPending || r.Status == RentalStatusActive
}

// IsTerminal reports whether the rental has reached a final status.
func (r *Rental) IsTerminal() bool {
	return r.Status == RentalStatusCompleted || r.Status == RentalStatusCancelled
}

// Elapsed reports whether the contract period has passed at the given time.
// This is a derived view for display and sweep jobs; the stored status stays
// the source of truth for availability.
func (r *Rental) Elapsed(now time.Time) bool {
	return !r.EndDate.After(now)
}
