package service

import (
	"time"

	"rentalmanager-backend/internal/domain"
)

// IntervalsOverlap reports whether the half-open intervals [s1, e1) and
// [s2, e2) intersect. Back-to-back intervals sharing an endpoint do not
// overlap, so a rental ending at 10:00 and one starting at 10:00 can both
// be booked on the same vehicle.
func IntervalsOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// firstConflict scans a vehicle's rentals for one that blocks the interval
// [start, end). Completed and cancelled rentals never block; a rental with
// the excluded ID is skipped so a rental can be rescheduled over its own
// current interval.
func firstConflict(rentals []domain.Rental, start, end time.Time, excludeRentalID int32) *domain.Rental {
	for i := range rentals {
		rt := &rentals[i]
		if rt.ID == excludeRentalID {
			continue
		}
		if !rt.Occupies() {
			continue
		}
		if IntervalsOverlap(start, end, rt.StartDate, rt.EndDate) {
			return rt
		}
	}
	return nil
}
