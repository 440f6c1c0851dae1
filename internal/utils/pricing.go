package utils

import (
	"time"

	"rentalmanager-backend/internal/domain"
)

// RentalCostBreakdown provides the detail behind a computed price.
type RentalCostBreakdown struct {
	Duration     time.Duration
	BillableDays int32
	PerDayCents  int32
	TotalCents   int32
}

// BillableDays converts a rental interval into whole billed days. Duration is
// rounded up to the next full 24h block: a rental spanning any part of a day
// beyond a whole multiple of 24h is billed for an additional day.
func BillableDays(start, end time.Time) (int32, error) {
	if !start.Before(end) {
		return 0, domain.ErrInvalidInterval
	}
	d := end.Sub(start)
	days := int32(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days, nil
}

// ComputeRentalCost prices an interval against a vehicle's rate card using
// day-based ceiling billing. The result is always positive for a valid
// interval.
func ComputeRentalCost(pricing domain.RateCard, start, end time.Time) (RentalCostBreakdown, error) {
	days, err := BillableDays(start, end)
	if err != nil {
		return RentalCostBreakdown{}, err
	}
	if pricing.PerDayCents <= 0 {
		return RentalCostBreakdown{}, domain.ErrValidation
	}
	return RentalCostBreakdown{
		Duration:     end.Sub(start),
		BillableDays: days,
		PerDayCents:  pricing.PerDayCents,
		TotalCents:   days * pricing.PerDayCents,
	}, nil
}
