package domain

import "time"

// PriceQuote is the priced breakdown returned to the public booking form
// before any rental exists.
type PriceQuote struct {
	VehicleID    int32     `json:"vehicle_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	BillableDays int32     `json:"billable_days"`
	PerDayCents  int32     `json:"per_day_cents"`
	TotalCents   int32     `json:"total_cents"`
}

// DashboardCounts backs the staff landing page.
type DashboardCounts struct {
	PendingRequests int32 `json:"pending_requests"`
	PendingRentals  int32 `json:"pending_rentals"`
	ActiveRentals   int32 `json:"active_rentals"`
	TotalRentals    int32 `json:"total_rentals"`
	Vehicles        int32 `json:"vehicles"`
}

// CalendarEvent is one rental rendered on the staff calendar.
type CalendarEvent struct {
	RentalID     int32        `json:"rental_id"`
	VehicleID    int32        `json:"vehicle_id"`
	VehicleBrand string       `json:"vehicle_brand"`
	LicensePlate string       `json:"license_plate"`
	CustomerID   int32        `json:"customer_id"`
	CustomerName string       `json:"customer_name"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	Status       RentalStatus `json:"status"`
}
