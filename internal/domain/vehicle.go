package domain

import "time"

// RateCard holds the per-vehicle pricing configuration. PerHourCents is kept
// for future sub-day billing policies; the default billing is day-based.
type RateCard struct {
	PerDayCents  int32 `json:"per_day_cents"`
	PerHourCents int32 `json:"per_hour_cents,omitempty"`
}

type Vehicle struct {
	ID            int32     `json:"id"`
	Brand         string    `json:"brand"` // brand and model label, e.g. "Škoda Octavia III"
	LicensePlate  string    `json:"license_plate"`
	VIN           string    `json:"vin"`
	Year          int32     `json:"year"`
	STKDate       time.Time `json:"stk_date"` // technical inspection valid until
	InsuranceInfo string    `json:"insurance_info"`
	VignetteUntil time.Time `json:"vignette_until"` // highway toll sticker valid until
	Pricing       RateCard  `json:"pricing"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`

	// Populated when fetching vehicle details.
	ServiceHistory []ServiceRecord `json:"service_history,omitempty"`
}

// ServiceRecord is one entry in a vehicle's append-only maintenance history.
type ServiceRecord struct {
	ID          int32     `json:"id"`
	VehicleID   int32     `json:"vehicle_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CostCents   int32     `json:"cost_cents"`
}

// Validate checks the fields staff must provide when registering a vehicle.
func (v *Vehicle) Validate() error {
	if v.Brand == "" {
		return ErrValidation
	}
	if v.LicensePlate == "" {
		return ErrValidation
	}
	if v.Pricing.PerDayCents <= 0 {
		return ErrValidation
	}
	return nil
}

func (r *ServiceRecord) Validate() error {
	if r.Description == "" {
		return ErrValidation
	}
	if r.CostCents < 0 {
		return ErrValidation
	}
	return nil
}
