package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// CustomerDetails is the customer shape embedded in a rental request before a
// Customer record exists. Approval materializes it into a new Customer.
type CustomerDetails struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	IDCardNumber         string `json:"id_card_number"`
	DriversLicenseNumber string `json:"drivers_license_number"`
}

func (d *CustomerDetails) Validate() error {
	if d.FirstName == "" || d.LastName == "" {
		return ErrValidation
	}
	if d.Email == "" {
		return ErrValidation
	}
	if d.IDCardNumber == "" || d.DriversLicenseNumber == "" {
		return ErrValidation
	}
	return nil
}

// RentalRequest is a customer-submitted inquiry from the public form. The
// requested vehicle and window are advisory only: a request carries no
// interval commitment and never blocks availability. Once approved or
// rejected the status is terminal.
type RentalRequest struct {
	ID               int32           `json:"id"`
	CustomerDetails  CustomerDetails `json:"customer_details"`
	VehicleID        int32           `json:"vehicle_id"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	DigitalConsentAt time.Time       `json:"digital_consent_at"`
	LicenseImageKey  string          `json:"license_image_key,omitempty"`
	Status           RequestStatus   `json:"status"`
	CreatedOn        time.Time       `json:"created_on"`
	UpdatedOn        time.Time       `json:"updated_on"`
}

// Resolved reports whether the request has been approved or rejected.
func (r *RentalRequest) Resolved() bool {
	return r.Status != RequestStatusPending
}
