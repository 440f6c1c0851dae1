package domain

import "time"

type Customer struct {
	ID                   int32     `json:"id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	IDCardNumber         string    `json:"id_card_number"`
	DriversLicenseNumber string    `json:"drivers_license_number"`
	LicenseImageKey      string    `json:"license_image_key,omitempty"` // storage key, not a URL
	CreatedOn            time.Time `json:"created_on"`
	UpdatedOn            time.Time `json:"updated_on"`
}

func (c *Customer) Validate() error {
	if c.FirstName == "" || c.LastName == "" {
		return ErrValidation
	}
	if c.Email == "" {
		return ErrValidation
	}
	if c.IDCardNumber == "" || c.DriversLicenseNumber == "" {
		return ErrValidation
	}
	return nil
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
