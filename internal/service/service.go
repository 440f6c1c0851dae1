package service

import (
	"context"
	"time"

	"rentalmanager-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, password string) (string, time.Time, error) // token, expiresAt
	ValidateToken(tokenString string) error
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int32) error
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	AddServiceRecord(ctx context.Context, record *domain.ServiceRecord) error
	DeleteServiceRecord(ctx context.Context, vehicleID, recordID int32) error
}

type CustomerService interface {
	AddCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// BookingService owns every operation that reads or writes a vehicle's
// booked intervals. Writes for the same vehicle are serialized so that an
// availability check and the booking it guards cannot interleave.
type BookingService interface {
	IsAvailable(ctx context.Context, vehicleID int32, start, end time.Time, excludeRentalID int32) (bool, error)
	QuotePrice(ctx context.Context, vehicleID int32, start, end time.Time) (*domain.PriceQuote, error)

	CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	// UpdateRental reschedules a pending rental; vehicleID 0 keeps the
	// current vehicle, any other value moves the rental there.
	UpdateRental(ctx context.Context, id, vehicleID int32, start, end time.Time) (*domain.Rental, error)
	UpdateRentalStatus(ctx context.Context, id int32, status domain.RentalStatus) (*domain.Rental, error)
	CancelRental(ctx context.Context, id int32) (*domain.Rental, error)
	CompleteRental(ctx context.Context, id int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error)

	// DeleteVehicle removes a vehicle under its booking lock so a
	// concurrent booking cannot slip in a rental while the reference
	// check runs.
	DeleteVehicle(ctx context.Context, id int32) error

	Dashboard(ctx context.Context) (*domain.DashboardCounts, error)
	Calendar(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error)
}

type RequestService interface {
	SubmitRequest(ctx context.Context, request *domain.RentalRequest) (*domain.RentalRequest, error)
	GetRequest(ctx context.Context, id int32) (*domain.RentalRequest, error)
	ListRequests(ctx context.Context, status domain.RequestStatus) ([]domain.RentalRequest, error)
	// ApproveRequest materializes a customer and an active rental from a
	// pending request. Staff may adjust the vehicle and window before
	// approving; priceOverrideCents > 0 replaces the computed price.
	ApproveRequest(ctx context.Context, id, vehicleID int32, start, end time.Time, priceOverrideCents int32) (*domain.Rental, error)
	RejectRequest(ctx context.Context, id int32) (*domain.RentalRequest, error)
	AttachLicenseImage(ctx context.Context, id int32, imageKey string) (*domain.RentalRequest, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings *domain.Settings) error
}

// EmailService delivers staff and customer notifications. Implementations
// must be safe to call with delivery disabled.
type EmailService interface {
	SendRequestReceivedNotification(ctx context.Context, staffEmail string, request *domain.RentalRequest) error
	SendApprovalNotification(ctx context.Context, customerEmail, customerName string, rental *domain.Rental, bankAccount string) error
	SendRejectionNotification(ctx context.Context, customerEmail, customerName string) error
}
