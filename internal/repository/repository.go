package repository

import (
	"context"
	"time"

	"rentalmanager-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Vehicle, error)

	// Service history (append-only per vehicle)
	AddServiceRecord(ctx context.Context, record *domain.ServiceRecord) error
	ListServiceRecords(ctx context.Context, vehicleID int32) ([]domain.ServiceRecord, error)
	DeleteServiceRecord(ctx context.Context, vehicleID, recordID int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error)
	// ListByVehicle returns every rental referencing the vehicle, regardless
	// of status. The availability index filters occupying statuses itself.
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Rental, error)
	// ListOverlapping returns rentals intersecting [from, to) for calendar
	// and sweep queries.
	ListOverlapping(ctx context.Context, from, to time.Time) ([]domain.Rental, error)
	// ListElapsedActive returns active rentals whose end date is not after
	// the given time.
	ListElapsedActive(ctx context.Context, now time.Time) ([]domain.Rental, error)
	CountByStatus(ctx context.Context, status domain.RentalStatus) (int32, error)
	Count(ctx context.Context) (int32, error)
}

type RentalRequestRepository interface {
	Create(ctx context.Context, request *domain.RentalRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error)
	Update(ctx context.Context, request *domain.RentalRequest) error
	// MarkApproved flips a pending request to approved as a single
	// compare-and-set write. A request that is missing or no longer
	// pending yields ErrRequestResolved, so concurrent approvals of the
	// same request resolve to exactly one winner.
	MarkApproved(ctx context.Context, id int32) error
	List(ctx context.Context, status domain.RequestStatus) ([]domain.RentalRequest, error)
	// ListResolvedBefore returns approved/rejected requests last updated
	// before the cutoff that still hold a license image key.
	ListResolvedBefore(ctx context.Context, cutoff time.Time) ([]domain.RentalRequest, error)
	CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}
