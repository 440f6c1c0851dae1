package service

import (
	"context"
	"fmt"
	"time"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/logger"
	"rentalmanager-backend/internal/repository"
	"rentalmanager-backend/internal/utils"
)

type bookingService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
	requestRepo  repository.RentalRequestRepository
	locks        *vehicleLocks
	now          func() time.Time
}

func NewBookingService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	requestRepo repository.RentalRequestRepository,
) BookingService {
	return &bookingService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		requestRepo:  requestRepo,
		locks:        newVehicleLocks(),
		now:          time.Now,
	}
}

func (s *bookingService) IsAvailable(ctx context.Context, vehicleID int32, start, end time.Time, excludeRentalID int32) (bool, error) {
	if !start.Before(end) {
		return false, domain.ErrInvalidInterval
	}
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return false, err
	}
	rentals, err := s.rentalRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	return firstConflict(rentals, start, end, excludeRentalID) == nil, nil
}

func (s *bookingService) QuotePrice(ctx context.Context, vehicleID int32, start, end time.Time) (*domain.PriceQuote, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	cost, err := utils.ComputeRentalCost(vehicle.Pricing, start, end)
	if err != nil {
		return nil, err
	}
	return &domain.PriceQuote{
		VehicleID:    vehicleID,
		StartDate:    start,
		EndDate:      end,
		BillableDays: cost.BillableDays,
		PerDayCents:  cost.PerDayCents,
		TotalCents:   cost.TotalCents,
	}, nil
}

func (s *bookingService) CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	if !rental.StartDate.Before(rental.EndDate) {
		return nil, domain.ErrInvalidInterval
	}
	if rental.Status == "" {
		rental.Status = domain.RentalStatusPending
	}
	if rental.Status != domain.RentalStatusPending && rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrInvalidInitialStatus
	}
	if rental.TotalPriceCents < 0 {
		return nil, fmt.Errorf("%w: price override must be positive", domain.ErrValidation)
	}

	// Everything from the vehicle lookup to the insert runs under the
	// vehicle lock: two concurrent bookings cannot both pass the
	// availability check, and a concurrent vehicle deletion cannot slip
	// between the existence check and the insert.
	lock := s.locks.get(rental.VehicleID)
	lock.Lock()
	defer lock.Unlock()

	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.GetByID(ctx, rental.CustomerID); err != nil {
		return nil, err
	}

	// A preset positive price is a staff override; otherwise price from the
	// vehicle's rate card.
	cost, err := utils.ComputeRentalCost(vehicle.Pricing, rental.StartDate, rental.EndDate)
	if err != nil {
		return nil, err
	}
	if rental.TotalPriceCents == 0 {
		rental.TotalPriceCents = cost.TotalCents
	}

	existing, err := s.rentalRepo.ListByVehicle(ctx, rental.VehicleID)
	if err != nil {
		return nil, err
	}
	if conflict := firstConflict(existing, rental.StartDate, rental.EndDate, 0); conflict != nil {
		return nil, domain.ErrVehicleUnavailable
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	logger.WithComponent("booking").Info("rental created",
		"rental_id", rental.ID, "vehicle_id", rental.VehicleID,
		"start", rental.StartDate, "end", rental.EndDate)
	return rental, nil
}

func (s *bookingService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// UpdateRental reschedules a pending rental to a new interval. Active and
// terminal rentals keep their contracted dates.
func (s *bookingService) UpdateRental(ctx context.Context, id, vehicleID int32, start, end time.Time) (*domain.Rental, error) {
	if !start.Before(end) {
		return nil, domain.ErrInvalidInterval
	}

	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	target := vehicleID
	if target == 0 {
		target = rt.VehicleID
	}

	// Availability is checked on the target vehicle, so its lock is the
	// one that must be held.
	lock := s.locks.get(target)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; the status may have moved.
	rt, err = s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt.Status != domain.RentalStatusPending {
		return nil, domain.ErrRentalNotUpdatable
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, target)
	if err != nil {
		return nil, err
	}
	cost, err := utils.ComputeRentalCost(vehicle.Pricing, start, end)
	if err != nil {
		return nil, err
	}

	existing, err := s.rentalRepo.ListByVehicle(ctx, target)
	if err != nil {
		return nil, err
	}
	// The rental's own interval must not block a reschedule on the same
	// vehicle; on a move it holds no slot on the target.
	exclude := int32(0)
	if target == rt.VehicleID {
		exclude = rt.ID
	}
	if conflict := firstConflict(existing, start, end, exclude); conflict != nil {
		return nil, domain.ErrVehicleUnavailable
	}

	rt.VehicleID = target
	rt.StartDate = start
	rt.EndDate = end
	rt.TotalPriceCents = cost.TotalCents
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *bookingService) UpdateRentalStatus(ctx context.Context, id int32, status domain.RentalStatus) (*domain.Rental, error) {
	if !domain.ValidRentalStatus(status) {
		return nil, domain.ErrValidation
	}

	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lock := s.locks.get(rt.VehicleID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; the status may have moved.
	rt, err = s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt.Status == status {
		return rt, nil
	}
	if rt.IsTerminal() {
		return nil, domain.ErrRentalAlreadyClosed
	}
	if !domain.CanTransition(rt.Status, status) {
		return nil, domain.ErrIllegalTransition
	}

	from := rt.Status
	rt.Status = status
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.WithComponent("booking").Info("rental status changed",
		"rental_id", rt.ID, "from", from, "to", status)
	return rt, nil
}

func (s *bookingService) CancelRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.UpdateRentalStatus(ctx, id, domain.RentalStatusCancelled)
}

func (s *bookingService) CompleteRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.UpdateRentalStatus(ctx, id, domain.RentalStatusCompleted)
}

func (s *bookingService) DeleteVehicle(ctx context.Context, id int32) error {
	// Holding the vehicle lock keeps the occupying-rental scan and the
	// delete atomic against a concurrent CreateRental on this vehicle.
	lock := s.locks.get(id)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	rentals, err := s.rentalRepo.ListByVehicle(ctx, id)
	if err != nil {
		return err
	}
	for i := range rentals {
		if rentals[i].Occupies() {
			return domain.ErrVehicleHasRentals
		}
	}
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.WithComponent("booking").Info("vehicle deleted", "vehicle_id", id)
	return nil
}

func (s *bookingService) ListRentals(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	if status != "" && !domain.ValidRentalStatus(status) {
		return nil, 0, domain.ErrValidation
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.rentalRepo.List(ctx, status, page, pageSize)
}

func (s *bookingService) Dashboard(ctx context.Context) (*domain.DashboardCounts, error) {
	pendingRequests, err := s.requestRepo.CountByStatus(ctx, domain.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	pendingRentals, err := s.rentalRepo.CountByStatus(ctx, domain.RentalStatusPending)
	if err != nil {
		return nil, err
	}
	activeRentals, err := s.rentalRepo.CountByStatus(ctx, domain.RentalStatusActive)
	if err != nil {
		return nil, err
	}
	totalRentals, err := s.rentalRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.DashboardCounts{
		PendingRequests: pendingRequests,
		PendingRentals:  pendingRentals,
		ActiveRentals:   activeRentals,
		TotalRentals:    totalRentals,
		Vehicles:        int32(len(vehicles)),
	}, nil
}

func (s *bookingService) Calendar(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	if !from.Before(to) {
		return nil, domain.ErrInvalidInterval
	}
	rentals, err := s.rentalRepo.ListOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vehicleByID := make(map[int32]*domain.Vehicle, len(vehicles))
	for i := range vehicles {
		vehicleByID[vehicles[i].ID] = &vehicles[i]
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customerByID := make(map[int32]*domain.Customer, len(customers))
	for i := range customers {
		customerByID[customers[i].ID] = &customers[i]
	}

	events := make([]domain.CalendarEvent, 0, len(rentals))
	for i := range rentals {
		rt := &rentals[i]
		ev := domain.CalendarEvent{
			RentalID:   rt.ID,
			VehicleID:  rt.VehicleID,
			CustomerID: rt.CustomerID,
			StartDate:  rt.StartDate,
			EndDate:    rt.EndDate,
			Status:     rt.Status,
		}
		if v, ok := vehicleByID[rt.VehicleID]; ok {
			ev.VehicleBrand = v.Brand
			ev.LicensePlate = v.LicensePlate
		}
		if c, ok := customerByID[rt.CustomerID]; ok {
			ev.CustomerName = c.FullName()
		}
		events = append(events, ev)
	}
	return events, nil
}
