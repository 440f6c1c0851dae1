package service

import (
	"context"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	booking     BookingService
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, booking BookingService) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, booking: booking}
}

func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.vehicleRepo.ListServiceRecords(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle.ServiceHistory = history
	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, vehicle)
}

// DeleteVehicle removes a vehicle only when no pending or active rental
// references it. History stays intact: completed and cancelled rentals keep
// their vehicle_id. The booking service owns the per-vehicle lock, so the
// reference scan and delete go through it.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	return s.booking.DeleteVehicle(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) AddServiceRecord(ctx context.Context, record *domain.ServiceRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if _, err := s.vehicleRepo.GetByID(ctx, record.VehicleID); err != nil {
		return err
	}
	return s.vehicleRepo.AddServiceRecord(ctx, record)
}

func (s *vehicleService) DeleteServiceRecord(ctx context.Context, vehicleID, recordID int32) error {
	return s.vehicleRepo.DeleteServiceRecord(ctx, vehicleID, recordID)
}
