package postgres

import (
	"database/sql"

	"rentalmanager-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.RentalRequestRepository
	repository.SettingsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		VehicleRepository:       NewVehicleRepository(db),
		CustomerRepository:      NewCustomerRepository(db),
		RentalRepository:        NewRentalRepository(db),
		RentalRequestRepository: NewRentalRequestRepository(db),
		SettingsRepository:      NewSettingsRepository(db),
	}
}
