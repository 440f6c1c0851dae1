package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (brand, license_plate, vin, year, stk_date, insurance_info, vignette_until, per_day_cents, per_hour_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		v.Brand, v.LicensePlate, v.VIN, v.Year, v.STKDate, v.InsuranceInfo, v.VignetteUntil,
		v.Pricing.PerDayCents, v.Pricing.PerHourCents, now, now).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, brand, license_plate, vin, year, stk_date, insurance_info, vignette_until, per_day_cents, per_hour_cents, created_on, updated_on
	          FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Brand, &v.LicensePlate, &v.VIN, &v.Year, &v.STKDate, &v.InsuranceInfo, &v.VignetteUntil,
		&v.Pricing.PerDayCents, &v.Pricing.PerHourCents, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET brand=$1, license_plate=$2, vin=$3, year=$4, stk_date=$5, insurance_info=$6, vignette_until=$7, per_day_cents=$8, per_hour_cents=$9, updated_on=$10 WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query,
		v.Brand, v.LicensePlate, v.VIN, v.Year, v.STKDate, v.InsuranceInfo, v.VignetteUntil,
		v.Pricing.PerDayCents, v.Pricing.PerHourCents, time.Now(), v.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrVehicleNotFound)
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrVehicleNotFound)
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, brand, license_plate, vin, year, stk_date, insurance_info, vignette_until, per_day_cents, per_hour_cents, created_on, updated_on
	          FROM vehicles ORDER BY brand, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.LicensePlate, &v.VIN, &v.Year, &v.STKDate, &v.InsuranceInfo, &v.VignetteUntil,
			&v.Pricing.PerDayCents, &v.Pricing.PerHourCents, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) AddServiceRecord(ctx context.Context, rec *domain.ServiceRecord) error {
	query := `INSERT INTO service_records (vehicle_id, date, description, cost_cents)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rec.VehicleID, rec.Date, rec.Description, rec.CostCents).Scan(&rec.ID)
}

func (r *vehicleRepository) ListServiceRecords(ctx context.Context, vehicleID int32) ([]domain.ServiceRecord, error) {
	query := `SELECT id, vehicle_id, date, description, cost_cents FROM service_records WHERE vehicle_id = $1 ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ServiceRecord
	for rows.Next() {
		var rec domain.ServiceRecord
		if err := rows.Scan(&rec.ID, &rec.VehicleID, &rec.Date, &rec.Description, &rec.CostCents); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *vehicleRepository) DeleteServiceRecord(ctx context.Context, vehicleID, recordID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_records WHERE id = $1 AND vehicle_id = $2`, recordID, vehicleID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrNotFound)
}

// requireRow maps a zero-row update/delete to the given not-found error.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
