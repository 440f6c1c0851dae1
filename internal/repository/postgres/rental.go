package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, vehicle_id, customer_id, start_date, end_date, total_price_cents, status, created_on, updated_on`

func scanRental(row interface{ Scan(...any) error }, rt *domain.Rental) error {
	return row.Scan(&rt.ID, &rt.VehicleID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.TotalPriceCents, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (vehicle_id, customer_id, start_date, end_date, total_price_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		rt.VehicleID, rt.CustomerID, rt.StartDate, rt.EndDate, rt.TotalPriceCents, rt.Status, now, now).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := scanRental(r.db.QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id), rt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET vehicle_id=$1, customer_id=$2, start_date=$3, end_date=$4, total_price_cents=$5, status=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query,
		rt.VehicleID, rt.CustomerID, rt.StartDate, rt.EndDate, rt.TotalPriceCents, rt.Status, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrRentalNotFound)
}

func (r *rentalRepository) List(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	var count int32
	countQuery := `SELECT count(*) FROM (` + query + `) AS sub`
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	if status != "" {
		query += ` ORDER BY start_date DESC, id DESC LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY start_date DESC, id DESC LIMIT $1 OFFSET $2`
	}
	args = append(args, pageSize, (page-1)*pageSize)

	rentals, err := r.queryRentals(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

func (r *rentalRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Rental, error) {
	return r.queryRentals(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE vehicle_id = $1 ORDER BY start_date, id`, vehicleID)
}

func (r *rentalRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]domain.Rental, error) {
	// Half-open intersection: [start_date, end_date) meets [from, to).
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE start_date < $2 AND end_date > $1 ORDER BY start_date, id`
	return r.queryRentals(ctx, query, from, to)
}

func (r *rentalRepository) ListElapsedActive(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND end_date <= $2 ORDER BY end_date, id`
	return r.queryRentals(ctx, query, domain.RentalStatusActive, now)
}

func (r *rentalRepository) CountByStatus(ctx context.Context, status domain.RentalStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *rentalRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals`).Scan(&count)
	return count, err
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
