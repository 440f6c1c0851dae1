package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/repository"
)

type rentalRequestRepository struct {
	db *sql.DB
}

func NewRentalRequestRepository(db *sql.DB) repository.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

const requestColumns = `id, first_name, last_name, email, phone, id_card_number, drivers_license_number, vehicle_id, start_date, end_date, digital_consent_at, license_image_key, status, created_on, updated_on`

func scanRequest(row interface{ Scan(...any) error }, req *domain.RentalRequest) error {
	return row.Scan(&req.ID,
		&req.CustomerDetails.FirstName, &req.CustomerDetails.LastName, &req.CustomerDetails.Email,
		&req.CustomerDetails.Phone, &req.CustomerDetails.IDCardNumber, &req.CustomerDetails.DriversLicenseNumber,
		&req.VehicleID, &req.StartDate, &req.EndDate, &req.DigitalConsentAt, &req.LicenseImageKey,
		&req.Status, &req.CreatedOn, &req.UpdatedOn)
}

func (r *rentalRequestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	query := `INSERT INTO rental_requests (first_name, last_name, email, phone, id_card_number, drivers_license_number, vehicle_id, start_date, end_date, digital_consent_at, license_image_key, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now()
	d := req.CustomerDetails
	return r.db.QueryRowContext(ctx, query,
		d.FirstName, d.LastName, d.Email, d.Phone, d.IDCardNumber, d.DriversLicenseNumber,
		req.VehicleID, req.StartDate, req.EndDate, req.DigitalConsentAt, req.LicenseImageKey,
		req.Status, now, now).Scan(&req.ID)
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	req := &domain.RentalRequest{}
	err := scanRequest(r.db.QueryRowContext(ctx, `SELECT `+requestColumns+` FROM rental_requests WHERE id = $1`, id), req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *rentalRequestRepository) Update(ctx context.Context, req *domain.RentalRequest) error {
	query := `UPDATE rental_requests SET license_image_key=$1, status=$2, updated_on=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, req.LicenseImageKey, req.Status, time.Now(), req.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrRequestNotFound)
}

func (r *rentalRequestRepository) MarkApproved(ctx context.Context, id int32) error {
	query := `UPDATE rental_requests SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`
	res, err := r.db.ExecContext(ctx, query, domain.RequestStatusApproved, time.Now(), id, domain.RequestStatusPending)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrRequestResolved)
}

func (r *rentalRequestRepository) List(ctx context.Context, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rental_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC, id DESC`
	return r.queryRequests(ctx, query, args...)
}

func (r *rentalRequestRepository) ListResolvedBefore(ctx context.Context, cutoff time.Time) ([]domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rental_requests
	          WHERE status <> $1 AND license_image_key <> '' AND updated_on < $2 ORDER BY updated_on, id`
	return r.queryRequests(ctx, query, domain.RequestStatusPending, cutoff)
}

func (r *rentalRequestRepository) CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *rentalRequestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.RentalRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.RentalRequest
	for rows.Next() {
		var req domain.RentalRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
