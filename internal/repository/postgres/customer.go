package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, email, phone, id_card_number, drivers_license_number, license_image_key, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.IDCardNumber, c.DriversLicenseNumber, c.LicenseImageKey, now, now).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, first_name, last_name, email, phone, id_card_number, drivers_license_number, license_image_key, created_on, updated_on
	          FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.IDCardNumber, &c.DriversLicenseNumber, &c.LicenseImageKey, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, email=$3, phone=$4, id_card_number=$5, drivers_license_number=$6, license_image_key=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.IDCardNumber, c.DriversLicenseNumber, c.LicenseImageKey, time.Now(), c.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrCustomerNotFound)
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, first_name, last_name, email, phone, id_card_number, drivers_license_number, license_image_key, created_on, updated_on
	          FROM customers ORDER BY last_name, first_name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.IDCardNumber, &c.DriversLicenseNumber, &c.LicenseImageKey, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
