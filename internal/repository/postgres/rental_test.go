package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalmanager-backend/internal/domain"
)

func rentalRows(rentals ...domain.Rental) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "vehicle_id", "customer_id", "start_date", "end_date", "total_price_cents", "status", "created_on", "updated_on"})
	for _, rt := range rentals {
		rows.AddRow(rt.ID, rt.VehicleID, rt.CustomerID, rt.StartDate, rt.EndDate, rt.TotalPriceCents, rt.Status, rt.CreatedOn, rt.UpdatedOn)
	}
	return rows
}

func TestRentalCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	start := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO rentals`)).
		WithArgs(int32(1), int32(2), start, end, int32(200000), domain.RentalStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	rt := &domain.Rental{
		VehicleID:       1,
		CustomerID:      2,
		StartDate:       start,
		EndDate:         end,
		TotalPriceCents: 200000,
		Status:          domain.RentalStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), rt))
	assert.Equal(t, int32(7), rt.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, vehicle_id, customer_id, start_date, end_date, total_price_cents, status, created_on, updated_on FROM rentals WHERE id = $1`)).
		WithArgs(int32(42)).
		WillReturnRows(rentalRows())

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE rentals SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &domain.Rental{ID: 42, Status: domain.RentalStatusActive})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalListByVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rentals WHERE vehicle_id = $1`)).
		WithArgs(int32(3)).
		WillReturnRows(rentalRows(
			domain.Rental{ID: 1, VehicleID: 3, CustomerID: 1, StartDate: now, EndDate: now.Add(24 * time.Hour), TotalPriceCents: 1000, Status: domain.RentalStatusActive, CreatedOn: now, UpdatedOn: now},
			domain.Rental{ID: 2, VehicleID: 3, CustomerID: 2, StartDate: now.Add(48 * time.Hour), EndDate: now.Add(72 * time.Hour), TotalPriceCents: 1000, Status: domain.RentalStatusPending, CreatedOn: now, UpdatedOn: now},
		))

	rentals, err := repo.ListByVehicle(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rentals, 2)
	assert.Equal(t, domain.RentalStatusActive, rentals[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalListWithStatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM`).
		WithArgs(domain.RentalStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1 ORDER BY start_date DESC, id DESC LIMIT $2 OFFSET $3`)).
		WithArgs(domain.RentalStatusPending, int32(20), int32(0)).
		WillReturnRows(rentalRows(
			domain.Rental{ID: 5, VehicleID: 1, CustomerID: 1, StartDate: now, EndDate: now.Add(24 * time.Hour), TotalPriceCents: 1000, Status: domain.RentalStatusPending, CreatedOn: now, UpdatedOn: now},
		))

	rentals, total, err := repo.List(context.Background(), domain.RentalStatusPending, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(1), total)
	require.Len(t, rentals, 1)
	assert.Equal(t, int32(5), rentals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalListOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE start_date < $2 AND end_date > $1`)).
		WithArgs(from, to).
		WillReturnRows(rentalRows())

	rentals, err := repo.ListOverlapping(context.Background(), from, to)
	require.NoError(t, err)
	assert.Empty(t, rentals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalListElapsedActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	now := time.Date(2026, 9, 10, 2, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1 AND end_date <= $2`)).
		WithArgs(domain.RentalStatusActive, now).
		WillReturnRows(rentalRows(
			domain.Rental{ID: 9, VehicleID: 1, CustomerID: 1, StartDate: now.AddDate(0, 0, -3), EndDate: now.AddDate(0, 0, -1), TotalPriceCents: 2000, Status: domain.RentalStatusActive, CreatedOn: now, UpdatedOn: now},
		))

	rentals, err := repo.ListElapsedActive(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, int32(9), rentals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
