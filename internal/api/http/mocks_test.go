package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentalmanager-backend/internal/domain"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockAuthService) ValidateToken(tokenString string) error {
	args := m.Called(tokenString)
	return args.Error(0)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) IsAvailable(ctx context.Context, vehicleID int32, start, end time.Time, excludeRentalID int32) (bool, error) {
	args := m.Called(ctx, vehicleID, start, end, excludeRentalID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingService) QuotePrice(ctx context.Context, vehicleID int32, start, end time.Time) (*domain.PriceQuote, error) {
	args := m.Called(ctx, vehicleID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceQuote), args.Error(1)
}

func (m *mockBookingService) CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	args := m.Called(ctx, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockBookingService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockBookingService) UpdateRental(ctx context.Context, id, vehicleID int32, start, end time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, id, vehicleID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockBookingService) DeleteVehicle(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingService) UpdateRentalStatus(ctx context.Context, id int32, status domain.RentalStatus) (*domain.Rental, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockBookingService) CancelRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockBookingService) CompleteRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockBookingService) ListRentals(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Rental), int32(args.Int(1)), args.Error(2)
}

func (m *mockBookingService) Dashboard(ctx context.Context) (*domain.DashboardCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardCounts), args.Error(1)
}

func (m *mockBookingService) Calendar(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CalendarEvent), args.Error(1)
}

type mockRequestService struct {
	mock.Mock
}

func (m *mockRequestService) SubmitRequest(ctx context.Context, request *domain.RentalRequest) (*domain.RentalRequest, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *mockRequestService) GetRequest(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *mockRequestService) ListRequests(ctx context.Context, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}

func (m *mockRequestService) ApproveRequest(ctx context.Context, id, vehicleID int32, start, end time.Time, priceOverrideCents int32) (*domain.Rental, error) {
	args := m.Called(ctx, id, vehicleID, start, end, priceOverrideCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRequestService) RejectRequest(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *mockRequestService) AttachLicenseImage(ctx context.Context, id int32, imageKey string) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id, imageKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

type mockImageService struct {
	mock.Mock
}

func (m *mockImageService) GetLicenseUploadURL(ctx context.Context, requestID int32, contentType string, fileSize int64) (string, string, error) {
	args := m.Called(ctx, requestID, contentType, fileSize)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockImageService) ConfirmLicenseUpload(ctx context.Context, requestID int32, key string) (*domain.RentalRequest, error) {
	args := m.Called(ctx, requestID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *mockImageService) GetLicenseDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
