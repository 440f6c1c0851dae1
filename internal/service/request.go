package service

import (
	"context"
	"time"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/logger"
	"rentalmanager-backend/internal/repository"
)

type requestService struct {
	requestRepo  repository.RentalRequestRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
	booking      BookingService
	settingsRepo repository.SettingsRepository
	emailSvc     EmailService
	staffEmail   string
	now          func() time.Time
}

func NewRequestService(
	requestRepo repository.RentalRequestRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	booking BookingService,
	settingsRepo repository.SettingsRepository,
	emailSvc EmailService,
	staffEmail string,
) RequestService {
	return &requestService{
		requestRepo:  requestRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		booking:      booking,
		settingsRepo: settingsRepo,
		emailSvc:     emailSvc,
		staffEmail:   staffEmail,
		now:          time.Now,
	}
}

func (s *requestService) SubmitRequest(ctx context.Context, request *domain.RentalRequest) (*domain.RentalRequest, error) {
	if err := request.CustomerDetails.Validate(); err != nil {
		return nil, err
	}
	if !request.StartDate.Before(request.EndDate) {
		return nil, domain.ErrInvalidInterval
	}
	if request.DigitalConsentAt.IsZero() {
		return nil, domain.ErrMissingConsent
	}
	if _, err := s.vehicleRepo.GetByID(ctx, request.VehicleID); err != nil {
		return nil, err
	}

	request.Status = domain.RequestStatusPending
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	logger.WithComponent("requests").Info("rental request submitted",
		"request_id", request.ID, "vehicle_id", request.VehicleID)

	if err := s.emailSvc.SendRequestReceivedNotification(ctx, s.staffEmail, request); err != nil {
		logger.WithComponent("requests").Warn("staff notification failed", "error", err)
	}
	return request, nil
}

func (s *requestService) GetRequest(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *requestService) ListRequests(ctx context.Context, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	return s.requestRepo.List(ctx, status)
}

func (s *requestService) ApproveRequest(ctx context.Context, id, vehicleID int32, start, end time.Time, priceOverrideCents int32) (*domain.Rental, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Resolved() {
		return nil, domain.ErrRequestResolved
	}

	// Staff may leave the requested vehicle and window untouched.
	if vehicleID == 0 {
		vehicleID = req.VehicleID
	}
	if start.IsZero() {
		start = req.StartDate
	}
	if end.IsZero() {
		end = req.EndDate
	}
	if !start.Before(end) {
		return nil, domain.ErrInvalidInterval
	}

	// Claim the request before creating anything. The compare-and-set
	// leaves exactly one winner when two staff members approve the same
	// request concurrently; the loser fails here without side effects.
	if err := s.requestRepo.MarkApproved(ctx, id); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		FirstName:            req.CustomerDetails.FirstName,
		LastName:             req.CustomerDetails.LastName,
		Email:                req.CustomerDetails.Email,
		Phone:                req.CustomerDetails.Phone,
		IDCardNumber:         req.CustomerDetails.IDCardNumber,
		DriversLicenseNumber: req.CustomerDetails.DriversLicenseNumber,
		LicenseImageKey:      req.LicenseImageKey,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.reopenRequest(ctx, req)
		return nil, err
	}

	rental := &domain.Rental{
		VehicleID:       vehicleID,
		CustomerID:      customer.ID,
		StartDate:       start,
		EndDate:         end,
		TotalPriceCents: priceOverrideCents,
		Status:          domain.RentalStatusActive,
	}
	rental, err = s.booking.CreateRental(ctx, rental)
	if err != nil {
		// A conflict or validation failure must leave the request open
		// for another vehicle or window.
		s.reopenRequest(ctx, req)
		return nil, err
	}
	logger.WithComponent("requests").Info("rental request approved",
		"request_id", req.ID, "rental_id", rental.ID)

	bankAccount := ""
	if settings, err := s.settingsRepo.Get(ctx); err == nil {
		bankAccount = settings.BankAccount
	}
	if err := s.emailSvc.SendApprovalNotification(ctx, req.CustomerDetails.Email, customer.FullName(), rental, bankAccount); err != nil {
		logger.WithComponent("requests").Warn("approval notification failed", "error", err)
	}
	return rental, nil
}

func (s *requestService) reopenRequest(ctx context.Context, req *domain.RentalRequest) {
	req.Status = domain.RequestStatusPending
	if err := s.requestRepo.Update(ctx, req); err != nil {
		logger.WithComponent("requests").Error("failed to reopen request after failed approval",
			"request_id", req.ID, "error", err)
	}
}

func (s *requestService) RejectRequest(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Resolved() {
		return nil, domain.ErrRequestResolved
	}

	req.Status = domain.RequestStatusRejected
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	logger.WithComponent("requests").Info("rental request rejected", "request_id", req.ID)

	name := req.CustomerDetails.FirstName + " " + req.CustomerDetails.LastName
	if err := s.emailSvc.SendRejectionNotification(ctx, req.CustomerDetails.Email, name); err != nil {
		logger.WithComponent("requests").Warn("rejection notification failed", "error", err)
	}
	return req, nil
}

func (s *requestService) AttachLicenseImage(ctx context.Context, id int32, imageKey string) (*domain.RentalRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Resolved() {
		return nil, domain.ErrRequestResolved
	}
	req.LicenseImageKey = imageKey
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
