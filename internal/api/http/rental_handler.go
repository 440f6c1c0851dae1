package http

import (
	"context"
	"net/http"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/service"
)

type RentalHandler struct {
	booking service.BookingService
}

func NewRentalHandler(booking service.BookingService) *RentalHandler {
	return &RentalHandler{booking: booking}
}

type createRentalRequest struct {
	VehicleID  int32  `json:"vehicle_id"`
	CustomerID int32  `json:"customer_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status,omitempty"`
	PriceCents int32  `json:"price_cents,omitempty"` // staff override
}

type rentalListResponse struct {
	Rentals []domain.Rental `json:"rentals"`
	Total   int32           `json:"total"`
	Page    int32           `json:"page"`
}

func (req *createRentalRequest) toRental() (*domain.Rental, error) {
	start, err := parseTime(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseTime(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &domain.Rental{
		VehicleID:       req.VehicleID,
		CustomerID:      req.CustomerID,
		StartDate:       start,
		EndDate:         end,
		TotalPriceCents: req.PriceCents,
		Status:          domain.RentalStatus(req.Status),
	}, nil
}

// HandleList GET /api/v1/rentals?status=&page=&page_size=
func (h *RentalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := domain.RentalStatus(r.URL.Query().Get("status"))
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	rentals, total, err := h.booking.ListRentals(r.Context(), status, page, pageSize)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	respondJSON(w, http.StatusOK, rentalListResponse{Rentals: rentals, Total: total, Page: page})
}

// HandleGet GET /api/v1/rentals/{id}
func (h *RentalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rental, err := h.booking.GetRental(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

// HandleCreate POST /api/v1/rentals
// Direct staff booking for a walk-in customer.
func (h *RentalHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rental, err := req.toRental()
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start or end date")
		return
	}
	if rental.Status == "" {
		rental.Status = domain.RentalStatusActive
	}

	created, err := h.booking.CreateRental(r.Context(), rental)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

type rescheduleRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// VehicleID moves the rental to another vehicle; zero keeps the
	// current one.
	VehicleID int32 `json:"vehicle_id,omitempty"`
}

// HandleUpdate PUT /api/v1/rentals/{id}
func (h *RentalHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req rescheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := parseTime(req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start date")
		return
	}
	end, err := parseTime(req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid end date")
		return
	}

	rental, err := h.booking.UpdateRental(r.Context(), id, req.VehicleID, start, end)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

type statusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus PATCH /api/v1/rentals/{id}/status
func (h *RentalHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.booking.UpdateRentalStatus(r.Context(), id, domain.RentalStatus(req.Status))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

// HandleCancel POST /api/v1/rentals/{id}/cancel
func (h *RentalHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.booking.CancelRental)
}

// HandleComplete POST /api/v1/rentals/{id}/complete
func (h *RentalHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.booking.CompleteRental)
}

func (h *RentalHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int32) (*domain.Rental, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rental, err := fn(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

// HandleCalendar GET /api/v1/rentals/calendar?from=&to=
func (h *RentalHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	from, err := queryTime(r, "from")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.booking.Calendar(r.Context(), from, to)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	respondJSON(w, http.StatusOK, events)
}

// HandleDashboard GET /api/v1/dashboard
func (h *RentalHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.booking.Dashboard(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}
