package http

import (
	"net/http"
	"time"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/service"
)

type RequestHandler struct {
	requests service.RequestService
	images   service.ImageService
}

func NewRequestHandler(requests service.RequestService, images service.ImageService) *RequestHandler {
	return &RequestHandler{requests: requests, images: images}
}

type submitRequestBody struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	IDCardNumber         string `json:"id_card_number"`
	DriversLicenseNumber string `json:"drivers_license_number"`
	VehicleID            int32  `json:"vehicle_id"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	DigitalConsent       bool   `json:"digital_consent"`
}

// HandleSubmit POST /api/v1/requests
// Public endpoint backing the booking form. The consent timestamp is set
// server-side from the checkbox.
func (h *RequestHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var body submitRequestBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := parseTime(body.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start date")
		return
	}
	end, err := parseTime(body.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid end date")
		return
	}

	request := &domain.RentalRequest{
		CustomerDetails: domain.CustomerDetails{
			FirstName:            body.FirstName,
			LastName:             body.LastName,
			Email:                body.Email,
			Phone:                body.Phone,
			IDCardNumber:         body.IDCardNumber,
			DriversLicenseNumber: body.DriversLicenseNumber,
		},
		VehicleID: body.VehicleID,
		StartDate: start,
		EndDate:   end,
	}
	if body.DigitalConsent {
		request.DigitalConsentAt = time.Now()
	}

	created, err := h.requests.SubmitRequest(r.Context(), request)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// HandleList GET /api/v1/requests?status=
func (h *RequestHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := domain.RequestStatus(r.URL.Query().Get("status"))
	requests, err := h.requests.ListRequests(r.Context(), status)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.RentalRequest{}
	}
	respondJSON(w, http.StatusOK, requests)
}

// HandleGet GET /api/v1/requests/{id}
func (h *RequestHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	request, err := h.requests.GetRequest(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, request)
}

type approveRequestBody struct {
	VehicleID  int32  `json:"vehicle_id,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	PriceCents int32  `json:"price_cents,omitempty"`
}

// HandleApprove POST /api/v1/requests/{id}/approve
// Body fields are optional overrides; empty fields keep the requested values.
func (h *RequestHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var body approveRequestBody
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &body); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	var start, end time.Time
	if body.StartDate != "" {
		if start, err = parseTime(body.StartDate); err != nil {
			respondError(w, http.StatusBadRequest, "invalid start date")
			return
		}
	}
	if body.EndDate != "" {
		if end, err = parseTime(body.EndDate); err != nil {
			respondError(w, http.StatusBadRequest, "invalid end date")
			return
		}
	}

	rental, err := h.requests.ApproveRequest(r.Context(), id, body.VehicleID, start, end, body.PriceCents)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

// HandleReject POST /api/v1/requests/{id}/reject
func (h *RequestHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	request, err := h.requests.RejectRequest(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, request)
}

type licenseImageBody struct {
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
	Key         string `json:"key,omitempty"` // set when confirming
	Confirm     bool   `json:"confirm,omitempty"`
}

// HandleLicenseImage POST /api/v1/requests/{id}/license-image
// Two-step flow: first call reserves a key and returns an upload URL, the
// confirm call attaches the uploaded key to the request.
func (h *RequestHandler) HandleLicenseImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var body licenseImageBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Confirm {
		request, err := h.images.ConfirmLicenseUpload(r.Context(), id, body.Key)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, request)
		return
	}

	key, uploadURL, err := h.images.GetLicenseUploadURL(r.Context(), id, body.ContentType, body.FileSize)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"key":        key,
		"upload_url": uploadURL,
	})
}
