package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentalmanager-backend/internal/domain"
)

func doRequest(router *mux.Router, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleLogin(t *testing.T) {
	auth := new(mockAuthService)
	handler := NewAuthHandler(auth)
	router := mux.NewRouter()
	router.HandleFunc("/auth/login", handler.HandleLogin).Methods(http.MethodPost)

	expiresAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	auth.On("Login", mock.Anything, "hunter2").Return("signed-token", expiresAt, nil)

	rec := doRequest(router, http.MethodPost, "/auth/login", loginRequest{Password: "hunter2"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.True(t, expiresAt.Equal(resp.ExpiresAt))
	auth.AssertExpectations(t)
}

func TestHandleLoginWrongPassword(t *testing.T) {
	auth := new(mockAuthService)
	handler := NewAuthHandler(auth)
	router := mux.NewRouter()
	router.HandleFunc("/auth/login", handler.HandleLogin).Methods(http.MethodPost)

	auth.On("Login", mock.Anything, "nope").
		Return("", time.Time{}, domain.ErrValidation)

	rec := doRequest(router, http.MethodPost, "/auth/login", loginRequest{Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffAuthMiddleware(t *testing.T) {
	auth := new(mockAuthService)
	auth.On("ValidateToken", "good-token").Return(nil)
	auth.On("ValidateToken", "bad-token").Return(assert.AnError)

	router := mux.NewRouter()
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(staffAuth(auth))
	protected.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"malformed header", "good-token", http.StatusUnauthorized},
		{"invalid token", "Bearer bad-token", http.StatusUnauthorized},
		{"valid token", "Bearer good-token", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleCreateRentalDefaultsToActive(t *testing.T) {
	booking := new(mockBookingService)
	handler := NewRentalHandler(booking)
	router := mux.NewRouter()
	router.HandleFunc("/rentals", handler.HandleCreate).Methods(http.MethodPost)

	created := &domain.Rental{ID: 7, VehicleID: 1, CustomerID: 2, Status: domain.RentalStatusActive}
	booking.On("CreateRental", mock.Anything, mock.MatchedBy(func(r *domain.Rental) bool {
		return r.VehicleID == 1 && r.CustomerID == 2 && r.Status == domain.RentalStatusActive
	})).Return(created, nil)

	rec := doRequest(router, http.MethodPost, "/rentals", createRentalRequest{
		VehicleID:  1,
		CustomerID: 2,
		StartDate:  "2026-09-01T10:00:00Z",
		EndDate:    "2026-09-03T10:00:00Z",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	booking.AssertExpectations(t)
}

func TestHandleCreateRentalConflict(t *testing.T) {
	booking := new(mockBookingService)
	handler := NewRentalHandler(booking)
	router := mux.NewRouter()
	router.HandleFunc("/rentals", handler.HandleCreate).Methods(http.MethodPost)

	booking.On("CreateRental", mock.Anything, mock.Anything).
		Return(nil, domain.ErrVehicleUnavailable)

	rec := doRequest(router, http.MethodPost, "/rentals", createRentalRequest{
		VehicleID:  1,
		CustomerID: 2,
		StartDate:  "2026-09-01T10:00:00Z",
		EndDate:    "2026-09-03T10:00:00Z",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleUpdateStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"illegal transition", domain.ErrIllegalTransition, http.StatusUnprocessableEntity},
		{"terminal rental", domain.ErrRentalAlreadyClosed, http.StatusUnprocessableEntity},
		{"unknown rental", domain.ErrRentalNotFound, http.StatusNotFound},
		{"bad status value", domain.ErrValidation, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := new(mockBookingService)
			handler := NewRentalHandler(booking)
			router := mux.NewRouter()
			router.HandleFunc("/rentals/{id}/status", handler.HandleUpdateStatus).Methods(http.MethodPatch)

			booking.On("UpdateRentalStatus", mock.Anything, int32(5), mock.Anything).
				Return(nil, tt.err)

			rec := doRequest(router, http.MethodPatch, "/rentals/5/status", statusRequest{Status: "completed"})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleCancelRental(t *testing.T) {
	booking := new(mockBookingService)
	handler := NewRentalHandler(booking)
	router := mux.NewRouter()
	router.HandleFunc("/rentals/{id}/cancel", handler.HandleCancel).Methods(http.MethodPost)

	cancelled := &domain.Rental{ID: 9, Status: domain.RentalStatusCancelled}
	booking.On("CancelRental", mock.Anything, int32(9)).Return(cancelled, nil)

	rec := doRequest(router, http.MethodPost, "/rentals/9/cancel", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.RentalStatusCancelled, resp.Status)
}

func TestHandleListRentalsEmpty(t *testing.T) {
	booking := new(mockBookingService)
	handler := NewRentalHandler(booking)
	router := mux.NewRouter()
	router.HandleFunc("/rentals", handler.HandleList).Methods(http.MethodGet)

	booking.On("ListRentals", mock.Anything, domain.RentalStatus(""), int32(1), int32(20)).
		Return(nil, 0, nil)

	rec := doRequest(router, http.MethodGet, "/rentals", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	// Empty list must serialize as [], not null.
	assert.Contains(t, rec.Body.String(), `"rentals":[]`)
}

func TestHandleSubmitRequestSetsConsentTimestamp(t *testing.T) {
	requests := new(mockRequestService)
	handler := NewRequestHandler(requests, nil)
	router := mux.NewRouter()
	router.HandleFunc("/requests", handler.HandleSubmit).Methods(http.MethodPost)

	created := &domain.RentalRequest{ID: 3, Status: domain.RequestStatusPending}
	requests.On("SubmitRequest", mock.Anything, mock.MatchedBy(func(r *domain.RentalRequest) bool {
		return r.CustomerDetails.FirstName == "Jan" && r.VehicleID == 4 && !r.DigitalConsentAt.IsZero()
	})).Return(created, nil)

	rec := doRequest(router, http.MethodPost, "/requests", submitRequestBody{
		FirstName:            "Jan",
		LastName:             "Novak",
		Email:                "jan@example.com",
		Phone:                "+420123456789",
		DriversLicenseNumber: "DL-1234",
		VehicleID:            4,
		StartDate:            "2026-09-01T10:00:00Z",
		EndDate:              "2026-09-03T10:00:00Z",
		DigitalConsent:       true,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	requests.AssertExpectations(t)
}

func TestHandleSubmitRequestWithoutConsentLeavesZeroTimestamp(t *testing.T) {
	requests := new(mockRequestService)
	handler := NewRequestHandler(requests, nil)
	router := mux.NewRouter()
	router.HandleFunc("/requests", handler.HandleSubmit).Methods(http.MethodPost)

	requests.On("SubmitRequest", mock.Anything, mock.MatchedBy(func(r *domain.RentalRequest) bool {
		return r.DigitalConsentAt.IsZero()
	})).Return(nil, domain.ErrMissingConsent)

	rec := doRequest(router, http.MethodPost, "/requests", submitRequestBody{
		FirstName: "Jan",
		VehicleID: 4,
		StartDate: "2026-09-01T10:00:00Z",
		EndDate:   "2026-09-03T10:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleApproveWithoutBodyKeepsRequestedValues(t *testing.T) {
	requests := new(mockRequestService)
	handler := NewRequestHandler(requests, nil)
	router := mux.NewRouter()
	router.HandleFunc("/requests/{id}/approve", handler.HandleApprove).Methods(http.MethodPost)

	rental := &domain.Rental{ID: 11, Status: domain.RentalStatusActive}
	requests.On("ApproveRequest", mock.Anything, int32(6), int32(0), time.Time{}, time.Time{}, int32(0)).
		Return(rental, nil)

	req := httptest.NewRequest(http.MethodPost, "/requests/6/approve", strings.NewReader(""))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	requests.AssertExpectations(t)
}

func TestHandleApproveWithOverrides(t *testing.T) {
	requests := new(mockRequestService)
	handler := NewRequestHandler(requests, nil)
	router := mux.NewRouter()
	router.HandleFunc("/requests/{id}/approve", handler.HandleApprove).Methods(http.MethodPost)

	start := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)
	rental := &domain.Rental{ID: 12, VehicleID: 2, Status: domain.RentalStatusActive}
	requests.On("ApproveRequest", mock.Anything, int32(6), int32(2), start, end, int32(3500)).
		Return(rental, nil)

	rec := doRequest(router, http.MethodPost, "/requests/6/approve", approveRequestBody{
		VehicleID:  2,
		StartDate:  "2026-09-05T10:00:00Z",
		EndDate:    "2026-09-08T10:00:00Z",
		PriceCents: 3500,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	requests.AssertExpectations(t)
}

func TestHandleApproveResolvedRequest(t *testing.T) {
	requests := new(mockRequestService)
	handler := NewRequestHandler(requests, nil)
	router := mux.NewRouter()
	router.HandleFunc("/requests/{id}/approve", handler.HandleApprove).Methods(http.MethodPost)

	requests.On("ApproveRequest", mock.Anything, int32(6), int32(0), time.Time{}, time.Time{}, int32(0)).
		Return(nil, domain.ErrRequestResolved)

	req := httptest.NewRequest(http.MethodPost, "/requests/6/approve", strings.NewReader(""))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleLicenseImageReserveAndConfirm(t *testing.T) {
	images := new(mockImageService)
	handler := NewRequestHandler(nil, images)
	router := mux.NewRouter()
	router.HandleFunc("/requests/{id}/license-image", handler.HandleLicenseImage).Methods(http.MethodPost)

	images.On("GetLicenseUploadURL", mock.Anything, int32(6), "image/jpeg", int64(1024)).
		Return("requests/6/abc.jpg", "http://localhost/api/v1/upload/tok?key=requests/6/abc.jpg", nil)

	rec := doRequest(router, http.MethodPost, "/requests/6/license-image", licenseImageBody{
		ContentType: "image/jpeg",
		FileSize:    1024,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var reserve map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reserve))
	assert.Equal(t, "requests/6/abc.jpg", reserve["key"])
	assert.NotEmpty(t, reserve["upload_url"])

	confirmed := &domain.RentalRequest{ID: 6, LicenseImageKey: "requests/6/abc.jpg"}
	images.On("ConfirmLicenseUpload", mock.Anything, int32(6), "requests/6/abc.jpg").
		Return(confirmed, nil)

	rec = doRequest(router, http.MethodPost, "/requests/6/license-image", licenseImageBody{
		Key:     "requests/6/abc.jpg",
		Confirm: true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	images.AssertExpectations(t)
}

func TestHandleDashboard(t *testing.T) {
	booking := new(mockBookingService)
	handler := NewRentalHandler(booking)
	router := mux.NewRouter()
	router.HandleFunc("/dashboard", handler.HandleDashboard).Methods(http.MethodGet)

	booking.On("Dashboard", mock.Anything).Return(&domain.DashboardCounts{
		PendingRequests: 2,
		ActiveRentals:   3,
		Vehicles:        5,
	}, nil)

	rec := doRequest(router, http.MethodGet, "/dashboard", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var counts domain.DashboardCounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.Equal(t, int32(2), counts.PendingRequests)
	assert.Equal(t, int32(3), counts.ActiveRentals)
}

func TestPathIDRejectsGarbage(t *testing.T) {
	booking := new(mockBookingService)
	handler := NewRentalHandler(booking)
	router := mux.NewRouter()
	router.HandleFunc("/rentals/{id}", handler.HandleGet).Methods(http.MethodGet)

	rec := doRequest(router, http.MethodGet, "/rentals/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodGet, "/rentals/-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
