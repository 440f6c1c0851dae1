package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentalmanager-backend/internal/service"
	"rentalmanager-backend/internal/storage"
)

// Services bundles everything the router needs.
type Services struct {
	Auth      service.AuthService
	Vehicles  service.VehicleService
	Customers service.CustomerService
	Booking   service.BookingService
	Requests  service.RequestService
	Settings  service.SettingsService
	Images    service.ImageService
	Storage   storage.ImageStorage
}

// NewRouter builds the full route table. Public routes serve the booking
// form; everything else sits behind the staff token.
func NewRouter(svcs Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	authHandler := NewAuthHandler(svcs.Auth)
	vehicleHandler := NewVehicleHandler(svcs.Vehicles, svcs.Booking)
	customerHandler := NewCustomerHandler(svcs.Customers, svcs.Images)
	rentalHandler := NewRentalHandler(svcs.Booking)
	requestHandler := NewRequestHandler(svcs.Requests, svcs.Images)
	settingsHandler := NewSettingsHandler(svcs.Settings)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public surface.
	api.HandleFunc("/auth/login", authHandler.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/requests", requestHandler.HandleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id}/license-image", requestHandler.HandleLicenseImage).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", vehicleHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/availability", vehicleHandler.HandleAvailability).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/quote", vehicleHandler.HandleQuote).Methods(http.MethodGet)

	// Mock storage endpoints, only when the local backend is active.
	if mock, ok := svcs.Storage.(*storage.MockStorage); ok {
		uploadHandler := NewImageUploadHandler(mock)
		api.HandleFunc("/upload/{token}", uploadHandler.HandleUpload).Methods(http.MethodPut)
		api.HandleFunc("/download", uploadHandler.HandleDownload).Methods(http.MethodGet)
	}

	// Staff surface.
	staff := api.PathPrefix("/").Subrouter()
	staff.Use(staffAuth(svcs.Auth))

	staff.HandleFunc("/vehicles", vehicleHandler.HandleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/vehicles/{id}", vehicleHandler.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/vehicles/{id}", vehicleHandler.HandleUpdate).Methods(http.MethodPut)
	staff.HandleFunc("/vehicles/{id}", vehicleHandler.HandleDelete).Methods(http.MethodDelete)
	staff.HandleFunc("/vehicles/{id}/service-records", vehicleHandler.HandleAddServiceRecord).Methods(http.MethodPost)
	staff.HandleFunc("/vehicles/{id}/service-records/{recordId}", vehicleHandler.HandleDeleteServiceRecord).Methods(http.MethodDelete)

	staff.HandleFunc("/customers", customerHandler.HandleList).Methods(http.MethodGet)
	staff.HandleFunc("/customers", customerHandler.HandleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/customers/{id}", customerHandler.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/customers/{id}", customerHandler.HandleUpdate).Methods(http.MethodPut)
	staff.HandleFunc("/customers/{id}/license-image", customerHandler.HandleLicenseImage).Methods(http.MethodGet)

	staff.HandleFunc("/rentals", rentalHandler.HandleList).Methods(http.MethodGet)
	staff.HandleFunc("/rentals", rentalHandler.HandleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/calendar", rentalHandler.HandleCalendar).Methods(http.MethodGet)
	staff.HandleFunc("/rentals/{id}", rentalHandler.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/rentals/{id}", rentalHandler.HandleUpdate).Methods(http.MethodPut)
	staff.HandleFunc("/rentals/{id}/status", rentalHandler.HandleUpdateStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/rentals/{id}/cancel", rentalHandler.HandleCancel).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/{id}/complete", rentalHandler.HandleComplete).Methods(http.MethodPost)

	staff.HandleFunc("/requests", requestHandler.HandleList).Methods(http.MethodGet)
	staff.HandleFunc("/requests/{id}", requestHandler.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/requests/{id}/approve", requestHandler.HandleApprove).Methods(http.MethodPost)
	staff.HandleFunc("/requests/{id}/reject", requestHandler.HandleReject).Methods(http.MethodPost)

	staff.HandleFunc("/settings", settingsHandler.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/settings", settingsHandler.HandleUpdate).Methods(http.MethodPut)

	staff.HandleFunc("/dashboard", rentalHandler.HandleDashboard).Methods(http.MethodGet)

	return r
}
