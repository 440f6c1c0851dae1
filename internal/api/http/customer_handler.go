package http

import (
	"net/http"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
	images    service.ImageService
}

func NewCustomerHandler(customers service.CustomerService, images service.ImageService) *CustomerHandler {
	return &CustomerHandler{customers: customers, images: images}
}

// HandleList GET /api/v1/customers
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

// HandleGet GET /api/v1/customers/{id}
func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// HandleCreate POST /api/v1/customers
func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.customers.AddCustomer(r.Context(), &customer); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

// HandleUpdate PUT /api/v1/customers/{id}
func (h *CustomerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	customer.ID = id
	if err := h.customers.UpdateCustomer(r.Context(), &customer); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// HandleLicenseImage GET /api/v1/customers/{id}/license-image
// Returns a short-lived download URL for the stored license image.
func (h *CustomerHandler) HandleLicenseImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	url, err := h.images.GetLicenseDownloadURL(r.Context(), customer.LicenseImageKey)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"download_url": url})
}
