package http

import (
	"net/http"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/service"
)

type VehicleHandler struct {
	vehicles service.VehicleService
	booking  service.BookingService
}

func NewVehicleHandler(vehicles service.VehicleService, booking service.BookingService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, booking: booking}
}

// HandleList GET /api/v1/vehicles
func (h *VehicleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListVehicles(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

// HandleGet GET /api/v1/vehicles/{id}
func (h *VehicleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	vehicle, err := h.vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

// HandleCreate POST /api/v1/vehicles
func (h *VehicleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.vehicles.AddVehicle(r.Context(), &vehicle); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

// HandleUpdate PUT /api/v1/vehicles/{id}
func (h *VehicleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	vehicle.ID = id
	if err := h.vehicles.UpdateVehicle(r.Context(), &vehicle); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

// HandleDelete DELETE /api/v1/vehicles/{id}
func (h *VehicleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.vehicles.DeleteVehicle(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// HandleAvailability GET /api/v1/vehicles/{id}/availability?start=&end=
func (h *VehicleHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := queryTime(r, "start")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := queryTime(r, "end")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	available, err := h.booking.IsAvailable(r.Context(), id, start, end, queryInt32(r, "exclude_rental_id", 0))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"available": available})
}

// HandleQuote GET /api/v1/vehicles/{id}/quote?start=&end=
func (h *VehicleHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := queryTime(r, "start")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := queryTime(r, "end")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.booking.QuotePrice(r.Context(), id, start, end)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// HandleAddServiceRecord POST /api/v1/vehicles/{id}/service-records
func (h *VehicleHandler) HandleAddServiceRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var record domain.ServiceRecord
	if err := decodeJSON(r, &record); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	record.VehicleID = id
	if err := h.vehicles.AddServiceRecord(r.Context(), &record); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

// HandleDeleteServiceRecord DELETE /api/v1/vehicles/{id}/service-records/{recordId}
func (h *VehicleHandler) HandleDeleteServiceRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	recordID, err := pathID(r, "recordId")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.vehicles.DeleteServiceRecord(r.Context(), id, recordID); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
