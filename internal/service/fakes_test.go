package service

import (
	"context"
	"sync"
	"time"

	"rentalmanager-backend/internal/domain"
)

// In-memory repositories used by the service tests. All methods are safe for
// concurrent use so the booking serialization tests exercise real races.

type memVehicleRepo struct {
	mu       sync.Mutex
	nextID   int32
	vehicles map[int32]domain.Vehicle
	records  map[int32][]domain.ServiceRecord
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{
		vehicles: make(map[int32]domain.Vehicle),
		records:  make(map[int32][]domain.ServiceRecord),
	}
}

func (r *memVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	v.ID = r.nextID
	v.CreatedOn = time.Now()
	r.vehicles[v.ID] = *v
	return nil
}

func (r *memVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	return &v, nil
}

func (r *memVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[v.ID]; !ok {
		return domain.ErrVehicleNotFound
	}
	r.vehicles[v.ID] = *v
	return nil
}

func (r *memVehicleRepo) Delete(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[id]; !ok {
		return domain.ErrVehicleNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *memVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (r *memVehicleRepo) AddServiceRecord(ctx context.Context, rec *domain.ServiceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	r.records[rec.VehicleID] = append(r.records[rec.VehicleID], *rec)
	return nil
}

func (r *memVehicleRepo) ListServiceRecords(ctx context.Context, vehicleID int32) ([]domain.ServiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ServiceRecord(nil), r.records[vehicleID]...), nil
}

func (r *memVehicleRepo) DeleteServiceRecord(ctx context.Context, vehicleID, recordID int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs := r.records[vehicleID]
	for i := range recs {
		if recs[i].ID == recordID {
			r.records[vehicleID] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memCustomerRepo struct {
	mu        sync.Mutex
	nextID    int32
	customers map[int32]domain.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[int32]domain.Customer)}
}

func (r *memCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *memCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

type memRentalRepo struct {
	mu      sync.Mutex
	nextID  int32
	rentals map[int32]domain.Rental
}

func newMemRentalRepo() *memRentalRepo {
	return &memRentalRepo{rentals: make(map[int32]domain.Rental)}
}

func (r *memRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rt.ID = r.nextID
	rt.CreatedOn = time.Now()
	r.rentals[rt.ID] = *rt
	return nil
}

func (r *memRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.rentals[id]
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	return &rt, nil
}

func (r *memRentalRepo) Update(ctx context.Context, rt *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rentals[rt.ID]; !ok {
		return domain.ErrRentalNotFound
	}
	r.rentals[rt.ID] = *rt
	return nil
}

func (r *memRentalRepo) List(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Rental
	for _, rt := range r.rentals {
		if status == "" || rt.Status == status {
			out = append(out, rt)
		}
	}
	return out, int32(len(out)), nil
}

func (r *memRentalRepo) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Rental
	for _, rt := range r.rentals {
		if rt.VehicleID == vehicleID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *memRentalRepo) ListOverlapping(ctx context.Context, from, to time.Time) ([]domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Rental
	for _, rt := range r.rentals {
		if rt.StartDate.Before(to) && rt.EndDate.After(from) {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *memRentalRepo) ListElapsedActive(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Rental
	for _, rt := range r.rentals {
		if rt.Status == domain.RentalStatusActive && !rt.EndDate.After(now) {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *memRentalRepo) CountByStatus(ctx context.Context, status domain.RentalStatus) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int32
	for _, rt := range r.rentals {
		if rt.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memRentalRepo) Count(ctx context.Context) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(len(r.rentals)), nil
}

type memRequestRepo struct {
	mu       sync.Mutex
	nextID   int32
	requests map[int32]domain.RentalRequest
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[int32]domain.RentalRequest)}
}

func (r *memRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	req.ID = r.nextID
	req.CreatedOn = time.Now()
	r.requests[req.ID] = *req
	return nil
}

func (r *memRequestRepo) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (r *memRequestRepo) Update(ctx context.Context, req *domain.RentalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[req.ID]; !ok {
		return domain.ErrRequestNotFound
	}
	req.UpdatedOn = time.Now()
	r.requests[req.ID] = *req
	return nil
}

func (r *memRequestRepo) MarkApproved(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != domain.RequestStatusPending {
		return domain.ErrRequestResolved
	}
	req.Status = domain.RequestStatusApproved
	req.UpdatedOn = time.Now()
	r.requests[id] = req
	return nil
}

func (r *memRequestRepo) List(ctx context.Context, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.RentalRequest
	for _, req := range r.requests {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memRequestRepo) ListResolvedBefore(ctx context.Context, cutoff time.Time) ([]domain.RentalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.RentalRequest
	for _, req := range r.requests {
		if req.Status != domain.RequestStatusPending && req.LicenseImageKey != "" && req.UpdatedOn.Before(cutoff) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memRequestRepo) CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int32
	for _, req := range r.requests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

type memSettingsRepo struct {
	mu       sync.Mutex
	settings domain.Settings
}

func (r *memSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.settings
	return &s, nil
}

func (r *memSettingsRepo) Update(ctx context.Context, s *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = *s
	return nil
}
