package service

import "sync"

// vehicleLocks hands out one mutex per vehicle ID so booking writes for the
// same vehicle run one at a time while different vehicles proceed in
// parallel. Entries are never removed; the fleet is small and bounded.
type vehicleLocks struct {
	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func newVehicleLocks() *vehicleLocks {
	return &vehicleLocks{locks: make(map[int32]*sync.Mutex)}
}

func (v *vehicleLocks) get(vehicleID int32) *sync.Mutex {
	v.mu.Lock()
	defer v.mu.Unlock()
	m, ok := v.locks[vehicleID]
	if !ok {
		m = &sync.Mutex{}
		v.locks[vehicleID] = m
	}
	return m
}
