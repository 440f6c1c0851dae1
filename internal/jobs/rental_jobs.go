package jobs

import (
	"context"
	"time"

	"rentalmanager-backend/internal/logger"
)

// CompleteElapsedRentals closes active rentals whose end date has passed.
// Runs through the booking service so the transition takes the same
// per-vehicle lock as staff actions.
func (jr *JobRunner) CompleteElapsedRentals() {
	jr.runWithRecovery("CompleteElapsedRentals", func() {
		ctx := context.Background()

		elapsed, err := jr.store.RentalRepository.ListElapsedActive(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list elapsed rentals", "error", err)
			return
		}

		count := 0
		for i := range elapsed {
			if _, err := jr.booking.CompleteRental(ctx, elapsed[i].ID); err != nil {
				logger.Error("Failed to complete elapsed rental", "rental_id", elapsed[i].ID, "error", err)
				continue
			}
			count++
		}
		logger.Info("Completed elapsed rentals", "count", count)
	})
}

// PurgeResolvedImages deletes license images from requests resolved more
// than the retention window ago. The image moved to the customer record at
// approval, so the request's copy is redundant.
func (jr *JobRunner) PurgeResolvedImages() {
	jr.runWithRecovery("PurgeResolvedImages", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -30)

		requests, err := jr.store.RentalRequestRepository.ListResolvedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list resolved requests", "error", err)
			return
		}

		count := 0
		for i := range requests {
			req := &requests[i]
			if err := jr.images.DeleteFile(ctx, req.LicenseImageKey); err != nil {
				logger.Error("Failed to delete license image", "request_id", req.ID, "key", req.LicenseImageKey, "error", err)
				continue
			}
			req.LicenseImageKey = ""
			if err := jr.store.RentalRequestRepository.Update(ctx, req); err != nil {
				logger.Error("Failed to clear license image key", "request_id", req.ID, "error", err)
				continue
			}
			count++
		}
		logger.Info("Purged resolved request images", "count", count)
	})
}
