package main

import (
	"context"
	"time"

	"plane-booking/shared"
)

// startResync periodically reloads the plane from the mirror in case events were missed.
func (v *viewer) startResync(ctx context.Context, interval time.Duration) {
	if v.loader == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := v.resync(ctx); err != nil {
					v.log.Warn("Periodic resync failed", "error", err)
				}
			}
		}
	}()
	v.log.Info("Resync timer started", "interval", interval.String())
}

// resync replaces the local plane with the mirrored one and pushes it to every client.
func (v *viewer) resync(ctx context.Context) error {
	plane, err := v.loader.LoadPlane(ctx)
	if err != nil {
		v.metrics.resyncs.WithLabelValues("error").Inc()
		return err
	}

	v.state.replace(plane)
	v.metrics.resyncs.WithLabelValues("ok").Inc()
	v.metrics.reservedSeats.Set(float64(plane.Count(shared.SeatReserved)))

	v.broadcast(shared.MessageTypePlaneState, v.state.snapshot())
	return nil
}
