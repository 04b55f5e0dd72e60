package handlers

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"aquameter/internal/models"
)

// NearestFinder is the service surface for the proximity lookup.
type NearestFinder interface {
	Nearest(ctx context.Context, long, lat float64) ([]models.Account, error)
}

// NewNearestMeterHandler returns GET /nearest-meter handler.
func NewNearestMeterHandler(svc NearestFinder, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		long, err := strconv.ParseFloat(r.URL.Query().Get("long"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid long parameter")
			return
		}
		lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid lat parameter")
			return
		}

		accounts, err := svc.Nearest(r.Context(), long, lat)
		if err != nil {
			logger.Error("nearest query failed",
				zap.Float64("long", long),
				zap.Float64("lat", lat),
				zap.Error(err),
			)
			writeError(w, http.StatusInternalServerError, "nearest query failed")
			return
		}

		writeJSON(w, http.StatusOK, models.AccountViews(accounts))
	}
}
