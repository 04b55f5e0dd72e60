package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"aquameter/internal/models"
	"aquameter/internal/repository"
)

// UsageSubmitter is the service surface for usage submissions.
type UsageSubmitter interface {
	SubmitUsage(ctx context.Context, sub models.WaterMeterSubmission) (*models.Account, error)
}

// NewSubmitUsageHandler returns POST /submit_usage handler.
func NewSubmitUsageHandler(svc UsageSubmitter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub models.WaterMeterSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		account, err := svc.SubmitUsage(r.Context(), sub)
		if err != nil {
			if respondIfValidation(w, err) {
				return
			}
			if errors.Is(err, repository.ErrNotFound) {
				writeError(w, http.StatusNotFound, "account not found")
				return
			}
			logger.Error("failed to submit usage",
				zap.String("account_id", sub.AccountID),
				zap.Error(err),
			)
			writeError(w, http.StatusInternalServerError, "failed to submit usage")
			return
		}

		writeJSON(w, http.StatusOK, account.View())
	}
}
