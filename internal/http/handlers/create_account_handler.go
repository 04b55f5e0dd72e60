package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"aquameter/internal/models"
	"aquameter/internal/service"
)

// AccountCreator is the service surface for account creation.
type AccountCreator interface {
	Create(ctx context.Context, input service.CreateAccountInput) (*models.Account, error)
}

type createAccountRequest struct {
	Number   string          `json:"number"`
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Location models.GeoPoint `json:"location"`
}

// NewCreateAccountHandler returns POST /create-account handler.
func NewCreateAccountHandler(svc AccountCreator, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		account, err := svc.Create(r.Context(), service.CreateAccountInput{
			Number:   req.Number,
			Name:     req.Name,
			Address:  req.Address,
			Location: req.Location,
		})
		if err != nil {
			if respondIfValidation(w, err) {
				return
			}
			logger.Error("failed to create account", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to create account")
			return
		}

		writeJSON(w, http.StatusCreated, account.View())
	}
}
