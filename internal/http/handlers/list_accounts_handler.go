package handlers

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"aquameter/internal/service"
)

// AccountLister is the service surface for the paginated account listing.
type AccountLister interface {
	List(ctx context.Context, page, size int64) (*service.AccountPage, error)
}

// NewListAccountsHandler returns GET /account handler.
func NewListAccountsHandler(svc AccountLister, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		size := queryInt(r, "size", 0)

		accounts, err := svc.List(r.Context(), page, size)
		if err != nil {
			logger.Error("failed to list accounts", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list accounts")
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

func queryInt(r *http.Request, key string, fallback int64) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}
