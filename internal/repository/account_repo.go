package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"aquameter/internal/models"
)

// AccountRepository persists account documents through the generic store.
type AccountRepository struct {
	store *Store
}

// NewAccountRepository returns repository.
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// Create inserts a new account and returns the stored document with its
// generated identifier.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	var stored models.Account
	if err := r.store.Insert(ctx, account, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetByID returns the account or ErrNotFound.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	if err := r.store.FindByID(ctx, id, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns one page of accounts in creation order plus the total count.
func (r *AccountRepository) List(ctx context.Context, page, size int64) ([]models.Account, int64, error) {
	accounts := make([]models.Account, 0, size)
	sort := bson.D{{Key: "createdAt", Value: 1}}
	total, err := r.store.Paginate(ctx, sort, page, size, &accounts)
	if err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

// AppendHistory atomically appends one history entry, bumps updatedAt and
// returns the updated account.
func (r *AccountRepository) AppendHistory(ctx context.Context, id string, entry models.History, updatedAt int64) (*models.Account, error) {
	var account models.Account
	if err := r.store.Push(ctx, id, "history", entry, &account); err != nil {
		return nil, err
	}
	if err := r.store.UpdateByID(ctx, id, bson.M{"updatedAt": updatedAt}, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Nearest returns accounts ordered by proximity to the given point.
func (r *AccountRepository) Nearest(ctx context.Context, long, lat float64, limit int64) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	if err := r.store.FindNearest(ctx, long, lat, limit, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
