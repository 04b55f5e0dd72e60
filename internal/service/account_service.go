package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"aquameter/internal/models"
)

var validate = validator.New()

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// AccountStore is the persistence surface used by AccountService.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	List(ctx context.Context, page, size int64) ([]models.Account, int64, error)
}

// AccountService creates and lists household accounts.
type AccountService struct {
	repo   AccountStore
	logger *zap.Logger
	now    func() int64
}

// NewAccountService builds service.
func NewAccountService(repo AccountStore, logger *zap.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		logger: logger,
		now:    nowEpoch,
	}
}

// CreateAccountInput carries the validated account shape.
type CreateAccountInput struct {
	Number   string          `validate:"required"`
	Name     string          `validate:"required"`
	Address  string          `validate:"required"`
	Location models.GeoPoint `validate:"required"`
}

// Create validates the input, stamps creation timestamps and persists the
// account. The location type defaults to Point when omitted; a coordinate
// pair of any length other than 2 is rejected before reaching the store.
func (s *AccountService) Create(ctx context.Context, input CreateAccountInput) (*models.Account, error) {
	if input.Location.Type == "" {
		input.Location.Type = "Point"
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	now := s.now()
	account := &models.Account{
		Number:    input.Number,
		Name:      input.Name,
		Address:   input.Address,
		Location:  input.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		zap.String("id", stored.ID.Hex()),
		zap.String("number", stored.Number),
	)
	return stored, nil
}

// AccountPage is one page of accounts in creation order.
type AccountPage struct {
	Items []models.AccountView `json:"items"`
	Total int64                `json:"total"`
	Page  int64                `json:"page"`
	Size  int64                `json:"size"`
	Pages int64                `json:"pages"`
}

// List returns one page of accounts sorted by creation time ascending.
func (s *AccountService) List(ctx context.Context, page, size int64) (*AccountPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	accounts, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return nil, err
	}

	pages := total / size
	if total%size != 0 {
		pages++
	}

	return &AccountPage{
		Items: models.AccountViews(accounts),
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}, nil
}
