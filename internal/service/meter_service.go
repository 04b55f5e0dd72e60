package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"aquameter/internal/models"
)

// stubUsage is the placeholder reading returned by Detect. The detection
// endpoint only exercises the upload path; no image processing happens here.
const stubUsage = 123

// MeterStore is the persistence surface used by MeterService.
type MeterStore interface {
	AppendHistory(ctx context.Context, id string, entry models.History, updatedAt int64) (*models.Account, error)
	Nearest(ctx context.Context, long, lat float64, limit int64) ([]models.Account, error)
}

// ImageSaver stores one uploaded image and returns its generated filename.
type ImageSaver interface {
	Save(r io.Reader) (string, error)
}

// MeterService handles meter uploads, proximity lookups and usage submissions.
type MeterService struct {
	repo   MeterStore
	images ImageSaver
	logger *zap.Logger
	now    func() int64
}

// NewMeterService builds service.
func NewMeterService(repo MeterStore, images ImageSaver, logger *zap.Logger) *MeterService {
	return &MeterService{
		repo:   repo,
		images: images,
		logger: logger,
		now:    nowEpoch,
	}
}

// DetectResult echoes the saved upload and the placeholder usage value.
type DetectResult struct {
	Filename string `json:"filename"`
	Usage    int64  `json:"usage"`
}

// Detect saves the uploaded image under a generated filename and returns the
// stub usage value.
func (s *MeterService) Detect(ctx context.Context, r io.Reader) (DetectResult, error) {
	filename, err := s.images.Save(r)
	if err != nil {
		return DetectResult{}, err
	}

	s.logger.Info("meter image stored", zap.String("filename", filename))
	return DetectResult{Filename: filename, Usage: stubUsage}, nil
}

// Nearest returns accounts ordered by proximity to the given point, relying
// entirely on the store's geospatial index for ordering.
func (s *MeterService) Nearest(ctx context.Context, long, lat float64) ([]models.Account, error) {
	return s.repo.Nearest(ctx, long, lat, 0)
}

// SubmitUsage validates the submission and appends its first history entry to
// the target account, returning the updated account. A missing or malformed
// account id surfaces as repository.ErrNotFound.
func (s *MeterService) SubmitUsage(ctx context.Context, sub models.WaterMeterSubmission) (*models.Account, error) {
	if err := validate.Struct(sub); err != nil {
		return nil, err
	}

	entry := sub.History[0]
	if entry.Timestamp == 0 {
		entry.Timestamp = s.now()
	}

	account, err := s.repo.AppendHistory(ctx, sub.AccountID, entry, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("usage entry appended",
		zap.String("account_id", sub.AccountID),
		zap.Int64("usage", entry.MeterReading),
	)
	return account, nil
}

func nowEpoch() int64 {
	return time.Now().Unix()
}
