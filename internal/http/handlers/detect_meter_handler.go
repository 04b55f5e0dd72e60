package handlers

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"aquameter/internal/service"
)

const maxUploadBytes = 32 << 20

// MeterDetector is the service surface for the detection stub.
type MeterDetector interface {
	Detect(ctx context.Context, r io.Reader) (service.DetectResult, error)
}

// NewDetectMeterHandler returns POST /detect-meter handler. The multipart
// field name is "file".
func NewDetectMeterHandler(svc MeterDetector, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file upload")
			return
		}
		defer file.Close()

		result, err := svc.Detect(r.Context(), file)
		if err != nil {
			logger.Error("failed to store meter image", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to store image")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
