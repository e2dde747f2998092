package predict

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/robotomize/plinko/internal/dataset"
	datasetDb "github.com/robotomize/plinko/internal/dataset/database"
	"github.com/robotomize/plinko/internal/errs"
	"github.com/robotomize/plinko/internal/httputil"
	"github.com/robotomize/plinko/internal/metrics"
)

const maxBodyBytes = 64 * 1024 * 1024

// Store is the part of the dataset store the handlers need.
type Store interface {
	Keys() ([]string, error)
	Store(ctx context.Context, name string, records dataset.Dataset) (datasetDb.Entry, error)
	Find(ctx context.Context, name string) (datasetDb.Entry, error)
	Delete(ctx context.Context, name string) error
}

// source names the training data of a request: inline records or a stored dataset.
type source struct {
	Dataset string          `json:"dataset"`
	Records dataset.Dataset `json:"records"`
}

func (s source) resolve(ctx context.Context, store Store) (dataset.Dataset, error) {
	if len(s.Records) > 0 && s.Dataset != "" {
		return nil, errs.InvalidArgument("dataset", s.Dataset, "either a stored dataset name or inline records, not both")
	}
	if len(s.Records) > 0 {
		return s.Records, nil
	}
	if s.Dataset == "" {
		return nil, errs.InvalidArgument("dataset", `""`, "a stored dataset name or inline records")
	}
	if store == nil {
		return nil, fmt.Errorf("%s: %w", s.Dataset, datasetDb.ErrNotFound)
	}
	entry, err := store.Find(ctx, s.Dataset)
	if err != nil {
		return nil, err
	}
	return entry.Records, nil
}

func (h *handler) checkRecords(ctx context.Context, w http.ResponseWriter, records dataset.Dataset) bool {
	if len(records) > h.cfg.MaxRecords {
		httputil.RespBadRequest(ctx, w, `{"error": "records is too large, max allowed len is %d"}`, h.cfg.MaxRecords)
		return false
	}
	return true
}

func respError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		httputil.RespBadRequest(ctx, w, `{"error": %q}`, err.Error())
	case errors.Is(err, datasetDb.ErrNotFound):
		httputil.RespNotFound(ctx, w, `{"error": %q}`, err.Error())
	default:
		httputil.RespInternalError(ctx, w, `{"error": "processing error, %v"}`, err)
	}
}

type handler struct {
	cfg     *Config
	store   Store
	metrics *metrics.Recorder
}

// intOr returns the value sent by the client, or def when the field was absent.
// An explicit zero is passed on so that validation rejects it.
func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func (h *handler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
}
