package predict

import (
	"fmt"
	"net/http"

	"github.com/robotomize/plinko/internal/httputil"
	"github.com/robotomize/plinko/internal/metrics"
	"github.com/robotomize/plinko/internal/predictor"
	"golang.org/x/sync/errgroup"
)

type predictRequest struct {
	source
	Queries []float64 `json:"queries"`
	K       *int      `json:"k"`
}

type predictResponse struct {
	Predictions []predictor.Conclusion `json:"predictions"`
}

// NewHandler serves box predictions for a batch of drop widths.
func NewHandler(cfg *Config, store Store, provideFn predictor.ProvideFn, recorder *metrics.Recorder) (http.Handler, error) {
	if provideFn == nil {
		return nil, fmt.Errorf("predictor provide function is not set")
	}
	if recorder == nil {
		recorder = metrics.New()
	}
	return &predictHandler{
		handler:   handler{cfg: cfg, store: store, metrics: recorder},
		provideFn: provideFn,
	}, nil
}

type predictHandler struct {
	handler
	provideFn predictor.ProvideFn
}

func (h *predictHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if !httputil.Decode(ctx, w, r, maxBodyBytes, &req) {
		return
	}
	if len(req.Queries) == 0 {
		httputil.RespBadRequest(ctx, w, `{"error": "queries must not be empty"}`)
		return
	}
	if len(req.Queries) > h.cfg.MaxQueries {
		httputil.RespBadRequest(ctx, w, `{"error": "queries is too large, max allowed len is %d"}`, h.cfg.MaxQueries)
		return
	}
	if !h.checkRecords(ctx, w, req.Records) {
		return
	}
	k := intOr(req.K, h.cfg.DefaultK)

	training, err := req.resolve(ctx, h.store)
	if err != nil {
		respError(ctx, w, err)
		return
	}
	p, err := h.provideFn(k)
	if err != nil {
		h.metrics.ObservePredictions(metrics.StatusError, len(req.Queries))
		respError(ctx, w, err)
		return
	}
	p.Build(training...)

	predictions := make([]predictor.Conclusion, len(req.Queries))
	errGrp, gctx := errgroup.WithContext(ctx)
	if h.cfg.Concurrency > 0 {
		errGrp.SetLimit(h.cfg.Concurrency)
	}
	for i, query := range req.Queries {
		i, query := i, query
		errGrp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := p.Predict(query)
			if err != nil {
				return fmt.Errorf("predict error: %w", err)
			}
			predictions[i] = *result
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		h.metrics.ObservePredictions(metrics.StatusError, len(req.Queries))
		respError(ctx, w, err)
		return
	}
	h.metrics.ObservePredictions(metrics.StatusOK, len(req.Queries))

	httputil.RespJSON(ctx, w, http.StatusOK, predictResponse{Predictions: predictions})
}
