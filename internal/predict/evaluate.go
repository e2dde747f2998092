package predict

import (
	"net/http"

	"github.com/robotomize/plinko/internal/evaluate"
	"github.com/robotomize/plinko/internal/httputil"
	"github.com/robotomize/plinko/internal/metrics"
)

type evaluateRequest struct {
	source
	TestSetSize *int   `json:"testSetSize"`
	K           *int   `json:"k"`
	Ks          []int  `json:"ks"`
	Seed        uint32 `json:"seed"`
}

// params returns the test set size and k of the request, falling back to cfg for absent fields.
func (req *evaluateRequest) params(cfg *Config) (int, int) {
	return intOr(req.TestSetSize, cfg.TestSetSize), intOr(req.K, cfg.DefaultK)
}

func (req *evaluateRequest) options(cfg *Config) []evaluate.Option {
	return []evaluate.Option{evaluate.WithSeed(req.Seed), evaluate.WithConcurrency(cfg.Concurrency)}
}

// NewEvaluateHandler reports the accuracy of a single train/test split.
func NewEvaluateHandler(cfg *Config, store Store, recorder *metrics.Recorder) (http.Handler, error) {
	if recorder == nil {
		recorder = metrics.New()
	}
	return &evaluateHandler{handler{cfg: cfg, store: store, metrics: recorder}}, nil
}

type evaluateHandler struct {
	handler
}

func (h *evaluateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if !httputil.Decode(ctx, w, r, maxBodyBytes, &req) {
		return
	}
	if !h.checkRecords(ctx, w, req.Records) {
		return
	}
	testSetSize, k := req.params(h.cfg)
	data, err := req.resolve(ctx, h.store)
	if err != nil {
		respError(ctx, w, err)
		return
	}

	report, err := evaluate.EvaluateReport(ctx, data, testSetSize, k, req.options(h.cfg)...)
	if err != nil {
		h.metrics.ObserveEvaluation(metrics.StatusError, 0)
		respError(ctx, w, err)
		return
	}
	h.metrics.ObserveEvaluation(metrics.StatusOK, report.Accuracy)

	httputil.RespJSON(ctx, w, http.StatusOK, report)
}

// NewSweepHandler evaluates several k over one split and names the best.
func NewSweepHandler(cfg *Config, store Store, recorder *metrics.Recorder) (http.Handler, error) {
	if recorder == nil {
		recorder = metrics.New()
	}
	return &sweepHandler{handler{cfg: cfg, store: store, metrics: recorder}}, nil
}

type sweepHandler struct {
	handler
}

func (h *sweepHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if !httputil.Decode(ctx, w, r, maxBodyBytes, &req) {
		return
	}
	if !h.checkRecords(ctx, w, req.Records) {
		return
	}
	testSetSize, _ := req.params(h.cfg)
	data, err := req.resolve(ctx, h.store)
	if err != nil {
		respError(ctx, w, err)
		return
	}

	result, err := evaluate.Sweep(ctx, data, testSetSize, req.Ks, req.options(h.cfg)...)
	if err != nil {
		h.metrics.ObserveEvaluation(metrics.StatusError, 0)
		respError(ctx, w, err)
		return
	}
	h.metrics.ObserveEvaluation(metrics.StatusOK, result.BestAccuracy)

	httputil.RespJSON(ctx, w, http.StatusOK, result)
}
