package predict

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/robotomize/plinko/internal/dataset"
	"github.com/robotomize/plinko/internal/httputil"
)

type storeRequest struct {
	Name    string          `json:"name"`
	Records dataset.Dataset `json:"records"`
}

type listResponse struct {
	Datasets []string `json:"datasets"`
}

type summaryResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"createdAt"`
	Records   int         `json:"records"`
	Labels    map[int]int `json:"labels"`
}

// NewDatasetsHandler lists stored datasets on GET, summarizes one on GET ?name=,
// stores one on POST and removes one on DELETE ?name=.
func NewDatasetsHandler(cfg *Config, store Store) (http.Handler, error) {
	return &datasetsHandler{handler{cfg: cfg, store: store}}, nil
}

type datasetsHandler struct {
	handler
}

func (h *datasetsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if h.store == nil {
		httputil.RespInternalError(ctx, w, `{"error": "dataset store is not configured"}`)
		return
	}

	name := r.URL.Query().Get("name")
	switch {
	case r.Method == http.MethodGet && name != "":
		entry, err := h.store.Find(ctx, name)
		if err != nil {
			respError(ctx, w, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, summaryResponse{
			ID:        entry.ID,
			Name:      entry.Name,
			CreatedAt: entry.CreatedAt,
			Records:   entry.Records.Len(),
			Labels:    entry.Records.Labels(),
		})
		return
	case r.Method == http.MethodDelete:
		if name == "" {
			httputil.RespBadRequest(ctx, w, `{"error": "name must not be empty"}`)
			return
		}
		if err := h.store.Delete(ctx, name); err != nil {
			respError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	case r.Method == http.MethodGet:
		keys, err := h.store.Keys()
		if err != nil {
			respError(ctx, w, err)
			return
		}
		if keys == nil {
			keys = []string{}
		}
		httputil.RespJSON(ctx, w, http.StatusOK, listResponse{Datasets: keys})
		return
	}

	var req storeRequest
	if !httputil.Decode(ctx, w, r, maxBodyBytes, &req) {
		return
	}
	if req.Name == "" {
		httputil.RespBadRequest(ctx, w, `{"error": "name must not be empty"}`)
		return
	}
	if len(req.Records) == 0 {
		httputil.RespBadRequest(ctx, w, `{"error": "records must not be empty"}`)
		return
	}
	if !h.checkRecords(ctx, w, req.Records) {
		return
	}
	entry, err := h.store.Store(ctx, req.Name, req.Records)
	if err != nil {
		respError(ctx, w, err)
		return
	}

	httputil.RespJSON(ctx, w, http.StatusCreated, entry)
}
