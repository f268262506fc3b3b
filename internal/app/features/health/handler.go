package health

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger is the part of *mongo.Client the health check needs.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	DB      Pinger
	Storage string
	Mode    mediaurl.Mode
	Log     *zap.Logger
}

// NewHandler constructs a health Handler. storage names the active blob
// backend ("local" or "r2").
func NewHandler(client *mongo.Client, storage string, mode mediaurl.Mode, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      client,
		Storage: storage,
		Mode:    mode,
		Log:     logger,
	}
}

type mediaStatus struct {
	Storage     string `json:"storage"`
	DirectReads bool   `json:"direct_reads"`
	ForceProxy  bool   `json:"force_proxy"`
}

type healthResponse struct {
	Status   string      `json:"status"`
	Database string      `json:"database"`
	Media    mediaStatus `json:"media"`
	Message  string      `json:"message,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "media":{"storage":"r2",...} }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"<detail>"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
		Media: mediaStatus{
			Storage:     h.Storage,
			DirectReads: h.Mode.DirectReads,
			ForceProxy:  h.Mode.ForceProxyReads,
		},
	}

	w.Header().Set("Cache-Control", "no-store")
	if err := h.DB.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		uierrors.WriteJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, resp)
}
