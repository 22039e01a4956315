package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const readinessTimeout = 2 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	db          dbPinger
	redisClient *redis.Client
	versionInfo string
}

// NewHandler builds the service level handler. redisClient may be nil when redis is not configured.
func NewHandler(db dbPinger, redisClient *redis.Client, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		redisClient: redisClient,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
	mainRouter.HandleFunc("/health/ready", handler.handleReady).Methods("GET", "OPTIONS").Name("ready")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{"message": "FitPlan API is running"}, http.StatusOK)
}

// handleHealth is the liveness probe, it never touches the backing services.
func (handler *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, HealthResponse{Status: "healthy"}, http.StatusOK)
}

func (handler *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	resp := HealthResponse{
		Status: "healthy",
		Checks: map[string]string{},
	}

	resp.Checks["postgres"] = "ok"
	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("readiness: postgres ping: %s", err)
		resp.Checks["postgres"] = "unavailable"
		resp.Status = "unhealthy"
	}

	if handler.redisClient != nil {
		resp.Checks["redis"] = "ok"
		if err := handler.redisClient.Ping(ctx).Err(); err != nil {
			log.Errorf("readiness: redis ping: %s", err)
			resp.Checks["redis"] = "unavailable"
			resp.Status = "unhealthy"
		}
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	pkg.WriteJSON(w, resp, status)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
