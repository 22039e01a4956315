package plans

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// dateRoutePattern keeps "current" and other words from matching a date route variable.
const dateRoutePattern = `\d{4}-\d{2}-\d{2}`

type planService interface {
	GetPlan(ctx context.Context, weekStart Date) (*Plan, error)
	CreatePlan(ctx context.Context, input PlanInput) (*Plan, error)
	UpdatePlan(ctx context.Context, weekStart Date, input PlanInput) (*Plan, error)
	DeletePlan(ctx context.Context, weekStart Date) error
	GetDay(ctx context.Context, date Date) (*Day, error)
	SetDayCompleted(ctx context.Context, date Date, completed bool) (*Day, error)
	Stats(ctx context.Context, weekStart Date) (*Stats, error)
	PreviewTemplate(ctx context.Context, weekStart Date) (*TemplatePreview, error)
	ApplyTemplate(ctx context.Context, preview TemplatePreview) (*Plan, error)
}

type ApplyTemplateResponse struct {
	Message string `json:"message"`
	PlanID  int    `json:"plan_id"`
}

type DeletePlanResponse struct {
	Message   string `json:"message"`
	WeekStart Date   `json:"week_start"`
}

type Handler struct {
	service        planService
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(service planService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// WithClock replaces the clock used to resolve the current week.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// SetupRoutes registers the plan API on r. writeLimiter, if not nil, wraps the
// routes that create plans.
func (h *Handler) SetupRoutes(r *mux.Router, writeLimiter mux.MiddlewareFunc) {
	limited := func(next http.HandlerFunc) http.Handler {
		if writeLimiter == nil {
			return next
		}
		return writeLimiter(next)
	}

	weekVar := "{week_start:" + dateRoutePattern + "}"
	dateVar := "{date:" + dateRoutePattern + "}"

	// the web client calls the collection style paths with a trailing slash
	withSlash := func(path string, handler http.Handler, method, name string) {
		for _, p := range []string{path, path + "/"} {
			r.Handle(p, handler).Methods(method, "OPTIONS").Name(name)
		}
	}

	withSlash("/plans", limited(h.HandleCreatePlan), "POST", "create-plan")
	withSlash("/plans/current", http.HandlerFunc(h.HandleGetCurrentPlan), "GET", "get-current-plan")
	r.HandleFunc("/plans/"+weekVar, h.HandleGetPlan).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/"+weekVar, h.HandleUpdatePlan).Methods("PUT", "OPTIONS").Name("update-plan")
	r.HandleFunc("/plans/"+weekVar, h.HandleDeletePlan).Methods("DELETE", "OPTIONS").Name("delete-plan")
	r.HandleFunc("/plans/"+weekVar+"/export", h.HandleExportPlan).Methods("GET", "OPTIONS").Name("export-plan")

	r.HandleFunc("/days/"+dateVar, h.HandleGetDay).Methods("GET", "OPTIONS").Name("get-day")
	r.HandleFunc("/days/"+dateVar+"/completed", h.HandleSetDayCompleted).Methods("PATCH", "OPTIONS").Name("set-day-completed")

	withSlash("/stats/current", http.HandlerFunc(h.HandleGetCurrentStats), "GET", "get-current-stats")
	r.HandleFunc("/stats/"+weekVar, h.HandleGetStats).Methods("GET", "OPTIONS").Name("get-stats")

	r.HandleFunc("/template/preview/"+weekVar, h.HandlePreviewTemplate).Methods("GET", "OPTIONS").Name("preview-template")
	withSlash("/template/apply", limited(h.HandleApplyTemplate), "POST", "apply-template")
}

func (h *Handler) currentWeekStart() Date {
	return WeekStartOf(h.now())
}

func (h *Handler) HandleCreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
	defer span.End()

	var input PlanInput
	if !decodeJSONBody(w, r, &input) {
		return
	}

	plan, err := h.service.CreatePlan(ctx, input)
	if err != nil {
		writeServiceError(w, "create plan", err)
		return
	}

	h.metricsManager.CounterPlansCreated.Inc()
	log.Debugf("created plan %d for week %s", plan.ID, plan.WeekStart)
	pkg.WriteJSON(w, plan, http.StatusCreated)
}

func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	weekStart, ok := dateFromPath(w, r, "week_start")
	if !ok {
		return
	}
	h.writePlan(ctx, w, weekStart)
}

func (h *Handler) HandleGetCurrentPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get_current")
	defer span.End()

	h.writePlan(ctx, w, h.currentWeekStart())
}

func (h *Handler) writePlan(ctx context.Context, w http.ResponseWriter, weekStart Date) {
	plan, err := h.service.GetPlan(ctx, weekStart)
	if err != nil {
		writeServiceError(w, "get plan", err)
		return
	}
	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	weekStart, ok := dateFromPath(w, r, "week_start")
	if !ok {
		return
	}

	var input PlanInput
	if !decodeJSONBody(w, r, &input) {
		return
	}

	plan, err := h.service.UpdatePlan(ctx, weekStart, input)
	if err != nil {
		writeServiceError(w, "update plan", err)
		return
	}

	h.metricsManager.CounterPlansUpdated.Inc()
	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	weekStart, ok := dateFromPath(w, r, "week_start")
	if !ok {
		return
	}

	if err := h.service.DeletePlan(ctx, weekStart); err != nil {
		writeServiceError(w, "delete plan", err)
		return
	}

	h.metricsManager.CounterPlansDeleted.Inc()
	log.Printf("plan for week %s deleted", weekStart)
	pkg.WriteJSON(w, DeletePlanResponse{
		Message:   "plan deleted",
		WeekStart: weekStart,
	}, http.StatusOK)
}

func (h *Handler) HandleExportPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.export")
	defer span.End()

	weekStart, ok := dateFromPath(w, r, "week_start")
	if !ok {
		return
	}

	plan, err := h.service.GetPlan(ctx, weekStart)
	if err != nil {
		writeServiceError(w, "export plan", err)
		return
	}

	workbook, err := ExportPlan(plan, CalculateStats(plan))
	if err != nil {
		writeServiceError(w, "export plan", err)
		return
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			log.Errorf("export plan %s, close workbook: %s", weekStart, err)
		}
	}()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		writeServiceError(w, "export plan", err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="plan-%s.xlsx"`, weekStart))
	pkg.WriteResponseBytes(w, pkg.ContentType.XLSX, buf.Bytes(), http.StatusOK)
}

func (h *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get_day")
	defer span.End()

	date, ok := dateFromPath(w, r, "date")
	if !ok {
		return
	}

	day, err := h.service.GetDay(ctx, date)
	if err != nil {
		writeServiceError(w, "get day", err)
		return
	}
	pkg.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) HandleSetDayCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.set_day_completed")
	defer span.End()

	date, ok := dateFromPath(w, r, "date")
	if !ok {
		return
	}

	completedParam := r.URL.Query().Get("completed")
	if completedParam == "" {
		pkg.WriteJSONError(w, "query parameter completed is required", http.StatusUnprocessableEntity)
		return
	}
	completed, err := strconv.ParseBool(completedParam)
	if err != nil {
		pkg.WriteJSONError(w, "query parameter completed must be a boolean", http.StatusUnprocessableEntity)
		return
	}

	day, err := h.service.SetDayCompleted(ctx, date, completed)
	if err != nil {
		writeServiceError(w, "set day completed", err)
		return
	}

	h.metricsManager.CounterDayCompletion.WithLabelValues(strconv.FormatBool(completed)).Inc()
	pkg.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.stats")
	defer span.End()

	weekStart, ok := dateFromPath(w, r, "week_start")
	if !ok {
		return
	}
	h.writeStats(ctx, w, weekStart)
}

func (h *Handler) HandleGetCurrentStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.stats_current")
	defer span.End()

	h.writeStats(ctx, w, h.currentWeekStart())
}

func (h *Handler) writeStats(ctx context.Context, w http.ResponseWriter, weekStart Date) {
	stats, err := h.service.Stats(ctx, weekStart)
	if err != nil {
		writeServiceError(w, "get stats", err)
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) HandlePreviewTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.template_preview")
	defer span.End()

	weekStart, ok := dateFromPath(w, r, "week_start")
	if !ok {
		return
	}

	preview, err := h.service.PreviewTemplate(ctx, weekStart)
	if err != nil {
		writeServiceError(w, "preview template", err)
		return
	}

	h.metricsManager.CounterTemplatesPreviewed.Inc()
	pkg.WriteJSON(w, preview, http.StatusOK)
}

func (h *Handler) HandleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.template_apply")
	defer span.End()

	var preview TemplatePreview
	if !decodeJSONBody(w, r, &preview) {
		return
	}

	plan, err := h.service.ApplyTemplate(ctx, preview)
	if err != nil {
		writeServiceError(w, "apply template", err)
		return
	}

	h.metricsManager.CounterTemplatesApplied.Inc()
	log.Printf("template applied, plan %d created for week %s", plan.ID, plan.WeekStart)
	pkg.WriteJSON(w, ApplyTemplateResponse{
		Message: "template applied",
		PlanID:  plan.ID,
	}, http.StatusCreated)
}

func dateFromPath(w http.ResponseWriter, r *http.Request, name string) (Date, bool) {
	date, err := ParseDate(mux.Vars(r)[name])
	if err != nil {
		pkg.WriteJSONError(w, fmt.Sprintf("invalid %s: %s", name, err), http.StatusUnprocessableEntity)
		return Date{}, false
	}
	return date, true
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Debugf("decode request body: %s", err)
		pkg.WriteJSONError(w, "malformed json body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps the package errors to HTTP statuses. Anything unexpected
// is logged and reported without details.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		pkg.WriteJSONError(w, validationErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrPlanNotFound):
		pkg.WriteJSONError(w, ErrPlanNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDayNotFound):
		pkg.WriteJSONError(w, ErrDayNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, ErrPlanExists):
		pkg.WriteJSONError(w, ErrPlanExists.Error(), http.StatusConflict)
	case errors.Is(err, ErrIntegrityViolation):
		log.Warnf("%s: %s", op, err)
		pkg.WriteJSONError(w, "request conflicts with stored data", http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
