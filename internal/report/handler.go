package report

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flick2split/backend/internal/session"
	"github.com/flick2split/backend/pkg/response"
)

// Handler handles HTTP requests for settlement reports. It is mounted under
// the session router, so the sessionID URL param comes from the parent route.
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Get("/message", h.Message)

	return r
}

// Get handles GET /sessions/{sessionID}/report
// @Summary      Get the settlement report
// @Description  Per-guest totals against the original bill, flagged partial while units remain unassigned. Pass ?currency= for a display-only conversion.
// @Tags         reports
// @Produce      json
// @Param        sessionID  path   string  true   "Session ID"
// @Param        currency   query  string  false  "Target display currency code"
// @Success      200  {object}  ReportResponse
// @Failure      404  {object}  response.APIResponse
// @Router       /sessions/{sessionID}/report [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.Build(r.Context(), chi.URLParam(r, "sessionID"), r.URL.Query().Get("currency"))
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build report")
		return
	}

	response.JSON(w, http.StatusOK, rep.ToResponse())
}

// Message handles GET /sessions/{sessionID}/report/message
// @Summary      Get the shareable summary text
// @Tags         reports
// @Produce      json
// @Param        sessionID  path   string  true   "Session ID"
// @Param        currency   query  string  false  "Target display currency code"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  response.APIResponse
// @Router       /sessions/{sessionID}/report/message [get]
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.BuildMessage(r.Context(), chi.URLParam(r, "sessionID"), r.URL.Query().Get("currency"))
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build share message")
		return
	}

	response.JSON(w, http.StatusOK, MessageResponse{Message: msg})
}
