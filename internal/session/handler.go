package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flick2split/backend/internal/bill"
	"github.com/flick2split/backend/pkg/response"
)

// Handler handles HTTP requests for splitting sessions
type Handler struct {
	service *Service
	reports http.Handler
}

// NewHandler creates a new session handler. The report handler is mounted
// under each session's report path; pass nil to disable report routes.
func NewHandler(service *Service, reports http.Handler) *Handler {
	return &Handler{service: service, reports: reports}
}

// Routes returns the router for session endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{sessionID}", h.Get)
	r.Delete("/{sessionID}", h.Delete)
	r.Post("/{sessionID}/guests", h.BeginGuest)
	r.Post("/{sessionID}/selection", h.ToggleSelect)
	r.Post("/{sessionID}/splits", h.Split)
	r.Post("/{sessionID}/confirm", h.Confirm)
	if h.reports != nil {
		r.Mount("/{sessionID}/report", h.reports)
	}

	return r
}

// Create handles POST /sessions
// @Summary      Open a splitting session
// @Description  Creates an in-memory session from a confirmed bill and expands its items into the selectable unit pool
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        bill  body  bill.BillRequest  true  "Confirmed bill"
// @Success      201  {object}  SessionResponse
// @Failure      400  {object}  response.APIResponse
// @Router       /sessions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req bill.BillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	sess := h.service.Create(&req)
	response.JSON(w, http.StatusCreated, sess.Snapshot().ToResponse())
}

// Get handles GET /sessions/{sessionID}
// @Summary      Get session state
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  response.APIResponse
// @Router       /sessions/{sessionID} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, snap.ToResponse())
}

// Delete handles DELETE /sessions/{sessionID}
// @Summary      Discard a session
// @Tags         sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  response.APIResponse
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(chi.URLParam(r, "sessionID")); err != nil {
		response.NotFound(w, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BeginGuest handles POST /sessions/{sessionID}/guests
// @Summary      Begin a guest
// @Description  Starts the select-items cycle for a named guest; names are unique per session, case-insensitively
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string             true  "Session ID"
// @Param        guest      body  BeginGuestRequest  true  "Guest name"
// @Success      200  {object}  SessionResponse
// @Failure      400  {object}  response.APIResponse
// @Failure      409  {object}  response.APIResponse
// @Router       /sessions/{sessionID}/guests [post]
func (h *Handler) BeginGuest(w http.ResponseWriter, r *http.Request) {
	var req BeginGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	snap, err := h.service.BeginGuest(chi.URLParam(r, "sessionID"), req.Name)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, snap.ToResponse())
}

// ToggleSelect handles POST /sessions/{sessionID}/selection
// @Summary      Toggle an item selection
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string         true  "Session ID"
// @Param        unit       body  ToggleRequest  true  "Unit to toggle"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  response.APIResponse
// @Failure      409  {object}  response.APIResponse
// @Router       /sessions/{sessionID}/selection [post]
func (h *Handler) ToggleSelect(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	_, snap, err := h.service.ToggleSelect(chi.URLParam(r, "sessionID"), req.UnitID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, snap.ToResponse())
}

// Split handles POST /sessions/{sessionID}/splits
// @Summary      Split an item
// @Description  Replaces one unit with N equal-priced fragments that can be assigned to different guests
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string        true  "Session ID"
// @Param        split      body  SplitRequest  true  "Unit and way count"
// @Success      200  {object}  SessionResponse
// @Failure      400  {object}  response.APIResponse
// @Failure      404  {object}  response.APIResponse
// @Failure      409  {object}  response.APIResponse
// @Router       /sessions/{sessionID}/splits [post]
func (h *Handler) Split(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	ways, ok := req.ParseWays()
	if !ok {
		response.BadRequest(w, ErrInvalidSplitCount.Error())
		return
	}

	snap, err := h.service.Split(chi.URLParam(r, "sessionID"), req.UnitID, ways)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, snap.ToResponse())
}

// Confirm handles POST /sessions/{sessionID}/confirm
// @Summary      Confirm the current guest's items
// @Description  Settles the guest's subtotal with proportional tax and tip, removes their units from the pool
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  ConfirmResponse
// @Failure      400  {object}  response.APIResponse
// @Failure      409  {object}  response.APIResponse
// @Router       /sessions/{sessionID}/confirm [post]
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	record, snap, err := h.service.Confirm(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, ConfirmResponse{
		Guest:   record.ToResponse(),
		Session: snap.ToResponse(),
	})
}

// ConfirmResponse returns the settled guest together with the updated session.
type ConfirmResponse struct {
	Guest   GuestResponse   `json:"guest"`
	Session SessionResponse `json:"session"`
}

// writeLedgerError maps ledger errors onto HTTP statuses: unknown resources
// to 404, user-correctable validation to 400, state-machine misuse to 409.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrUnitNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrEmptyName), errors.Is(err, ErrInvalidSplitCount), errors.Is(err, ErrNoItemsSelected):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrDuplicateName), errors.Is(err, ErrGuestInProgress),
		errors.Is(err, ErrNoGuestInProgress), errors.Is(err, ErrAllAssigned),
		errors.Is(err, ErrUnitNotSplittable):
		response.Conflict(w, err.Error())
	default:
		response.InternalError(w, "Unexpected error")
	}
}
