package split

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flick2split/backend/pkg/response"
)

// Handler handles HTTP requests for the even-split calculator
type Handler struct{}

// NewHandler creates a new even-split handler
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns the router for even-split endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Calculate)

	return r
}

// Calculate handles POST /even-split
// @Summary      Split a bill evenly
// @Description  Returns the per-person share of subtotal + tax + tip for N people, bypassing item assignment
// @Tags         even-split
// @Accept       json
// @Produce      json
// @Param        bill  body  EvenSplitRequest  true  "Bill figures"
// @Success      200  {object}  EvenSplitResponse
// @Failure      400  {object}  response.APIResponse
// @Router       /even-split [post]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req EvenSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	response.JSON(w, http.StatusOK, req.Calculate().ToResponse(req.Currency))
}
