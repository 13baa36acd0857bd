package handler

import (
	"errors"
	"net/http"
)

// handleReport handles GET /api/v1/reports/trips-over-one-hour (admin only,
// enforced by the router and re-checked in the service).
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r)

	act, ok := actor(r)
	if !ok {
		h.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	rows, err := h.rideSvc.TripDurationReport(ctx, act)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	h.jsonResponse(ctx, w, http.StatusOK, map[string]any{"results": rows})
}
