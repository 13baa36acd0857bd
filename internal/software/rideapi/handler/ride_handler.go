package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ride-management/internal/ports"
)

type createRideRequest struct {
	RiderID          string    `json:"rider_id" validate:"omitempty,uuid4"`
	DriverID         string    `json:"driver_id" validate:"required,uuid4"`
	StartLocation    string    `json:"start_location" validate:"required,max=255"`
	EndLocation      string    `json:"end_location" validate:"required,max=255"`
	PickupLatitude   float64   `json:"pickup_latitude" validate:"latitude"`
	PickupLongitude  float64   `json:"pickup_longitude" validate:"longitude"`
	DropoffLatitude  float64   `json:"dropoff_latitude" validate:"latitude"`
	DropoffLongitude float64   `json:"dropoff_longitude" validate:"longitude"`
	StartTime        time.Time `json:"start_time" validate:"required"`
}

// handleCreateRide handles POST /api/v1/rides. The rider defaults to the
// caller when omitted.
func (h *Handler) handleCreateRide(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r)

	act, ok := actor(r)
	if !ok {
		h.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	var req createRideRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.validationBody(ctx, w, err)
		return
	}

	view, err := h.rideSvc.CreateRide(ctx, act, ports.CreateRideInput{
		RiderID:          req.RiderID,
		DriverID:         req.DriverID,
		StartLocation:    req.StartLocation,
		EndLocation:      req.EndLocation,
		PickupLatitude:   req.PickupLatitude,
		PickupLongitude:  req.PickupLongitude,
		DropoffLatitude:  req.DropoffLatitude,
		DropoffLongitude: req.DropoffLongitude,
		StartTime:        req.StartTime,
	})
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	h.jsonResponse(ctx, w, http.StatusCreated, view)
}

// handleGetRide handles GET /api/v1/rides/{ride_id}.
func (h *Handler) handleGetRide(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r)

	act, ok := actor(r)
	if !ok {
		h.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	view, err := h.rideSvc.GetRide(ctx, act, chi.URLParam(r, "ride_id"))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	h.jsonResponse(ctx, w, http.StatusOK, view)
}

type updateRideRequest struct {
	DriverID         *string    `json:"driver_id" validate:"omitempty,uuid4"`
	Status           *string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed"`
	StartLocation    *string    `json:"start_location" validate:"omitempty,max=255"`
	EndLocation      *string    `json:"end_location" validate:"omitempty,max=255"`
	PickupLatitude   *float64   `json:"pickup_latitude" validate:"omitempty,latitude"`
	PickupLongitude  *float64   `json:"pickup_longitude" validate:"omitempty,longitude"`
	DropoffLatitude  *float64   `json:"dropoff_latitude" validate:"omitempty,latitude"`
	DropoffLongitude *float64   `json:"dropoff_longitude" validate:"omitempty,longitude"`
	StartTime        *time.Time `json:"start_time"`
}

// handleUpdateRide handles PUT /api/v1/rides/{ride_id}. Fields frozen by the
// current status come back in ignored_fields instead of failing the request.
func (h *Handler) handleUpdateRide(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r)

	act, ok := actor(r)
	if !ok {
		h.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	var req updateRideRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.validationBody(ctx, w, err)
		return
	}

	res, err := h.rideSvc.UpdateRide(ctx, act, chi.URLParam(r, "ride_id"), ports.UpdateRideInput{
		DriverID:         req.DriverID,
		Status:           req.Status,
		StartLocation:    req.StartLocation,
		EndLocation:      req.EndLocation,
		PickupLatitude:   req.PickupLatitude,
		PickupLongitude:  req.PickupLongitude,
		DropoffLatitude:  req.DropoffLatitude,
		DropoffLongitude: req.DropoffLongitude,
		StartTime:        req.StartTime,
	})
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	h.jsonResponse(ctx, w, http.StatusOK, res)
}

// handleListRides handles GET /api/v1/rides (admin only, enforced by the
// router). Query params: status, rider_email, order_by, latitude, longitude,
// page, page_size.
func (h *Handler) handleListRides(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r)

	act, ok := actor(r)
	if !ok {
		h.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	q := r.URL.Query()
	opts := ports.ListRidesOptions{
		Status:             q.Get("status"),
		RiderEmailContains: q.Get("rider_email"),
		OrderBy:            q.Get("order_by"),
		Page:               intQuery(q.Get("page")),
		PageSize:           intQuery(q.Get("page_size")),
	}

	if v := q.Get("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.httpError(ctx, w, http.StatusBadRequest, "latitude must be a number", err)
			return
		}
		opts.Latitude = &lat
	}
	if v := q.Get("longitude"); v != "" {
		lng, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.httpError(ctx, w, http.StatusBadRequest, "longitude must be a number", err)
			return
		}
		opts.Longitude = &lng
	}

	res, err := h.rideSvc.ListRides(ctx, act, opts)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	h.jsonResponse(ctx, w, http.StatusOK, res)
}

// handleListRideEvents handles GET /api/v1/rides/{ride_id}/events.
func (h *Handler) handleListRideEvents(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r)

	act, ok := actor(r)
	if !ok {
		h.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	events, err := h.rideSvc.ListRideEvents(ctx, act, chi.URLParam(r, "ride_id"))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	h.jsonResponse(ctx, w, http.StatusOK, map[string]any{"results": events})
}

func intQuery(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
