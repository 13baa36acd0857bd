package webui

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ride-management/internal/domain/user"
	"ride-management/internal/general/jwt"
	"ride-management/internal/general/logger"
	"ride-management/internal/ports"
	"ride-management/internal/software/webui/render"
)

const authCookie = "auth_token"

// Handler serves the server-rendered UI on top of the same services as the
// API mode.
type Handler struct {
	authSvc  ports.AuthService
	rideSvc  ports.RideService
	logger   *logger.Logger
	auth     *jwt.Manager
	renderer *render.Renderer
	hub      *Hub
}

func NewHandler(
	authSvc ports.AuthService,
	rideSvc ports.RideService,
	log *logger.Logger,
	auth *jwt.Manager,
	renderer *render.Renderer,
	hub *Hub,
) *Handler {
	return &Handler{
		authSvc:  authSvc,
		rideSvc:  rideSvc,
		logger:   log,
		auth:     auth,
		renderer: renderer,
		hub:      hub,
	}
}

// Routes builds the UI router. Auth rides on the auth_token cookie so plain
// links and form posts work without client-side scripting.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/login", h.handleLoginPage)
	r.Post("/login", h.handleLoginSubmit)
	r.Get("/register", h.handleRegisterPage)
	r.Post("/register", h.handleRegisterSubmit)
	r.Get("/logout", h.handleLogout)
	r.Get("/ws/rides", h.handleWS)

	r.Group(func(r chi.Router) {
		r.Use(h.requireLogin)
		r.Get("/", h.handleHome)
		r.Get("/rides", h.handleRidesPage)
		r.Get("/rides/new", h.handleNewRidePage)
		r.Post("/rides", h.handleCreateRideSubmit)
		r.Get("/rides/{ride_id}", h.handleRideDetailPage)
		r.Get("/rides/{ride_id}/edit", h.handleEditRidePage)
		r.Post("/rides/{ride_id}/edit", h.handleEditRideSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.requireLogin)
		r.Use(jwt.Middleware(h.auth, user.RoleAdmin))
		r.Get("/reports/trips-over-one-hour", h.handleReportPage)
	})

	return r
}

// requireLogin redirects anonymous browsers to the login page instead of
// answering 401 like the API middleware does.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := jwt.FromRequest(r)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		claims, err := h.auth.ParseAndValidate(raw)
		if err != nil {
			http.SetCookie(w, expiredAuthCookie())
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(jwt.InjectClaims(r.Context(), claims)))
	})
}

// ----- page scaffolding -----

type viewerInfo struct {
	UserID  string
	Role    string
	IsAdmin bool
}

type basePage struct {
	Title  string
	Viewer viewerInfo
	Error  string
	Notice string
}

func (h *Handler) viewer(r *http.Request) (viewerInfo, ports.AuthContext) {
	claims := jwt.RequireClaims(r)
	if claims == nil {
		return viewerInfo{}, ports.AuthContext{}
	}
	return viewerInfo{
		UserID:  claims.Subject,
		Role:    string(claims.Role),
		IsAdmin: claims.Role.IsAdmin(),
	}, ports.AuthContext{UserID: claims.Subject, Role: claims.Role}
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, status int, name string, data any) {
	if err := h.renderer.Render(w, status, name, data); err != nil {
		h.logger.Error(ctx, "render_failed", "Failed to render template "+name, err, nil)
	}
}

type errorPage struct {
	basePage
	Message string
}

// renderServiceError shows service failures as a friendly page, keeping the
// same status mapping as the API mode.
func (h *Handler) renderServiceError(ctx context.Context, w http.ResponseWriter, viewer viewerInfo, err error) {
	var verr *ports.ValidationError

	status := http.StatusInternalServerError
	title := "Something went wrong"
	msg := "An unexpected error occurred. Try again."

	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		title = "Invalid input"
		msg = verr.Error()
	case errors.Is(err, ports.ErrMissingParameter):
		status = http.StatusBadRequest
		title = "Invalid input"
		msg = err.Error()
	case errors.Is(err, ports.ErrUnauthorized):
		status = http.StatusForbidden
		title = "Not allowed"
		msg = "You do not have access to this ride."
	case errors.Is(err, ports.ErrNotFound):
		status = http.StatusNotFound
		title = "Not found"
		msg = "That ride does not exist."
	}

	if status >= 500 {
		h.logger.Error(ctx, "page_failed", "Page request failed", err, nil)
	}

	h.render(ctx, w, status, "error_page", errorPage{
		basePage: basePage{Title: title, Viewer: viewer},
		Message:  msg,
	})
}

func (h *Handler) reqCtx(r *http.Request) context.Context {
	return logger.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
}

// ----- auth pages -----

type loginForm struct {
	Email string
}

type loginPage struct {
	basePage
	Form loginForm
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	page := loginPage{basePage: basePage{Title: "Log in"}}
	if r.URL.Query().Get("registered") == "1" {
		page.Notice = "Account created. Log in to continue."
	}
	h.render(h.reqCtx(r), w, http.StatusOK, "login", page)
}

func (h *Handler) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)

	if err := r.ParseForm(); err != nil {
		h.render(ctx, w, http.StatusBadRequest, "login", loginPage{
			basePage: basePage{Title: "Log in", Error: "Could not read the form."},
		})
		return
	}

	email := r.PostFormValue("email")
	res, err := h.authSvc.Login(ctx, ports.LoginInput{
		Email:    email,
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		msg := "Something went wrong. Try again."
		if errors.Is(err, ports.ErrInvalidCredentials) {
			msg = "Wrong email or password."
		}
		h.render(ctx, w, http.StatusUnauthorized, "login", loginPage{
			basePage: basePage{Title: "Log in", Error: msg},
			Form:     loginForm{Email: email},
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/rides", http.StatusSeeOther)
}

type registerForm struct {
	Username string
	Email    string
	Role     string
}

type registerPage struct {
	basePage
	Form registerForm
}

func (h *Handler) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(h.reqCtx(r), w, http.StatusOK, "register", registerPage{
		basePage: basePage{Title: "Register"},
		Form:     registerForm{Role: "rider"},
	})
}

func (h *Handler) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)

	if err := r.ParseForm(); err != nil {
		h.render(ctx, w, http.StatusBadRequest, "register", registerPage{
			basePage: basePage{Title: "Register", Error: "Could not read the form."},
		})
		return
	}

	form := registerForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Role:     r.PostFormValue("role"),
	}

	fail := func(status int, msg string) {
		h.render(ctx, w, status, "register", registerPage{
			basePage: basePage{Title: "Register", Error: msg},
			Form:     form,
		})
	}

	role, err := user.ParseRole(form.Role)
	if err != nil {
		fail(http.StatusBadRequest, "Pick a valid role.")
		return
	}

	_, err = h.authSvc.Register(ctx, ports.RegisterInput{
		Username: form.Username,
		Email:    form.Email,
		Password: r.PostFormValue("password"),
		Role:     role,
	})
	if err != nil {
		var verr *ports.ValidationError
		switch {
		case errors.Is(err, ports.ErrEmailTaken):
			fail(http.StatusConflict, "That email is already registered.")
		case errors.As(err, &verr):
			fail(http.StatusBadRequest, verr.Error())
		default:
			fail(http.StatusInternalServerError, "Something went wrong. Try again.")
		}
		return
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, expiredAuthCookie())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func expiredAuthCookie() *http.Cookie {
	return &http.Cookie{
		Name:     authCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/rides", http.StatusSeeOther)
}

// ----- ride pages -----

type ridesQuery struct {
	Status     string
	RiderEmail string
	OrderBy    string
	Latitude   string
	Longitude  string
}

type ridesPage struct {
	basePage
	Query        ridesQuery
	Result       ports.ListRidesResult
	ShowDistance bool
	HasNext      bool
	PrevURL      string
	NextURL      string
}

// handleRidesPage lists rides. Non-admin viewers are scoped to their own
// rides by the service.
func (h *Handler) handleRidesPage(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)
	viewer, actor := h.viewer(r)

	q := r.URL.Query()
	query := ridesQuery{
		Status:     q.Get("status"),
		RiderEmail: q.Get("rider_email"),
		OrderBy:    q.Get("order_by"),
		Latitude:   q.Get("latitude"),
		Longitude:  q.Get("longitude"),
	}

	opts := ports.ListRidesOptions{
		Status:             query.Status,
		RiderEmailContains: query.RiderEmail,
		OrderBy:            query.OrderBy,
		Page:               intOrZero(q.Get("page")),
		PageSize:           intOrZero(q.Get("page_size")),
	}
	if v, err := strconv.ParseFloat(query.Latitude, 64); err == nil {
		opts.Latitude = &v
	}
	if v, err := strconv.ParseFloat(query.Longitude, 64); err == nil {
		opts.Longitude = &v
	}

	res, err := h.rideSvc.ListRides(ctx, actor, opts)
	if err != nil {
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	h.render(ctx, w, http.StatusOK, "rides", ridesPage{
		basePage:     basePage{Title: "Rides", Viewer: viewer},
		Query:        query,
		Result:       res,
		ShowDistance: query.OrderBy == "distance",
		HasNext:      res.Page*res.PageSize < res.Count,
		PrevURL:      pageURL(q, res.Page-1),
		NextURL:      pageURL(q, res.Page+1),
	})
}

func pageURL(q url.Values, page int) string {
	out := url.Values{}
	for k, vs := range q {
		if k == "page" {
			continue
		}
		out[k] = vs
	}
	out.Set("page", strconv.Itoa(page))
	return "/rides?" + out.Encode()
}

func intOrZero(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

type rideDetailPage struct {
	basePage
	Ride    ports.RideView
	Events  []ports.EventView
	CanEdit bool
}

func (h *Handler) handleRideDetailPage(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)
	viewer, actor := h.viewer(r)
	rideID := chi.URLParam(r, "ride_id")

	view, err := h.rideSvc.GetRide(ctx, actor, rideID)
	if err != nil {
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	events, err := h.rideSvc.ListRideEvents(ctx, actor, rideID)
	if err != nil {
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	h.render(ctx, w, http.StatusOK, "ride_detail", rideDetailPage{
		basePage: basePage{Title: "Ride", Viewer: viewer},
		Ride:     view,
		Events:   events,
		CanEdit:  viewer.IsAdmin || viewer.UserID == view.DriverID,
	})
}

type rideForm struct {
	RiderID          string
	DriverID         string
	StartLocation    string
	EndLocation      string
	PickupLatitude   string
	PickupLongitude  string
	DropoffLatitude  string
	DropoffLongitude string
	StartTime        string
}

type rideFormPage struct {
	basePage
	Form    rideForm
	Drivers []user.User
}

func (h *Handler) handleNewRidePage(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)
	viewer, _ := h.viewer(r)

	drivers, err := h.rideSvc.ListAvailableDrivers(ctx)
	if err != nil {
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	h.render(ctx, w, http.StatusOK, "ride_form", rideFormPage{
		basePage: basePage{Title: "New ride", Viewer: viewer},
		Drivers:  drivers,
	})
}

func (h *Handler) handleCreateRideSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)
	viewer, actor := h.viewer(r)

	if err := r.ParseForm(); err != nil {
		h.renderServiceError(ctx, w, viewer, ports.NewValidationError("form", "could not read the form"))
		return
	}

	form := rideForm{
		RiderID:          r.PostFormValue("rider_id"),
		DriverID:         r.PostFormValue("driver_id"),
		StartLocation:    r.PostFormValue("start_location"),
		EndLocation:      r.PostFormValue("end_location"),
		PickupLatitude:   r.PostFormValue("pickup_latitude"),
		PickupLongitude:  r.PostFormValue("pickup_longitude"),
		DropoffLatitude:  r.PostFormValue("dropoff_latitude"),
		DropoffLongitude: r.PostFormValue("dropoff_longitude"),
		StartTime:        r.PostFormValue("start_time"),
	}

	fail := func(msg string) {
		drivers, derr := h.rideSvc.ListAvailableDrivers(ctx)
		if derr != nil {
			drivers = nil
		}
		h.render(ctx, w, http.StatusBadRequest, "ride_form", rideFormPage{
			basePage: basePage{Title: "New ride", Viewer: viewer, Error: msg},
			Form:     form,
			Drivers:  drivers,
		})
	}

	in := ports.CreateRideInput{
		RiderID:       form.RiderID,
		DriverID:      form.DriverID,
		StartLocation: form.StartLocation,
		EndLocation:   form.EndLocation,
	}

	var parseErr bool
	in.PickupLatitude, parseErr = parseCoord(form.PickupLatitude, parseErr)
	in.PickupLongitude, parseErr = parseCoord(form.PickupLongitude, parseErr)
	in.DropoffLatitude, parseErr = parseCoord(form.DropoffLatitude, parseErr)
	in.DropoffLongitude, parseErr = parseCoord(form.DropoffLongitude, parseErr)
	if parseErr {
		fail("Coordinates must be numbers.")
		return
	}

	start, err := parseLocalTime(form.StartTime)
	if err != nil {
		fail("Pickup time is not a valid timestamp.")
		return
	}
	in.StartTime = start

	view, err := h.rideSvc.CreateRide(ctx, actor, in)
	if err != nil {
		var verr *ports.ValidationError
		if errors.As(err, &verr) {
			fail(verr.Error())
			return
		}
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	http.Redirect(w, r, "/rides/"+view.ID, http.StatusSeeOther)
}

func parseCoord(v string, failed bool) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, true
	}
	return f, failed
}

// parseLocalTime accepts the datetime-local format and RFC 3339. Values are
// treated as UTC.
func parseLocalTime(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04", v); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.RFC3339, v)
}

type rideEditPage struct {
	basePage
	Ride    ports.RideView
	Drivers []user.User
	Ignored []string
}

func (h *Handler) handleEditRidePage(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)
	viewer, actor := h.viewer(r)

	view, err := h.rideSvc.GetRide(ctx, actor, chi.URLParam(r, "ride_id"))
	if err != nil {
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	if !viewer.IsAdmin && viewer.UserID != view.DriverID {
		h.renderServiceError(ctx, w, viewer, ports.ErrUnauthorized)
		return
	}

	drivers, err := h.rideSvc.ListAvailableDrivers(ctx)
	if err != nil {
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	h.render(ctx, w, http.StatusOK, "ride_edit", rideEditPage{
		basePage: basePage{Title: "Edit ride", Viewer: viewer},
		Ride:     view,
		Drivers:  drivers,
	})
}

func (h *Handler) handleEditRideSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)
	viewer, actor := h.viewer(r)
	rideID := chi.URLParam(r, "ride_id")

	if err := r.ParseForm(); err != nil {
		h.renderServiceError(ctx, w, viewer, ports.NewValidationError("form", "could not read the form"))
		return
	}

	in := ports.UpdateRideInput{}
	if v := r.PostFormValue("status"); v != "" {
		in.Status = &v
	}
	if v := r.PostFormValue("driver_id"); v != "" {
		in.DriverID = &v
	}
	if v := r.PostFormValue("start_location"); v != "" {
		in.StartLocation = &v
	}
	if v := r.PostFormValue("end_location"); v != "" {
		in.EndLocation = &v
	}

	var parseErr bool
	in.PickupLatitude, parseErr = optCoord(r.PostFormValue("pickup_latitude"), parseErr)
	in.PickupLongitude, parseErr = optCoord(r.PostFormValue("pickup_longitude"), parseErr)
	in.DropoffLatitude, parseErr = optCoord(r.PostFormValue("dropoff_latitude"), parseErr)
	in.DropoffLongitude, parseErr = optCoord(r.PostFormValue("dropoff_longitude"), parseErr)
	if parseErr {
		h.renderServiceError(ctx, w, viewer, ports.NewValidationError("coordinates", "must be numbers"))
		return
	}

	res, err := h.rideSvc.UpdateRide(ctx, actor, rideID, in)
	if err != nil {
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	drivers, derr := h.rideSvc.ListAvailableDrivers(ctx)
	if derr != nil {
		drivers = nil
	}

	h.render(ctx, w, http.StatusOK, "ride_edit", rideEditPage{
		basePage: basePage{Title: "Edit ride", Viewer: viewer, Notice: "Saved."},
		Ride:     res.Ride,
		Drivers:  drivers,
		Ignored:  res.IgnoredFields,
	})
}

// optCoord returns a pointer only when the field was submitted non-empty.
func optCoord(v string, failed bool) (*float64, bool) {
	if v == "" {
		return nil, failed
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, true
	}
	return &f, failed
}

// ----- report page -----

type reportPage struct {
	basePage
	Rows []ports.TripDurationRow
}

func (h *Handler) handleReportPage(w http.ResponseWriter, r *http.Request) {
	ctx := h.reqCtx(r)
	viewer, actor := h.viewer(r)

	rows, err := h.rideSvc.TripDurationReport(ctx, actor)
	if err != nil {
		h.renderServiceError(ctx, w, viewer, err)
		return
	}

	h.render(ctx, w, http.StatusOK, "report", reportPage{
		basePage: basePage{Title: "Reports", Viewer: viewer},
		Rows:     rows,
	})
}
