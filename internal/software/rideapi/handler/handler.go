package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"

	"ride-management/internal/domain/user"
	"ride-management/internal/general/jwt"
	"ride-management/internal/general/logger"
	"ride-management/internal/ports"
)

// Handler adapts HTTP requests to the auth and ride services.
type Handler struct {
	authSvc  ports.AuthService
	rideSvc  ports.RideService
	logger   *logger.Logger
	auth     *jwt.Manager
	validate *validator.Validate
}

// NewHandler wires an HTTP handler around the services.
func NewHandler(authSvc ports.AuthService, rideSvc ports.RideService, log *logger.Logger, auth *jwt.Manager) *Handler {
	return &Handler{
		authSvc:  authSvc,
		rideSvc:  rideSvc,
		logger:   log,
		auth:     auth,
		validate: validator.New(),
	}
}

// Routes builds the API router. The ride listing and the report endpoint are
// admin only; everything else under /rides needs any valid token.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)
		r.Get("/health", h.handleHealth)

		r.Group(func(r chi.Router) {
			r.Use(jwt.Middleware(h.auth))
			r.Post("/rides", h.handleCreateRide)
			r.Get("/rides/{ride_id}", h.handleGetRide)
			r.Put("/rides/{ride_id}", h.handleUpdateRide)
			r.Get("/rides/{ride_id}/events", h.handleListRideEvents)
		})

		r.Group(func(r chi.Router) {
			r.Use(jwt.Middleware(h.auth, user.RoleAdmin))
			r.Get("/rides", h.handleListRides)
			r.Get("/reports/trips-over-one-hour", h.handleReport)
		})
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// ----- helpers -----

// decodeJSON decodes a bounded request body strictly and runs the validator.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		return errors.New("Content-Type must be application/json")
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MiB
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}

	return h.validate.Struct(dst)
}

// actor builds the service-level caller identity from the verified claims.
func actor(r *http.Request) (ports.AuthContext, bool) {
	claims := jwt.RequireClaims(r)
	if claims == nil {
		return ports.AuthContext{}, false
	}
	return ports.AuthContext{UserID: claims.Subject, Role: claims.Role}, true
}

// jsonResponse encodes to a buffer first so status can be controlled on failure.
func (h *Handler) jsonResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	var buf []byte
	var err error

	if data != nil {
		buf, err = json.Marshal(data)
		if err != nil {
			h.logger.Error(ctx, "response_encode_failed", "Failed to encode response", err, nil)
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
			return
		}
	} else {
		buf = []byte("{}")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

// httpError sends a JSON error response with a message.
func (h *Handler) httpError(ctx context.Context, w http.ResponseWriter, status int, msg string, err error) {
	action := "request_failed"
	if status >= 500 {
		action = "http_internal_error"
	} else if status == http.StatusBadRequest {
		action = "validation_failed"
	}
	h.logger.Error(ctx, action, msg, err, nil)

	type errBody struct {
		Error string `json:"error"`
	}
	h.jsonResponse(ctx, w, status, errBody{Error: msg})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// ErrUnauthorized is a 403 and never downgraded to an empty success.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *ports.ValidationError
	var pgErr *pgconn.PgError

	switch {
	case errors.As(err, &verr):
		h.logger.Error(ctx, "validation_failed", "Request validation failed", err, nil)
		h.jsonResponse(ctx, w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, ports.ErrMissingParameter):
		h.httpError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, ports.ErrInvalidCredentials):
		h.httpError(ctx, w, http.StatusUnauthorized, err.Error(), err)
	case errors.Is(err, ports.ErrUnauthorized):
		h.httpError(ctx, w, http.StatusForbidden, err.Error(), err)
	case errors.Is(err, ports.ErrNotFound):
		h.httpError(ctx, w, http.StatusNotFound, "not found", err)
	case errors.Is(err, ports.ErrEmailTaken):
		h.httpError(ctx, w, http.StatusConflict, err.Error(), err)
	case errors.As(err, &pgErr):
		h.httpError(ctx, w, http.StatusInternalServerError, "database error", err)
	default:
		h.httpError(ctx, w, http.StatusInternalServerError, "internal error", err)
	}
}

// validationBody renders validator/v10 failures per field.
func (h *Handler) validationBody(ctx context.Context, w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = "failed on " + fe.Tag()
		}
		h.jsonResponse(ctx, w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": fields,
		})
		return
	}
	h.httpError(ctx, w, http.StatusBadRequest, err.Error(), err)
}

// withReqID reuses chi's request ID when present, otherwise generates one.
func (h *Handler) withReqID(r *http.Request) context.Context {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)
	if strings.TrimSpace(reqID) == "" {
		reqID = randID()
	}
	return logger.WithRequestID(ctx, reqID)
}

// randID generates a random 24-char hex string suitable for request IDs.
func randID() string {
	var b [12]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
