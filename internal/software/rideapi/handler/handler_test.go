package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"ride-management/internal/domain/user"
	"ride-management/internal/general/jwt"
	"ride-management/internal/general/logger"
	"ride-management/internal/ports"
	"ride-management/internal/software/rideapi/handler"
	mock_service "ride-management/internal/software/rideapi/service/mocks"
)

const (
	testDriverID = "a81bc81b-dead-4e5d-abff-90865d1e13b1"
	testRideID   = "0f8fad5b-d9cb-469f-a165-70867728950e"
)

type testEnv struct {
	authSvc *mock_service.MockAuthService
	rideSvc *mock_service.MockRideService
	tokens  *jwt.Manager
	router  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	authSvc := mock_service.NewMockAuthService(ctrl)
	rideSvc := mock_service.NewMockRideService(ctrl)
	tokens := jwt.NewManager("handler-test-secret", time.Hour)
	h := handler.NewHandler(authSvc, rideSvc, logger.New("api-service-test"), tokens)

	return &testEnv{
		authSvc: authSvc,
		rideSvc: rideSvc,
		tokens:  tokens,
		router:  h.Routes(),
	}
}

func (e *testEnv) tokenFor(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	tkn, _, err := e.tokens.IssueUserToken(userID, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tkn
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestRegister_CreatesUser(t *testing.T) {
	env := newTestEnv(t)

	env.authSvc.EXPECT().
		Register(gomock.Any(), ports.RegisterInput{
			Username: "ann",
			Email:    "ann@rides.test",
			Password: "supersecret",
			Role:     user.RoleRider,
		}).
		Return(ports.RegisterResult{UserID: "user-1", Username: "ann", Email: "ann@rides.test", Role: "rider"}, nil)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/register", "",
		`{"username":"ann","email":"ann@rides.test","password":"supersecret","role":"rider"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}

	var res ports.RegisterResult
	decodeBody(t, rec, &res)
	if res.UserID != "user-1" || res.Role != "rider" {
		t.Fatalf("unexpected body: %+v", res)
	}
}

func TestRegister_RejectsBadPayload(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/register", "",
		`{"username":"a","email":"not-an-email","password":"short","role":"rider"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &body)
	for _, field := range []string{"username", "email", "password"} {
		if _, ok := body.Fields[field]; !ok {
			t.Errorf("fields missing %q: %v", field, body.Fields)
		}
	}
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	env := newTestEnv(t)

	env.authSvc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(ports.RegisterResult{}, ports.ErrEmailTaken)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/register", "",
		`{"username":"ann","email":"ann@rides.test","password":"supersecret","role":"rider"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestLogin_BadCredentialsIsUnauthorized(t *testing.T) {
	env := newTestEnv(t)

	env.authSvc.EXPECT().
		Login(gomock.Any(), ports.LoginInput{Email: "ann@rides.test", Password: "wrongwrong"}).
		Return(ports.LoginResult{}, ports.ErrInvalidCredentials)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"ann@rides.test","password":"wrongwrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRides_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/rides/"+testRideID, "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestListRidesAndReport_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	riderToken := env.tokenFor(t, "rider-1", user.RoleRider)

	for _, path := range []string{"/api/v1/rides", "/api/v1/reports/trips-over-one-hour"} {
		rec := env.do(t, http.MethodGet, path, riderToken, "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("GET %s with rider token: status = %d, want 403", path, rec.Code)
		}
	}
}

func TestCreateRide_PassesActorFromToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "rider-1", user.RoleRider)

	env.rideSvc.EXPECT().
		CreateRide(gomock.Any(), ports.AuthContext{UserID: "rider-1", Role: user.RoleRider}, gomock.Any()).
		DoAndReturn(func(_ any, _ ports.AuthContext, in ports.CreateRideInput) (ports.RideView, error) {
			if in.DriverID != testDriverID {
				t.Errorf("DriverID = %q", in.DriverID)
			}
			if in.StartLocation != "Market St" {
				t.Errorf("StartLocation = %q", in.StartLocation)
			}
			return ports.RideView{ID: testRideID, Status: "scheduled"}, nil
		})

	rec := env.do(t, http.MethodPost, "/api/v1/rides", token,
		`{"driver_id":"`+testDriverID+`","start_location":"Market St","end_location":"Broadway",`+
			`"pickup_latitude":37.7749,"pickup_longitude":-122.4194,`+
			`"dropoff_latitude":37.8044,"dropoff_longitude":-122.2712,`+
			`"start_time":"2026-03-01T09:00:00Z"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}

	var view ports.RideView
	decodeBody(t, rec, &view)
	if view.ID != testRideID {
		t.Fatalf("ride id = %q", view.ID)
	}
}

func TestCreateRide_UnknownFieldRejected(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "rider-1", user.RoleRider)

	rec := env.do(t, http.MethodPost, "/api/v1/rides", token, `{"surprise":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetRide_ErrorMapping(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "rider-1", user.RoleRider)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ports.ErrNotFound, http.StatusNotFound},
		{"forbidden", ports.ErrUnauthorized, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env.rideSvc.EXPECT().
				GetRide(gomock.Any(), gomock.Any(), testRideID).
				Return(ports.RideView{}, tc.err)

			rec := env.do(t, http.MethodGet, "/api/v1/rides/"+testRideID, token, "")
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestUpdateRide_ReturnsIgnoredFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "driver-1", user.RoleDriver)

	env.rideSvc.EXPECT().
		UpdateRide(gomock.Any(), ports.AuthContext{UserID: "driver-1", Role: user.RoleDriver}, testRideID, gomock.Any()).
		DoAndReturn(func(_ any, _ ports.AuthContext, _ string, in ports.UpdateRideInput) (ports.UpdateRideResult, error) {
			if in.Status == nil || *in.Status != "in_progress" {
				t.Errorf("Status = %v", in.Status)
			}
			if in.DriverID == nil || *in.DriverID != testDriverID {
				t.Errorf("DriverID = %v", in.DriverID)
			}
			return ports.UpdateRideResult{
				Ride:          ports.RideView{ID: testRideID, Status: "in_progress"},
				IgnoredFields: []string{"driver_id"},
			}, nil
		})

	rec := env.do(t, http.MethodPut, "/api/v1/rides/"+testRideID, token,
		`{"status":"in_progress","driver_id":"`+testDriverID+`"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var res ports.UpdateRideResult
	decodeBody(t, rec, &res)
	if len(res.IgnoredFields) != 1 || res.IgnoredFields[0] != "driver_id" {
		t.Fatalf("ignored fields = %v", res.IgnoredFields)
	}
}

func TestUpdateRide_ValidationErrorCarriesFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin-1", user.RoleAdmin)

	env.rideSvc.EXPECT().
		UpdateRide(gomock.Any(), gomock.Any(), testRideID, gomock.Any()).
		Return(ports.UpdateRideResult{}, ports.NewValidationError("driver_id", "driver not found"))

	rec := env.do(t, http.MethodPut, "/api/v1/rides/"+testRideID, token,
		`{"driver_id":"`+testDriverID+`"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &body)
	if body.Fields["driver_id"] != "driver not found" {
		t.Fatalf("fields = %v", body.Fields)
	}
}

func TestListRides_ParsesQueryParams(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin-1", user.RoleAdmin)

	env.rideSvc.EXPECT().
		ListRides(gomock.Any(), ports.AuthContext{UserID: "admin-1", Role: user.RoleAdmin}, gomock.Any()).
		DoAndReturn(func(_ any, _ ports.AuthContext, opts ports.ListRidesOptions) (ports.ListRidesResult, error) {
			if opts.Status != "scheduled" {
				t.Errorf("Status = %q", opts.Status)
			}
			if opts.RiderEmailContains != "ann" {
				t.Errorf("RiderEmailContains = %q", opts.RiderEmailContains)
			}
			if opts.OrderBy != "distance" {
				t.Errorf("OrderBy = %q", opts.OrderBy)
			}
			if opts.Latitude == nil || *opts.Latitude != 37.7749 {
				t.Errorf("Latitude = %v", opts.Latitude)
			}
			if opts.Longitude == nil || *opts.Longitude != -122.4194 {
				t.Errorf("Longitude = %v", opts.Longitude)
			}
			if opts.Page != 2 || opts.PageSize != 5 {
				t.Errorf("paging = %d/%d", opts.Page, opts.PageSize)
			}
			return ports.ListRidesResult{Count: 0, Page: 2, PageSize: 5, Rides: []ports.RideView{}}, nil
		})

	rec := env.do(t, http.MethodGet,
		"/api/v1/rides?status=scheduled&rider_email=ann&order_by=distance&latitude=37.7749&longitude=-122.4194&page=2&page_size=5",
		token, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
}

func TestListRides_BadLatitudeRejected(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin-1", user.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/api/v1/rides?latitude=north", token, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListRides_MissingReferenceIsBadRequest(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin-1", user.RoleAdmin)

	env.rideSvc.EXPECT().
		ListRides(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.ListRidesResult{}, ports.ErrMissingParameter)

	rec := env.do(t, http.MethodGet, "/api/v1/rides?order_by=distance", token, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReport_ReturnsRows(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin-1", user.RoleAdmin)

	env.rideSvc.EXPECT().
		TripDurationReport(gomock.Any(), ports.AuthContext{UserID: "admin-1", Role: user.RoleAdmin}).
		Return([]ports.TripDurationRow{{Month: "2026-03", Driver: "bob", CountOfTrips: 2}}, nil)

	rec := env.do(t, http.MethodGet, "/api/v1/reports/trips-over-one-hour", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Results []ports.TripDurationRow `json:"results"`
	}
	decodeBody(t, rec, &body)
	if len(body.Results) != 1 || body.Results[0].Driver != "bob" {
		t.Fatalf("results = %+v", body.Results)
	}
}

func TestListRideEvents_WrappedInResults(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "rider-1", user.RoleRider)

	env.rideSvc.EXPECT().
		ListRideEvents(gomock.Any(), gomock.Any(), testRideID).
		Return([]ports.EventView{
			{ID: "ev-1", RideID: testRideID, Description: "Ride created"},
			{ID: "ev-2", RideID: testRideID, Description: "Status changed to pickup"},
		}, nil)

	rec := env.do(t, http.MethodGet, "/api/v1/rides/"+testRideID+"/events", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Results []ports.EventView `json:"results"`
	}
	decodeBody(t, rec, &body)
	if len(body.Results) != 2 || body.Results[1].Description != "Status changed to pickup" {
		t.Fatalf("results = %+v", body.Results)
	}
}
