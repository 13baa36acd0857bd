package handler

import (
	"net/http"

	"ride-management/internal/domain/user"
	"ride-management/internal/ports"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"required,oneof=admin driver rider"`
}

// handleRegister handles POST /api/v1/auth/register.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r)

	var req registerRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.validationBody(ctx, w, err)
		return
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		h.httpError(ctx, w, http.StatusBadRequest, "role must be one of: admin, driver, rider", err)
		return
	}

	res, err := h.authSvc.Register(ctx, ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	h.jsonResponse(ctx, w, http.StatusCreated, res)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// handleLogin handles POST /api/v1/auth/login.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r)

	var req loginRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.validationBody(ctx, w, err)
		return
	}

	res, err := h.authSvc.Login(ctx, ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	h.jsonResponse(ctx, w, http.StatusOK, res)
}
