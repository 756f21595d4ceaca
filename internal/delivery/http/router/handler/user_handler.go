// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "myflix/internal/delivery/context"
	"myflix/internal/delivery/http/response"
	"myflix/internal/domain/entity"
	domainerrors "myflix/internal/domain/errors"
	"myflix/internal/usecase"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewUserView(output.User), "User registered successfully")
}

// Login handles the credential verification request and returns an issued token.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"user":  usecase.NewUserView(output.User),
		"token": output.Token,
	}, "Login successful")
}

// RefreshToken issues a fresh token for the already-authorized caller.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	user := deliverycontext.GetAuthorizedUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"user":  usecase.NewUserView(output.User),
		"token": output.Token,
	}, "Token refreshed successfully")
}

// ListUsers handles the request to list all registered users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewUserView(user))
	}

	return response.Success(c, http.StatusOK, views, "Users retrieved successfully")
}

// GetProfile handles the request to read a user profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.uc.GetProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewUserView(user), "Profile retrieved successfully")
}

// UpdateProfile handles the owner-restricted profile update request.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	if _, err := h.requireOwner(c); err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), c.Param("username"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewUserView(user), "Profile updated successfully")
}

// Deregister handles the owner-restricted account removal request.
func (h *UserHandler) Deregister(c echo.Context) error {
	if _, err := h.requireOwner(c); err != nil {
		return err
	}

	if err := h.uc.Deregister(c.Request().Context(), c.Param("username")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deregistered successfully")
}

// AddFavorite handles the owner-restricted favorites addition request.
func (h *UserHandler) AddFavorite(c echo.Context) error {
	user, err := h.requireOwner(c)
	if err != nil {
		return err
	}

	movieID, err := uuid.Parse(c.Param("movieID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid movie id")
	}

	updated, err := h.uc.AddFavorite(c.Request().Context(), user, movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewUserView(updated), "Favorite added successfully")
}

// RemoveFavorite handles the owner-restricted favorites removal request.
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	user, err := h.requireOwner(c)
	if err != nil {
		return err
	}

	movieID, err := uuid.Parse(c.Param("movieID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid movie id")
	}

	updated, err := h.uc.RemoveFavorite(c.Request().Context(), user, movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewUserView(updated), "Favorite removed successfully")
}

// requireOwner confirms the gate-resolved identity matches the :username
// path parameter. Owner-restricted mutations never reach the usecase layer
// on a mismatch.
func (h *UserHandler) requireOwner(c echo.Context) (*entity.User, error) {
	user := deliverycontext.GetAuthorizedUser(c)
	if user == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}
	if user.Username != c.Param("username") {
		return nil, errors.WithStack(domainerrors.ErrPermissionDenied)
	}

	return user, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, echo.Map{"status": "ok"}, "Service is healthy")
}
