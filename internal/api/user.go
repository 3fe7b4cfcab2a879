package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vuongphamdev/migration-project/internal/entity"
	"github.com/vuongphamdev/migration-project/internal/service"
)

// UserService is the model surface the user handlers need.
type UserService interface {
	CreateUser(ctx context.Context, name, email string) (int, error)
	GetUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
	UpdateUser(ctx context.Context, id int, name, email string) (bool, error)
	DeleteUser(ctx context.Context, id int) (bool, error)
}

type UserHandler struct {
	users UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUsers lists all users, newest first --> GET /users
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.users.GetUsers(c.Request().Context())
	if err != nil {
		return InternalError(c)
	}

	return Success(c, http.StatusOK, "Users retrieved successfully", users)
}

// GetUserByID retrieves a user by ID --> GET /users/:id
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return BadRequest(c, "Invalid ID", "id must be an integer")
	}

	user, err := h.users.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return NotFound(c, "User not found")
		}
		return InternalError(c)
	}

	return Success(c, http.StatusOK, "User retrieved successfully", user)
}

// CreateUser creates a new user --> POST /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	req := userRequest{}
	if err := c.Bind(&req); err != nil {
		return BadRequest(c, "Invalid request payload", "")
	}
	if req.Name == "" || req.Email == "" {
		return BadRequest(c, "Missing required fields", "name and email are required")
	}

	id, err := h.users.CreateUser(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return InternalError(c)
	}

	return Success(c, http.StatusCreated, "User created successfully", map[string]int{"id": id})
}

// UpdateUser updates a user's name and email --> PUT /users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return BadRequest(c, "Invalid ID", "id must be an integer")
	}

	req := userRequest{}
	if err := c.Bind(&req); err != nil {
		return BadRequest(c, "Invalid request payload", "")
	}
	if req.Name == "" || req.Email == "" {
		return BadRequest(c, "Missing required fields", "name and email are required")
	}

	updated, err := h.users.UpdateUser(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		return InternalError(c)
	}
	if !updated {
		return NotFound(c, "User not found")
	}

	return Success(c, http.StatusOK, "User updated successfully", map[string]int{"id": id})
}

// DeleteUser removes a user and, via the store, its posts --> DELETE /users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return BadRequest(c, "Invalid ID", "id must be an integer")
	}

	deleted, err := h.users.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return InternalError(c)
	}
	if !deleted {
		return NotFound(c, "User not found")
	}

	return Success(c, http.StatusOK, "User deleted successfully", map[string]int{"id": id})
}
