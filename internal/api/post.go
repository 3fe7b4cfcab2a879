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

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// PostService is the model surface the post handlers need.
type PostService interface {
	CreatePost(ctx context.Context, userID int, title, content string) (int, error)
	GetPosts(ctx context.Context, page, limit int) ([]entity.Post, int, error)
	GetPostByID(ctx context.Context, id int) (*entity.Post, error)
	UpdatePost(ctx context.Context, id int, title, content string) (bool, error)
	DeletePost(ctx context.Context, id int) (bool, error)
}

type PostHandler struct {
	posts PostService
}

// NewPostHandler creates a new instance of PostHandler
func NewPostHandler(posts PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	UserID  int    `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GetPosts lists posts one page at a time, newest first --> GET /posts?page=&limit=
func (h *PostHandler) GetPosts(c echo.Context) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return BadRequest(c, "Invalid pagination parameters", err.Error())
	}

	posts, total, err := h.posts.GetPosts(c.Request().Context(), page, limit)
	if err != nil {
		return InternalError(c)
	}

	return SuccessWithPagination(c, "Posts retrieved successfully", posts, page, total, limit)
}

// GetPostByID retrieves a post by ID --> GET /posts/:id
func (h *PostHandler) GetPostByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return BadRequest(c, "Invalid ID", "id must be an integer")
	}

	post, err := h.posts.GetPostByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return NotFound(c, "Post not found")
		}
		return InternalError(c)
	}

	return Success(c, http.StatusOK, "Post retrieved successfully", post)
}

// CreatePost creates a new post --> POST /posts
func (h *PostHandler) CreatePost(c echo.Context) error {
	req := createPostRequest{}
	if err := c.Bind(&req); err != nil {
		return BadRequest(c, "Invalid request payload", "")
	}
	if req.UserID <= 0 || req.Title == "" || req.Content == "" {
		return BadRequest(c, "Missing required fields", "user_id, title and content are required")
	}

	id, err := h.posts.CreatePost(c.Request().Context(), req.UserID, req.Title, req.Content)
	if err != nil {
		return InternalError(c)
	}

	return Success(c, http.StatusCreated, "Post created successfully", map[string]int{"id": id})
}

// UpdatePost updates a post's title and content --> PUT /posts/:id
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return BadRequest(c, "Invalid ID", "id must be an integer")
	}

	req := updatePostRequest{}
	if err := c.Bind(&req); err != nil {
		return BadRequest(c, "Invalid request payload", "")
	}
	if req.Title == "" || req.Content == "" {
		return BadRequest(c, "Missing required fields", "title and content are required")
	}

	updated, err := h.posts.UpdatePost(c.Request().Context(), id, req.Title, req.Content)
	if err != nil {
		return InternalError(c)
	}
	if !updated {
		return NotFound(c, "Post not found")
	}

	return Success(c, http.StatusOK, "Post updated successfully", map[string]int{"id": id})
}

// DeletePost removes a post --> DELETE /posts/:id
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return BadRequest(c, "Invalid ID", "id must be an integer")
	}

	deleted, err := h.posts.DeletePost(c.Request().Context(), id)
	if err != nil {
		return InternalError(c)
	}
	if !deleted {
		return NotFound(c, "Post not found")
	}

	return Success(c, http.StatusOK, "Post deleted successfully", map[string]int{"id": id})
}

// parsePagination validates page >= 1 and limit in [1,100] before any
// query runs. Absent parameters fall back to the defaults.
func parsePagination(c echo.Context) (int, int, error) {
	page := defaultPage
	limit := defaultLimit

	if raw := c.QueryParam("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, errors.New("page must be a positive integer")
		}
		page = v
	}

	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxLimit {
			return 0, 0, errors.New("limit must be an integer between 1 and 100")
		}
		limit = v
	}

	return page, limit, nil
}
