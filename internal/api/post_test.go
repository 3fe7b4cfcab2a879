package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/vuongphamdev/migration-project/internal/entity"
	"github.com/vuongphamdev/migration-project/internal/service"
)

type stubPostService struct {
	createID int
	posts    []entity.Post
	total    int
	post     *entity.Post
	updated  bool
	deleted  bool
	err      error

	calls     int
	lastPage  int
	lastLimit int
}

func (s *stubPostService) CreatePost(_ context.Context, _ int, _, _ string) (int, error) {
	s.calls++
	return s.createID, s.err
}

func (s *stubPostService) GetPosts(_ context.Context, page, limit int) ([]entity.Post, int, error) {
	s.calls++
	s.lastPage = page
	s.lastLimit = limit
	return s.posts, s.total, s.err
}

func (s *stubPostService) GetPostByID(_ context.Context, _ int) (*entity.Post, error) {
	s.calls++
	return s.post, s.err
}

func (s *stubPostService) UpdatePost(_ context.Context, _ int, _, _ string) (bool, error) {
	s.calls++
	return s.updated, s.err
}

func (s *stubPostService) DeletePost(_ context.Context, _ int) (bool, error) {
	s.calls++
	return s.deleted, s.err
}

func TestGetPosts_LimitOutOfRangeSkipsQuery(t *testing.T) {
	for _, limit := range []string{"0", "101", "abc"} {
		svc := &stubPostService{}
		h := NewPostHandler(svc)

		c, rec := newTestContext(http.MethodGet, "/posts?limit="+limit, "")
		if err := h.GetPosts(c); err != nil {
			t.Fatalf("limit=%s: unexpected error: %v", limit, err)
		}

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("limit=%s: expected 400, got %d", limit, rec.Code)
		}
		if svc.calls != 0 {
			t.Fatalf("limit=%s: expected no query, got %d calls", limit, svc.calls)
		}
	}
}

func TestGetPosts_PageBelowOneRejected(t *testing.T) {
	svc := &stubPostService{}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/posts?page=0", "")
	if err := h.GetPosts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("expected no query, got %d calls", svc.calls)
	}
}

func TestGetPosts_DefaultsToFirstPage(t *testing.T) {
	svc := &stubPostService{}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/posts", "")
	if err := h.GetPosts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastPage != 1 || svc.lastLimit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got page=%d limit=%d", svc.lastPage, svc.lastLimit)
	}
}

func TestGetPosts_PaginationEnvelope(t *testing.T) {
	posts := make([]entity.Post, 10)
	for i := range posts {
		posts[i] = entity.Post{ID: 20 - i, UserID: 1, Title: "t", Content: "c"}
	}
	svc := &stubPostService{posts: posts, total: 25}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/posts?page=2&limit=10", "")
	if err := h.GetPosts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if len(body["data"].([]interface{})) != 10 {
		t.Fatalf("expected 10 items on page 2, got %d", len(body["data"].([]interface{})))
	}

	p := body["pagination"].(map[string]interface{})
	if p["currentPage"].(float64) != 2 {
		t.Fatalf("expected currentPage=2, got %v", p["currentPage"])
	}
	if p["totalPages"].(float64) != 3 {
		t.Fatalf("expected totalPages=3, got %v", p["totalPages"])
	}
	if p["totalItems"].(float64) != 25 {
		t.Fatalf("expected totalItems=25, got %v", p["totalItems"])
	}
	if p["hasNext"] != true || p["hasPrevious"] != true {
		t.Fatalf("expected hasNext and hasPrevious on page 2 of 3, got %v / %v", p["hasNext"], p["hasPrevious"])
	}
}

func TestCreatePost_MissingUserID(t *testing.T) {
	svc := &stubPostService{}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/posts", `{"title":"t","content":"c"}`)
	if err := h.CreatePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("expected service not to be called, got %d calls", svc.calls)
	}
}

func TestCreatePost_ReturnsCreatedID(t *testing.T) {
	svc := &stubPostService{createID: 11}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/posts", `{"user_id":1,"title":"t","content":"c"}`)
	if err := h.CreatePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	if data["id"].(float64) != 11 {
		t.Fatalf("expected id=11, got %v", data["id"])
	}
}

func TestGetPostByID_NotFound(t *testing.T) {
	svc := &stubPostService{err: service.ErrNotFound}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/posts/99", "")
	c.SetPath("/posts/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.GetPostByID(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	svc := &stubPostService{updated: false}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/posts/99", `{"title":"t","content":"c"}`)
	c.SetPath("/posts/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.UpdatePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeletePost_InvalidID(t *testing.T) {
	svc := &stubPostService{}
	h := NewPostHandler(svc)

	c, rec := newTestContext(http.MethodDelete, "/posts/x", "")
	c.SetPath("/posts/:id")
	c.SetParamNames("id")
	c.SetParamValues("x")

	if err := h.DeletePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("expected service not to be called, got %d calls", svc.calls)
	}
}
