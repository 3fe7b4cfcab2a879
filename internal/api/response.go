package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      interface{} `json:"error"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNext      bool `json:"hasNext"`
	HasPrevious  bool `json:"hasPrevious"`
}

func NewPagination(currentPage, totalItems, itemsPerPage int) *Pagination {
	totalPages := (totalItems + itemsPerPage - 1) / itemsPerPage
	return &Pagination{
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
		HasNext:      currentPage < totalPages,
		HasPrevious:  currentPage > 1,
	}
}

func Success(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Message: message, Data: data, Error: nil})
}

func SuccessWithPagination(c echo.Context, message string, data interface{}, currentPage, totalItems, itemsPerPage int) error {
	return c.JSON(http.StatusOK, Response{
		Message:    message,
		Data:       data,
		Error:      nil,
		Pagination: NewPagination(currentPage, totalItems, itemsPerPage),
	})
}

func Error(c echo.Context, status int, message, detail string) error {
	if detail == "" {
		detail = message
	}
	return c.JSON(status, Response{Message: message, Error: detail})
}

func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message, "")
}

func BadRequest(c echo.Context, message, detail string) error {
	return Error(c, http.StatusBadRequest, message, detail)
}

// InternalError hides store failure detail from the caller; the detail is
// already logged server-side by the service layer.
func InternalError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal server error", "")
}
