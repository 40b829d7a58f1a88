package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookdepot/library-service/internal/model"
)

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	author, err := h.librarySvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, ok := pathID(c, "authorId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	author, err := h.librarySvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, ok := pathID(c, "authorId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	var req model.PatchAuthorRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	author, err := h.librarySvc.UpdateAuthor(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, ok := pathID(c, "authorId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := h.librarySvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
