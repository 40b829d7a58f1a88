package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookdepot/library-service/internal/model"
)

func (h *Handler) CreateCategory(c echo.Context) error {
	var req model.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	category, err := h.librarySvc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) GetCategory(c echo.Context) error {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	category, err := h.librarySvc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	var req model.PatchCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	category, err := h.librarySvc.UpdateCategory(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := h.librarySvc.DeleteCategory(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
