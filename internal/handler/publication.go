package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookdepot/library-service/internal/model"
)

func (h *Handler) CreatePublication(c echo.Context) error {
	var req model.CreatePublicationRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	pub, err := h.librarySvc.CreatePublication(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, pub)
}

func (h *Handler) GetPublication(c echo.Context) error {
	id, ok := pathID(c, "publicationId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	pub, err := h.librarySvc.GetPublication(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pub)
}

func (h *Handler) UpdatePublication(c echo.Context) error {
	id, ok := pathID(c, "publicationId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	var req model.PatchPublicationRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	pub, err := h.librarySvc.UpdatePublication(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pub)
}

func (h *Handler) DeletePublication(c echo.Context) error {
	id, ok := pathID(c, "publicationId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := h.librarySvc.DeletePublication(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
