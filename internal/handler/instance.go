package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookdepot/library-service/internal/model"
)

func (h *Handler) CreateInstance(c echo.Context) error {
	var req model.CreateInstanceRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	inst, err := h.librarySvc.CreateInstance(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, inst)
}

func (h *Handler) GetInstance(c echo.Context) error {
	id, ok := pathID(c, "instanceId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	inst, err := h.librarySvc.GetInstance(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, inst)
}

func (h *Handler) UpdateInstance(c echo.Context) error {
	id, ok := pathID(c, "instanceId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	var req model.PatchInstanceRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	inst, err := h.librarySvc.UpdateInstance(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, inst)
}

func (h *Handler) DeleteInstance(c echo.Context) error {
	id, ok := pathID(c, "instanceId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := h.librarySvc.DeleteInstance(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
