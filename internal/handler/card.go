package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookdepot/library-service/internal/model"
)

func (h *Handler) CreateCard(c echo.Context) error {
	var req model.CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	card, err := h.librarySvc.CreateCard(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) GetCard(c echo.Context) error {
	id, ok := pathID(c, "cardId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	card, err := h.librarySvc.GetCard(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) UpdateCard(c echo.Context) error {
	id, ok := pathID(c, "cardId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	var req model.PatchCardRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	card, err := h.librarySvc.UpdateCard(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) DeleteCard(c echo.Context) error {
	id, ok := pathID(c, "cardId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := h.librarySvc.DeleteCard(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
