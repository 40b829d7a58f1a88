package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookdepot/library-service/internal/model"
)

func (h *Handler) CreateRental(c echo.Context) error {
	var req model.CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	rental, err := h.librarySvc.CreateRental(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rental)
}

func (h *Handler) GetRental(c echo.Context) error {
	id, ok := pathID(c, "rentalId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	rental, err := h.librarySvc.GetRental(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rental)
}

func (h *Handler) UpdateRental(c echo.Context) error {
	id, ok := pathID(c, "rentalId")
	if !ok {
		return c.String(http.StatusBadRequest, invalidData)
	}
	var req model.PatchRentalRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	if err := c.Validate(req); err != nil {
		return c.String(http.StatusBadRequest, invalidData)
	}
	rental, err := h.librarySvc.UpdateRental(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rental)
}
