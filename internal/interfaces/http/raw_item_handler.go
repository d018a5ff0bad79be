package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/application/usecase"
)

// RawItemHandler handles HTTP requests for raw material (protected).
type RawItemHandler struct {
	uc *usecase.RawItemUseCase
}

// NewRawItemHandler builds the handler.
func NewRawItemHandler(uc *usecase.RawItemUseCase) *RawItemHandler {
	return &RawItemHandler{uc: uc}
}

// Create godoc
// @Summary      Create raw item
// @Tags         raw-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRawItemRequest  true  "Raw item data"
// @Success      201   {object}  dto.RawItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/raw-items [post]
func (h *RawItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRawItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.ItemNumber == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_number and name are required"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get raw item by ID
// @Tags         raw-items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Raw item ID"
// @Success      200  {object}  dto.RawItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-items/{id} [get]
func (h *RawItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "raw item not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List raw items
// @Tags         raw-items
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.RawItemListResponse
// @Router       /api/raw-items [get]
func (h *RawItemHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update raw item
// @Tags         raw-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Raw item ID"
// @Param        body  body  dto.UpdateRawItemRequest  true  "Fields to update"
// @Success      200   {object}  dto.RawItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/raw-items/{id} [put]
func (h *RawItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRawItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "raw item not found"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete raw item
// @Tags         raw-items
// @Security     Bearer
// @Param        id  path  string  true  "Raw item ID"
// @Success      204
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/raw-items/{id} [delete]
func (h *RawItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
