package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/application/usecase"
)

// StockHandler handles scrap write-offs and the movement ledger (protected).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Scrap godoc
// @Summary      Scrap stock
// @Description  Writes stock off as unusable: decrements the item's stock and records a scrap record plus a SCRAP movement, in one transaction.
// @Tags         scrap
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateScrapRequest  true  "Item, quantity and reason"
// @Success      201   {object}  dto.ScrapResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/scrap [post]
func (h *StockHandler) Scrap(c *fiber.Ctx) error {
	var in dto.CreateScrapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.ItemID == "" || in.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id and reason are required"})
	}
	out, err := h.uc.Scrap(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListScrap godoc
// @Summary      List scrap records
// @Tags         scrap
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ScrapListResponse
// @Router       /api/scrap [get]
func (h *StockHandler) ListScrap(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListScrap(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      List stock movements
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  false  "Filter by item"
// @Param        limit    query  int     false  "Limit"   default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.StockMovementListResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListMovements(c.UserContext(), c.Query("item_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
