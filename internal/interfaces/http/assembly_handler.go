package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sayandip-ghosh/stock-management/internal/application/build"
	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/application/usecase"
)

// AssemblyHandler handles HTTP requests for assemblies and their BOMs (protected).
type AssemblyHandler struct {
	uc        *usecase.AssemblyUseCase
	analyzeUC *build.AnalyzeUseCase
}

// NewAssemblyHandler builds the handler.
func NewAssemblyHandler(uc *usecase.AssemblyUseCase, analyzeUC *build.AnalyzeUseCase) *AssemblyHandler {
	return &AssemblyHandler{uc: uc, analyzeUC: analyzeUC}
}

// Create godoc
// @Summary      Create assembly with BOM
// @Tags         assemblies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssemblyRequest  true  "Assembly data with BOM lines"
// @Success      201   {object}  dto.AssemblyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assemblies [post]
func (h *AssemblyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssemblyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.AssemblyNumber == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "assembly_number and name are required"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get assembly by ID
// @Tags         assemblies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Assembly ID"
// @Success      200  {object}  dto.AssemblyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assemblies/{id} [get]
func (h *AssemblyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "assembly not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List assemblies
// @Tags         assemblies
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.AssemblyListResponse
// @Router       /api/assemblies [get]
func (h *AssemblyHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update assembly
// @Description  Updates header fields; a non-null bom_items array replaces the whole BOM line set.
// @Tags         assemblies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Assembly ID"
// @Param        body  body  dto.UpdateAssemblyRequest  true  "Fields to update"
// @Success      200   {object}  dto.AssemblyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assemblies/{id} [put]
func (h *AssemblyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssemblyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "assembly not found"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete assembly
// @Tags         assemblies
// @Security     Bearer
// @Param        id  path  string  true  "Assembly ID"
// @Success      204
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/assemblies/{id} [delete]
func (h *AssemblyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Buildability godoc
// @Summary      Check buildability
// @Description  Answers whether the requested quantity can be built from current stock, with per-BOM-line availability and the maximum buildable.
// @Tags         assemblies
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "Assembly ID"
// @Param        quantity  query  int     false  "Quantity to check"  default(1)
// @Success      200  {object}  dto.BuildabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assemblies/{id}/buildability [get]
func (h *AssemblyHandler) Buildability(c *fiber.Ctx) error {
	quantity := int64(c.QueryInt("quantity", 1))
	out, err := h.analyzeUC.Buildability(c.UserContext(), c.Params("id"), quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
