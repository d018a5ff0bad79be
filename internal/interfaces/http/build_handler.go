package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sayandip-ghosh/stock-management/internal/application/build"
	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
)

// BuildHandler handles batch analysis and build execution (protected).
type BuildHandler struct {
	analyzeUC *build.AnalyzeUseCase
	buildUC   *build.BuildUseCase
}

// NewBuildHandler builds the handler.
func NewBuildHandler(analyzeUC *build.AnalyzeUseCase, buildUC *build.BuildUseCase) *BuildHandler {
	return &BuildHandler{analyzeUC: analyzeUC, buildUC: buildUC}
}

// Analyze godoc
// @Summary      Analyze batch build
// @Description  Computes shared-stock contention for a selection of assemblies built together: per-part constraint factors, the global factor, adjusted max per assembly under proportional allocation, and parts short of combined demand.
// @Tags         builds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchAnalyzeRequest  true  "Assemblies and quantities"
// @Success      200   {object}  dto.BatchAnalyzeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/builds/analyze [post]
func (h *BuildHandler) Analyze(c *fiber.Ctx) error {
	var in dto.BatchAnalyzeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items is required"})
	}
	out, err := h.analyzeUC.AnalyzeBatch(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Execute godoc
// @Summary      Execute batch build
// @Description  Consumes part stock and increments ready-built counts for the requested assemblies, all or nothing. Fails with 409 when combined stock does not cover the batch.
// @Tags         builds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExecuteBuildRequest  true  "Assemblies and quantities"
// @Success      201   {object}  dto.ExecuteBuildResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/builds [post]
func (h *BuildHandler) Execute(c *fiber.Ctx) error {
	var in dto.ExecuteBuildRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items is required"})
	}
	out, err := h.buildUC.Execute(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
