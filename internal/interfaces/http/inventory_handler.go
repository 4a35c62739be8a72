package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// InventoryHandler vistas agregadas del inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Status godoc
// @Summary      Totales del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatusDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/status [get]
func (h *InventoryHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Details godoc
// @Summary      Detalle del inventario
// @Description  Todos los repuestos con proveedor y estado derivado
//               (normal, low_stock, out_of_stock, over_stock).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PartStatusResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/details [get]
func (h *InventoryHandler) Details(c *fiber.Ctx) error {
	out, err := h.uc.Details()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
