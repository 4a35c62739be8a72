package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TransactionHandler maneja los movimientos de stock (protegido): el POST pasa
// por el coordinador; los GET son consultas de solo lectura.
type TransactionHandler struct {
	coordinator *ledger.Coordinator
	queries     *usecase.TransactionQueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(coordinator *ledger.Coordinator, queries *usecase.TransactionQueryUseCase) *TransactionHandler {
	return &TransactionHandler{coordinator: coordinator, queries: queries}
}

// Submit godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica IN/OUT/ANOMALY sobre un repuesto de forma atómica y
//               devuelve el asiento del libro. Rechazos de negocio (stock
//               insuficiente, techo excedido, repuesto inexistente) → 400.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitTransactionRequest  true  "part_id, type, quantity, remark"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Submit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SubmitTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.coordinator.Submit(c.Context(), ledger.SubmitInput{
		PartID:   in.PartID,
		UserID:   userID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Remark:   in.Remark,
	})
	if err != nil {
		// El mensaje del rechazo lleva el detalle (stock actual, cantidad,
		// límite) y se entrega tal cual al caller.
		if domain.IsBusinessRejection(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "REJECTED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "operación fallida"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LedgerEntryResponse{
		ID:        entry.ID,
		PartID:    entry.PartID,
		UserID:    entry.UserID,
		Type:      entry.Type,
		Quantity:  entry.Quantity,
		Remark:    entry.Remark,
		CreatedAt: entry.CreatedAt,
	})
}

// List godoc
// @Summary      Listar movimientos
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        part_id     query  string  false  "Filtrar por repuesto"
// @Param        user_id     query  string  false  "Filtrar por usuario"
// @Param        type        query  string  false  "IN | OUT | ANOMALY"
// @Param        start_date  query  string  false  "RFC 3339"
// @Param        end_date    query  string  false  "RFC 3339"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.LedgerListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	filter := repository.LedgerFilter{
		PartID:    c.Query("part_id"),
		UserID:    c.Query("user_id"),
		TransType: c.Query("type"),
		Limit:     clampLimit(c.QueryInt("limit", 20)),
		Offset:    clampOffset(c.QueryInt("offset", 0)),
	}
	var err error
	if filter.From, err = parseTimeQuery(c.Query("start_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválida"})
	}
	if filter.To, err = parseTimeQuery(c.Query("end_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválida"})
	}
	out, err := h.queries.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen diario de movimientos
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "RFC 3339"
// @Param        end_date    query  string  false  "RFC 3339"
// @Success      200  {array}  dto.DailySummaryDTO
// @Router       /api/transactions/summary [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	var filter repository.LedgerFilter
	var err error
	if filter.From, err = parseTimeQuery(c.Query("start_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválida"})
	}
	if filter.To, err = parseTimeQuery(c.Query("end_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválida"})
	}
	out, err := h.queries.Summary(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	// RFC 3339 o fecha simple YYYY-MM-DD
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
