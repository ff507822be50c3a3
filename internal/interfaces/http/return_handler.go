package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/application/sales"
	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
	"github.com/agrocampo/agroadmin-api/pkg/validate"
)

// ReturnHandler maneja las peticiones HTTP para devoluciones a proveedor (protegido).
type ReturnHandler struct {
	createUC *sales.CreateReturnUseCase
	queryUC  *sales.QueryUseCase
}

// NewReturnHandler construye el handler.
func NewReturnHandler(createUC *sales.CreateReturnUseCase, queryUC *sales.QueryUseCase) *ReturnHandler {
	return &ReturnHandler{createUC: createUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Registrar devolución a proveedor
// @Tags         returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReturnRequest  true  "Datos de la devolución"
// @Success      201   {object}  dto.ReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/returns [post]
func (h *ReturnHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: validate.Fields(err)})
	}
	out, err := h.createUC.CreateReturn(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la cantidad a devolver"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVOICE_MISMATCH", Message: "la factura no pertenece al proveedor indicado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad, precio o descuento inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor, factura o producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar devoluciones
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        company_id  query  string  false  "Filtrar por proveedor"
// @Param        invoice_id  query  string  false  "Filtrar por factura"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        from        query  string  false  "Desde (2006-01-02)"
// @Param        to          query  string  false  "Hasta (2006-01-02)"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.ReturnListResponse
// @Router       /api/returns [get]
func (h *ReturnHandler) List(c *fiber.Ctx) error {
	filter := repository.ReturnFilter{
		CompanyID: c.Query("company_id"),
		InvoiceID: c.Query("invoice_id"),
		ProductID: c.Query("product_id"),
	}
	var err error
	filter.From, filter.To, err = parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha inválido (2006-01-02)"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.queryUC.ListReturns(filter, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
