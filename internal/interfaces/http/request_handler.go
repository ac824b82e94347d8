package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/application/warehouse"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/pkg/validator"
)

// RequestHandler maneja el ciclo de solicitudes de material (protegido).
type RequestHandler struct {
	uc *warehouse.UseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *warehouse.UseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

func toRequestResponse(r *entity.WarehouseRequest) dto.RequestResponse {
	return dto.RequestResponse{
		ID:              r.ID,
		CompanyID:       r.CompanyID,
		UserID:          r.UserID,
		UserName:        r.UserName,
		UserArea:        r.UserArea,
		ItemID:          r.ItemID,
		ItemName:        r.ItemName,
		Quantity:        r.Quantity,
		Status:          r.Status,
		ReturnStatus:    r.ReturnStatus,
		Priority:        r.Priority,
		Justification:   r.Justification,
		ProjectCode:     r.ProjectCode,
		ApprovalComment: r.ApprovalComment,
		PickupTime:      r.PickupTime,
		PickupLocation:  r.PickupLocation,
		ReturnDate:      r.ReturnDate,
		CreatedAt:       r.CreatedAt,
	}
}

func toRequestResponses(reqs []*entity.WarehouseRequest) []dto.RequestResponse {
	out := make([]dto.RequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toRequestResponse(r))
	}
	return out
}

// Submit godoc
// @Summary      Presentar solicitud de material
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitRequestRequest  true  "item_id, quantity, priority, justification"
// @Success      201   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requests [post]
func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SubmitRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return respondValidation(c, errs[0].FailedField)
	}
	req, err := h.uc.SubmitRequest(c.Context(), companyID, userID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRequestResponse(req))
}

// ListCompany godoc
// @Summary      Listar solicitudes de la empresa (vista del almacenero)
// @Description  Pendientes primero; dentro de cada grupo, orden de llegada.
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.RequestResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/requests [get]
func (h *RequestHandler) ListCompany(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	reqs, err := h.uc.ListRequests(c.Context(), companyID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRequestResponses(reqs))
}

// ListMine godoc
// @Summary      Listar mis solicitudes
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.RequestResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/requests/mine [get]
func (h *RequestHandler) ListMine(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	reqs, err := h.uc.ListUserRequests(c.Context(), companyID, userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRequestResponses(reqs))
}

// Approve godoc
// @Summary      Aprobar y despachar una solicitud pendiente
// @Description  Descuenta el stock y deja la solicitud en Entregado en el mismo acto.
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la solicitud"
// @Param        body  body  dto.ApproveRequestRequest  true  "pickup_location requerido"
// @Success      200   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/approve [post]
func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ApproveRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return respondValidation(c, errs[0].FailedField)
	}
	req, err := h.uc.ApproveAndDeliver(c.Context(), companyID, c.Params("id"), userID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRequestResponse(req))
}

// Reject godoc
// @Summary      Rechazar una solicitud pendiente
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la solicitud"
// @Param        body  body  dto.RejectRequestRequest  true  "comment requerido"
// @Success      200   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/reject [post]
func (h *RequestHandler) Reject(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RejectRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	req, err := h.uc.Reject(c.Context(), companyID, c.Params("id"), userID, in.Comment)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRequestResponse(req))
}

// ConfirmReturn godoc
// @Summary      Confirmar devolución de un préstamo
// @Description  Reingresa la cantidad al stock y cierra el seguimiento de devolución.
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/return [post]
func (h *RequestHandler) ConfirmReturn(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	req, err := h.uc.ConfirmReturn(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRequestResponse(req))
}
