package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/application/incidents"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/pkg/validator"
)

// IncidentHandler maneja los reportes de incidentes (protegido).
type IncidentHandler struct {
	uc *incidents.UseCase
}

// NewIncidentHandler construye el handler.
func NewIncidentHandler(uc *incidents.UseCase) *IncidentHandler {
	return &IncidentHandler{uc: uc}
}

func toIncidentResponse(i *entity.IncidentReport) dto.IncidentResponse {
	return dto.IncidentResponse{
		ID:          i.ID,
		CompanyID:   i.CompanyID,
		UserID:      i.UserID,
		UserName:    i.UserName,
		Description: i.Description,
		Status:      i.Status,
		Date:        i.Date,
	}
}

// Report godoc
// @Summary      Reportar un incidente
// @Tags         incidents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncidentRequest  true  "description"
// @Success      201   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/incidents [post]
func (h *IncidentHandler) Report(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateIncidentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return respondValidation(c, errs[0].FailedField)
	}
	incident, err := h.uc.Report(c.Context(), companyID, userID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toIncidentResponse(incident))
}

// List godoc
// @Summary      Listar incidentes de la empresa
// @Tags         incidents
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.IncidentResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/incidents [get]
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.ListByCompany(c.Context(), companyID)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.IncidentResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toIncidentResponse(i))
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un incidente
// @Tags         incidents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del incidente"
// @Param        body  body  dto.UpdateIncidentStatusRequest  true  "status: Pendiente | En Revisión | Resuelto"
// @Success      200   {object}  dto.IncidentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/incidents/{id}/status [patch]
func (h *IncidentHandler) UpdateStatus(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateIncidentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	incident, err := h.uc.UpdateStatus(c.Context(), companyID, c.Params("id"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toIncidentResponse(incident))
}
