package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/application/sst"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/pkg/validator"
)

// SSTHandler maneja los documentos de seguridad y salud en el trabajo (protegido).
type SSTHandler struct {
	uc *sst.UseCase
}

// NewSSTHandler construye el handler.
func NewSSTHandler(uc *sst.UseCase) *SSTHandler {
	return &SSTHandler{uc: uc}
}

func toDocumentResponse(d *entity.SSTDocument) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:              d.ID,
		CompanyID:       d.CompanyID,
		Type:            d.Type,
		Title:           d.Title,
		Status:          d.Status,
		AuthorName:      d.AuthorName,
		ApprovedBy:      d.ApprovedBy,
		ApprovalComment: d.ApprovalComment,
		CreatedAt:       d.CreatedAt,
	}
}

// Create godoc
// @Summary      Presentar documento SST
// @Description  Autores con rol revisor quedan auto-aprobados; el resto entra a la cola Pending.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "type (IPERC|ATS|Checklist|PETS|PETAR), title, data"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *SSTHandler) Create(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return respondValidation(c, errs[0].FailedField)
	}
	doc, err := h.uc.CreateDocument(c.Context(), companyID, userID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc))
}

// List godoc
// @Summary      Listar documentos SST de la empresa
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.DocumentResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/documents [get]
func (h *SSTHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	docs, err := h.uc.ListByCompany(c.Context(), companyID)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar un documento pendiente
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del documento"
// @Param        body  body  dto.ApproveDocumentRequest  false "comment opcional"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/approve [post]
func (h *SSTHandler) Approve(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ApproveDocumentRequest
	_ = c.BodyParser(&in) // cuerpo opcional
	doc, err := h.uc.Approve(c.Context(), companyID, c.Params("id"), userID, in.Comment)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toDocumentResponse(doc))
}

// Reject godoc
// @Summary      Rechazar un documento pendiente
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del documento"
// @Param        body  body  dto.RejectDocumentRequest  true  "comment requerido"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/reject [post]
func (h *SSTHandler) Reject(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RejectDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.Reject(c.Context(), companyID, c.Params("id"), userID, in.Comment)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toDocumentResponse(doc))
}

// Archive godoc
// @Summary      Archivar un documento aprobado
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/archive [post]
func (h *SSTHandler) Archive(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	doc, err := h.uc.Archive(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toDocumentResponse(doc))
}

// Delete godoc
// @Summary      Eliminar un documento
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [delete]
func (h *SSTHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "documento eliminado"})
}
