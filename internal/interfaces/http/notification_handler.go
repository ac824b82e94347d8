package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/application/notifications"
	"github.com/zelcon/ops-api/internal/domain/entity"
)

// NotificationHandler expone el feed de alertas por rol (protegido).
type NotificationHandler struct {
	projector *notifications.Projector
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(projector *notifications.Projector) *NotificationHandler {
	return &NotificationHandler{projector: projector}
}

// Feed godoc
// @Summary      Feed de notificaciones del usuario
// @Description  Se recalcula en cada consulta según el rol del token.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   notifications.Alert
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) Feed(c *fiber.Ctx) error {
	userID, companyID, role := GetUserID(c), GetCompanyID(c), GetRole(c)
	if userID == "" || companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	// El proyector solo necesita id, empresa y rol; todos viajan en el token.
	user := &entity.User{ID: userID, CompanyID: companyID, Role: role}
	alerts, err := h.projector.Feed(c.Context(), user)
	if err != nil {
		return respondDomainError(c, err)
	}
	if alerts == nil {
		alerts = []notifications.Alert{}
	}
	return c.JSON(alerts)
}
