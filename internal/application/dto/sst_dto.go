package dto

import (
	"encoding/json"
	"time"
)

// CreateDocumentRequest presentación de un documento SST.
type CreateDocumentRequest struct {
	Type  string          `json:"type" validate:"required,oneof=IPERC ATS Checklist PETS PETAR"`
	Title string          `json:"title" validate:"required"`
	Data  json.RawMessage `json:"data"`
}

// RejectDocumentRequest rechazo de un documento pendiente. Comment obligatorio.
type RejectDocumentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// ApproveDocumentRequest aprobación de un documento pendiente.
type ApproveDocumentRequest struct {
	Comment string `json:"comment"`
}

// DocumentResponse proyección HTTP de un documento SST.
type DocumentResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
	AuthorName      string    `json:"created_by"`
	ApprovedBy      string    `json:"approved_by,omitempty"`
	ApprovalComment string    `json:"approval_comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
