package dto

import "time"

// CreateItemRequest alta de artículo de almacén (rol almacenero).
type CreateItemRequest struct {
	Name           string `json:"name" validate:"required"`
	SKU            string `json:"sku"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Category       string `json:"category" validate:"required"`
	Unit           string `json:"unit" validate:"required"`
	Stock          int    `json:"stock" validate:"min=0"`
	MinStock       int    `json:"min_stock" validate:"min=0"`
	RequiresReturn bool   `json:"requires_return"`
	Location       string `json:"location"`
	Supplier       string `json:"supplier"`
}

// AdjustStockRequest corrección administrativa de stock.
type AdjustStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// SubmitRequestRequest presentación de una solicitud de material.
type SubmitRequestRequest struct {
	ItemID        string `json:"item_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	Priority      string `json:"priority" validate:"omitempty,oneof=Alta Media Baja"`
	Justification string `json:"justification"`
	ProjectCode   string `json:"project_code"`
	Area          string `json:"area"`
}

// ApproveRequestRequest aprobación y despacho de una solicitud pendiente.
type ApproveRequestRequest struct {
	PickupTime     string `json:"pickup_time"`
	PickupLocation string `json:"pickup_location" validate:"required"`
	Comment        string `json:"comment"`
}

// RejectRequestRequest rechazo de una solicitud pendiente. Comment obligatorio.
type RejectRequestRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// ItemResponse proyección HTTP de un artículo.
type ItemResponse struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"company_id"`
	Name           string     `json:"name"`
	SKU            string     `json:"sku"`
	Brand          string     `json:"brand,omitempty"`
	Model          string     `json:"model,omitempty"`
	Category       string     `json:"category"`
	Unit           string     `json:"unit"`
	Stock          int        `json:"stock"`
	MinStock       int        `json:"min_stock"`
	RequiresReturn bool       `json:"requires_return"`
	Location       string     `json:"location,omitempty"`
	Supplier       string     `json:"supplier,omitempty"`
	LowStock       bool       `json:"low_stock"`
	LastRestock    *time.Time `json:"last_restock,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

// RequestResponse proyección HTTP de una solicitud de almacén.
type RequestResponse struct {
	ID              string     `json:"id"`
	CompanyID       string     `json:"company_id"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	UserArea        string     `json:"user_area,omitempty"`
	ItemID          string     `json:"item_id"`
	ItemName        string     `json:"item_name"`
	Quantity        int        `json:"quantity"`
	Status          string     `json:"status"`
	ReturnStatus    string     `json:"return_status"`
	Priority        string     `json:"priority,omitempty"`
	Justification   string     `json:"justification,omitempty"`
	ProjectCode     string     `json:"project_code,omitempty"`
	ApprovalComment string     `json:"approval_comment,omitempty"`
	PickupTime      string     `json:"pickup_time,omitempty"`
	PickupLocation  string     `json:"pickup_location,omitempty"`
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
