package dto

// CreateSupplierRequest body para POST /api/suppliers.
// SupplierID es opcional: si va vacío se genera un UUID.
type CreateSupplierRequest struct {
	SupplierID string `json:"supplier_id,omitempty"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	SupplierID string `json:"supplier_id"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}
