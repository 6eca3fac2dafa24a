package entity

// Supplier representa un proveedor. Entidad independiente: no hay integridad
// referencial con las compras.
type Supplier struct {
	SupplierID string
	Name       string
	Address    string
	Phone      string
	Email      string
}
