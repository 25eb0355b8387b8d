package entity

// Supplier representa un proveedor. SupplierID lo asigna la base de datos.
type Supplier struct {
	SupplierID int64
	Name       string
	Contact    string // opcional
}
