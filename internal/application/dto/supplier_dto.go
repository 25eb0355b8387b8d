package dto

// AddSupplierRequest datos para alta de proveedor. Contact es opcional.
type AddSupplierRequest struct {
	Name    string
	Contact string
}

// SupplierResponse fila de proveedor lista para mostrar.
type SupplierResponse struct {
	SupplierID int64
	Name       string
	Contact    string
}
