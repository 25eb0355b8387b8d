// Package dto define los structs de entrada/salida que comparten los dos
// front ends (menú de texto y formularios). Mantienen a las interfaces fuera
// del dominio.
package dto

import "github.com/shopspring/decimal"

// AddItemRequest datos para alta de un ítem de stock. ExpiryDate en formato
// YYYY-MM-DD o vacío.
type AddItemRequest struct {
	ItemID     string
	Name       string
	Quantity   int64
	Price      decimal.Decimal
	Location   string
	ExpiryDate string
}

// UpdateItemRequest actualización parcial: solo los campos no nil cambian.
type UpdateItemRequest struct {
	Name       *string
	Quantity   *int64
	Price      *decimal.Decimal
	Location   *string
	ExpiryDate *string // YYYY-MM-DD
}

// StockItemResponse fila de stock lista para mostrar.
type StockItemResponse struct {
	ItemID     string
	Name       string
	Quantity   int64
	Price      decimal.Decimal
	Location   string
	ExpiryDate string // YYYY-MM-DD o "" si no tiene
}
