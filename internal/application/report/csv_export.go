package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// Cabecera fija del CSV de stock, en el orden de las columnas de la tabla.
var csvHeader = []string{"Item ID", "Name", "Quantity", "Price", "Location", "Expiry Date"}

// ExportCSV escribe todo el stock al path indicado, pisando cualquier archivo
// existente. Una fila por ítem en el orden natural de la tabla; cantidad,
// precio y vencimiento como texto plano. Con el stock vacío se rehúsa con
// ErrNotFound antes de tocar el archivo.
func (s *Service) ExportCSV(path string) error {
	items, err := s.stockRepo.List()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("stock vacío: %w", domain.ErrNotFound)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	defer f.Close()
	if err := writeCSVRows(f, items); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", path, err)
	}
	return nil
}

// WriteCSV escribe el reporte sobre cualquier Writer (separado de ExportCSV
// para poder testearlo sin tocar disco). A diferencia de ExportCSV no se
// rehúsa con stock vacío: emite solo la cabecera.
func (s *Service) WriteCSV(w io.Writer) error {
	items, err := s.stockRepo.List()
	if err != nil {
		return err
	}
	return writeCSVRows(w, items)
}

func writeCSVRows(w io.Writer, items []*entity.StockItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("escribir cabecera: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.ItemID,
			item.Name,
			strconv.FormatInt(item.Quantity, 10),
			item.Price.String(),
			item.Location,
			item.ExpiryString(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("escribir ítem %s: %w", item.ItemID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
