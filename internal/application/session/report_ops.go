package session

import (
	"fmt"

	"github.com/jhoicas/almacen/internal/application/dto"
)

// Dashboard devuelve el resumen read-only del inventario.
func (s *Session) Dashboard() (*dto.DashboardSummary, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.reports.Dashboard()
}

// ExportCSV exporta todo el stock al path indicado y lo deja en la auditoría.
// Un error de I/O se reporta al usuario y no voltea el proceso.
func (s *Session) ExportCSV(path string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.reports.ExportCSV(path); err != nil {
		return err
	}
	s.audit(fmt.Sprintf("Exported stock data to CSV %s", path))
	return nil
}

// ExportPDF exporta el reporte de stock en PDF al path indicado.
func (s *Session) ExportPDF(path string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.reports.ExportPDF(path); err != nil {
		return err
	}
	s.audit(fmt.Sprintf("Exported stock report to PDF %s", path))
	return nil
}
