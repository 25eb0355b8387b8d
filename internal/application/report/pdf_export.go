package report

import (
	"fmt"
	"os"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	pdfColorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	pdfColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ExportPDF genera el reporte de stock en PDF y lo escribe al path indicado,
// pisando cualquier archivo existente. Mismo contenido que el CSV más el
// valor total al pie. Igual que ExportCSV, se rehúsa con stock vacío.
func (s *Service) ExportPDF(path string) error {
	data, err := s.GeneratePDF()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}

// GeneratePDF arma el documento y devuelve sus bytes.
func (s *Service) GeneratePDF() ([]byte, error) {
	items, err := s.stockRepo.List()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("stock vacío: %w", domain.ErrNotFound)
	}
	total, err := s.stockRepo.TotalValue()
	if err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(pdfTitleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: pdfColorPrimary, Thickness: 0.5}))
	m.AddRows(pdfTableHeaderRow())
	for _, item := range items {
		m.AddRows(pdfItemRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: pdfColorPrimary, Thickness: 0.3}))
	m.AddRows(pdfTotalRow(total.StringFixed(2)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func pdfTitleRow() core.Row {
	return row.New(12).Add(
		text.NewCol(8, "Stock Report", props.Text{
			Size: 14, Style: fontstyle.Bold, Color: pdfColorPrimary,
		}),
		text.NewCol(4, time.Now().Format("2006-01-02 15:04"), props.Text{
			Size: 9, Align: align.Right, Color: pdfColorGray,
		}),
	)
}

func pdfTableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold}
	return row.New(7).Add(
		text.NewCol(2, "Item ID", header),
		text.NewCol(3, "Name", header),
		text.NewCol(1, "Qty", header),
		text.NewCol(2, "Price", header),
		text.NewCol(2, "Location", header),
		text.NewCol(2, "Expiry", header),
	)
}

func pdfItemRow(item *entity.StockItem) core.Row {
	cell := props.Text{Size: 8}
	expiry := item.ExpiryString()
	if expiry == "" {
		expiry = "-"
	}
	return row.New(6).Add(
		text.NewCol(2, item.ItemID, cell),
		text.NewCol(3, item.Name, cell),
		text.NewCol(1, strconv.FormatInt(item.Quantity, 10), cell),
		text.NewCol(2, item.Price.StringFixed(2), cell),
		text.NewCol(2, item.Location, cell),
		text.NewCol(2, expiry, cell),
	)
}

func pdfTotalRow(total string) core.Row {
	return row.New(8).Add(
		col.New(8),
		text.NewCol(2, "Total value", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "$"+total, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
}
