package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre SQLite (usable con DB o tx).
// El precio se guarda como texto decimal para no perder precisión en REAL.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar DB o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste un nuevo ítem de stock.
func (r *StockRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock (item_id, name, quantity, price, location, expiry_date)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		item.ItemID, item.Name, item.Quantity, item.Price.String(),
		item.Location, expiryToDB(item.ExpiryDate),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por su código. Devuelve (nil, nil) si no existe.
func (r *StockRepo) GetByID(itemID string) (*entity.StockItem, error) {
	row := r.q.QueryRow(`
		SELECT item_id, name, quantity, price, location, expiry_date
		FROM stock WHERE item_id = ?`, itemID)
	item, err := scanStockItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return item, nil
}

// GetByName busca por nombre exacto sin distinguir mayúsculas (no substring).
func (r *StockRepo) GetByName(name string) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(`
		SELECT item_id, name, quantity, price, location, expiry_date
		FROM stock WHERE LOWER(name) = ?`, strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("get stock by name: %w", err)
	}
	return collectStockItems(rows)
}

// List devuelve todas las filas de stock en el orden natural de la tabla.
func (r *StockRepo) List() ([]*entity.StockItem, error) {
	rows, err := r.q.Query(`
		SELECT item_id, name, quantity, price, location, expiry_date FROM stock`)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return collectStockItems(rows)
}

// ListBelow devuelve los ítems con cantidad estrictamente menor al umbral.
func (r *StockRepo) ListBelow(threshold int64) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(`
		SELECT item_id, name, quantity, price, location, expiry_date
		FROM stock WHERE quantity < ?`, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return collectStockItems(rows)
}

// UpdateQuantity fija la cantidad de un ítem. La validación de no-negatividad
// es responsabilidad de la sesión, que es el único punto de entrada de mutación.
func (r *StockRepo) UpdateQuantity(itemID string, quantity int64) error {
	_, err := r.q.Exec(`UPDATE stock SET quantity = ? WHERE item_id = ?`, quantity, itemID)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// UpdatePartial escribe solo los campos no nil del patch (query dinámica).
func (r *StockRepo) UpdatePartial(itemID string, patch entity.StockItemPatch) error {
	if patch.Empty() {
		return nil
	}
	var fields []string
	var params []any
	if patch.Name != nil {
		fields = append(fields, "name = ?")
		params = append(params, *patch.Name)
	}
	if patch.Quantity != nil {
		fields = append(fields, "quantity = ?")
		params = append(params, *patch.Quantity)
	}
	if patch.Price != nil {
		fields = append(fields, "price = ?")
		params = append(params, patch.Price.String())
	}
	if patch.Location != nil {
		fields = append(fields, "location = ?")
		params = append(params, *patch.Location)
	}
	if patch.ExpiryDate != nil {
		fields = append(fields, "expiry_date = ?")
		params = append(params, patch.ExpiryDate.Format(entity.ExpiryDateLayout))
	}
	params = append(params, itemID)
	query := "UPDATE stock SET " + strings.Join(fields, ", ") + " WHERE item_id = ?"
	if _, err := r.q.Exec(query, params...); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Delete elimina un ítem por su código.
func (r *StockRepo) Delete(itemID string) error {
	if _, err := r.q.Exec(`DELETE FROM stock WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// TotalValue suma quantity × price sobre todas las filas. Se calcula en Go con
// decimal en vez de SUM() en SQL porque el precio vive como texto.
func (r *StockRepo) TotalValue() (decimal.Decimal, error) {
	items, err := r.List()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value())
	}
	return total, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// rowScanner abstrae sql.Row y sql.Rows para reutilizar scanStockItem.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStockItem(row rowScanner) (*entity.StockItem, error) {
	var (
		item   entity.StockItem
		price  string
		expiry sql.NullString
	)
	if err := row.Scan(&item.ItemID, &item.Name, &item.Quantity, &price, &item.Location, &expiry); err != nil {
		return nil, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("precio corrupto %q: %w", price, err)
	}
	item.Price = p
	if expiry.Valid && expiry.String != "" {
		t, err := time.Parse(entity.ExpiryDateLayout, expiry.String)
		if err != nil {
			return nil, fmt.Errorf("fecha de vencimiento corrupta %q: %w", expiry.String, err)
		}
		item.ExpiryDate = &t
	}
	return &item, nil
}

func collectStockItems(rows *sql.Rows) ([]*entity.StockItem, error) {
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func expiryToDB(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(entity.ExpiryDateLayout)
}
