package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

const invoiceSelect = `SELECT
		i.id, i.invoice_number, i.financial_year, i.date, i.due_date,
		i.seller_gstin, i.seller_state_code, i.buyer_id, i.place_of_supply,
		i.status, i.paid_on, i.subtotal, i.cgst, i.sgst, i.igst, i.total,
		i.notes, i.created_at, i.updated_at,
		c.name AS buyer_name, c.gstin AS buyer_gstin, c.state_code AS buyer_state_code
	FROM invoices i
	JOIN customers c ON c.id = i.buyer_id`

const invoiceItemColumns = `id, invoice_id, position, description, hsn_code, unit,
	quantity, rate, gst_rate, amount, tax_amount`

var invoiceSortColumns = map[domain.InvoiceSort]string{
	domain.InvoiceSortDate:   "i.date",
	domain.InvoiceSortTotal:  "i.total",
	domain.InvoiceSortNumber: "i.invoice_number",
}

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO invoices (
			id, invoice_number, financial_year, date, due_date, seller_gstin, seller_state_code,
			buyer_id, place_of_supply, status, paid_on, subtotal, cgst, sgst, igst, total,
			notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		inv.ID, inv.InvoiceNumber, inv.FinancialYear, inv.Date, inv.DueDate, inv.SellerGSTIN, inv.SellerStateCode,
		inv.BuyerID, inv.PlaceOfSupply, inv.Status, inv.PaidOn, inv.Subtotal, inv.CGST, inv.SGST, inv.IGST, inv.Total,
		inv.Notes, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return mapInvoiceWriteError("invoiceRepo.Create", err)
	}

	if err := insertItems(ctx, tx, inv); err != nil {
		return fmt.Errorf("invoiceRepo.Create items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, invoiceSelect+` WHERE i.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &inv.Items,
		`SELECT `+invoiceItemColumns+` FROM invoice_items WHERE invoice_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &inv, nil
}

// buildInvoiceWhere constructs the WHERE clause for invoice listings.
// The clause is empty when the filter has no conditions.
func buildInvoiceWhere(filter *domain.InvoiceFilter) (clause string, args []interface{}) {
	conds := []string{}
	argN := 1

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(s))
			argN++
		}
		conds = append(conds, "i.status IN ("+strings.Join(placeholders, ", ")+")")
	}
	if filter.Query != "" {
		conds = append(conds, fmt.Sprintf("(LOWER(i.invoice_number) LIKE $%d OR LOWER(c.name) LIKE $%d)", argN, argN))
		args = append(args, likePattern(filter.Query))
		argN++
	}
	if filter.DateFrom != nil {
		conds = append(conds, fmt.Sprintf("i.date >= $%d", argN))
		args = append(args, *filter.DateFrom)
		argN++
	}
	if filter.DateTo != nil {
		conds = append(conds, fmt.Sprintf("i.date <= $%d", argN))
		args = append(args, *filter.DateTo)
		argN++
	}
	if filter.CustomerID != nil {
		conds = append(conds, fmt.Sprintf("i.buyer_id = $%d", argN))
		args = append(args, *filter.CustomerID)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func invoiceOrderBy(filter *domain.InvoiceFilter) string {
	col, ok := invoiceSortColumns[filter.SortBy]
	if !ok {
		col = invoiceSortColumns[domain.InvoiceSortDate]
	}
	dir := "DESC"
	if filter.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, i.created_at DESC", col, dir)
}

func (r *invoiceRepo) List(ctx context.Context, filter *domain.InvoiceFilter) ([]domain.Invoice, int, error) {
	whereClause, args := buildInvoiceWhere(filter)

	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM invoices i JOIN customers c ON c.id = i.buyer_id`+whereClause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	query := invoiceSelect + whereClause + invoiceOrderBy(filter)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" OFFSET %d LIMIT %d", filter.Offset, filter.Limit)
	}

	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`UPDATE invoices SET
			financial_year = $1, date = $2, due_date = $3, seller_gstin = $4, seller_state_code = $5,
			buyer_id = $6, place_of_supply = $7, subtotal = $8, cgst = $9, sgst = $10, igst = $11,
			total = $12, notes = $13, updated_at = $14
		 WHERE id = $15`,
		inv.FinancialYear, inv.Date, inv.DueDate, inv.SellerGSTIN, inv.SellerStateCode,
		inv.BuyerID, inv.PlaceOfSupply, inv.Subtotal, inv.CGST, inv.SGST, inv.IGST,
		inv.Total, inv.Notes, inv.UpdatedAt, inv.ID)
	if err != nil {
		return mapInvoiceWriteError("invoiceRepo.Update", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", inv.ID); err != nil {
		return fmt.Errorf("invoiceRepo.Update clear items: %w", err)
	}
	if err := insertItems(ctx, tx, inv); err != nil {
		return fmt.Errorf("invoiceRepo.Update items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paidOn *time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1, paid_on = $2, updated_at = $3 WHERE id = $4`,
		status, paidOn, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// insertItems writes all of inv's items in one statement, assigning ids and
// 1-based positions.
func insertItems(ctx context.Context, tx *sqlx.Tx, inv *domain.Invoice) error {
	if len(inv.Items) == 0 {
		return nil
	}

	const cols = 11
	valueStrings := make([]string, 0, len(inv.Items))
	valueArgs := make([]interface{}, 0, len(inv.Items)*cols)

	for i := range inv.Items {
		it := &inv.Items[i]
		it.ID = uuid.New()
		it.InvoiceID = inv.ID
		it.Position = i + 1

		base := i * cols
		ph := make([]string, cols)
		for j := range ph {
			ph[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(ph, ", ")+")")
		valueArgs = append(valueArgs, it.ID, it.InvoiceID, it.Position, it.Description, it.HSNCode, it.Unit,
			it.Quantity, it.Rate, it.GSTRate, it.Amount, it.TaxAmount)
	}

	query := fmt.Sprintf(`INSERT INTO invoice_items (%s) VALUES %s`,
		invoiceItemColumns, strings.Join(valueStrings, ", "))
	_, err := tx.ExecContext(ctx, query, valueArgs...)
	return err
}

func mapInvoiceWriteError(op string, err error) error {
	switch {
	case isDuplicateKey(err, "invoice_number"):
		return domain.ErrDuplicateInvoiceNo
	case isForeignKeyViolation(err):
		return domain.ErrCustomerNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
