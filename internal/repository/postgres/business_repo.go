package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

const businessColumns = `id, name, gstin, pan, state_code, address, city, pincode, phone, email,
	bank_name, account_number, ifsc, invoice_prefix, next_invoice_seq, created_at, updated_at`

type businessRepo struct {
	db *sqlx.DB
}

// NewBusinessRepo creates a new PostgreSQL-backed BusinessRepository.
func NewBusinessRepo(db *sqlx.DB) port.BusinessRepository {
	return &businessRepo{db: db}
}

func (r *businessRepo) Get(ctx context.Context) (*domain.BusinessProfile, error) {
	var p domain.BusinessProfile
	err := r.db.GetContext(ctx, &p, `SELECT `+businessColumns+` FROM business_profile LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("businessRepo.Get: %w", err)
	}
	return &p, nil
}

func (r *businessRepo) Upsert(ctx context.Context, p *domain.BusinessProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()

	query := `INSERT INTO business_profile (
		id, name, gstin, pan, state_code, address, city, pincode, phone, email,
		bank_name, account_number, ifsc, invoice_prefix, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
	ON CONFLICT (singleton) DO UPDATE SET
		name = EXCLUDED.name, gstin = EXCLUDED.gstin, pan = EXCLUDED.pan,
		state_code = EXCLUDED.state_code, address = EXCLUDED.address, city = EXCLUDED.city,
		pincode = EXCLUDED.pincode, phone = EXCLUDED.phone, email = EXCLUDED.email,
		bank_name = EXCLUDED.bank_name, account_number = EXCLUDED.account_number,
		ifsc = EXCLUDED.ifsc, invoice_prefix = EXCLUDED.invoice_prefix,
		updated_at = EXCLUDED.updated_at
	RETURNING id, next_invoice_seq, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		p.ID, p.Name, p.GSTIN, p.PAN, p.StateCode, p.Address, p.City, p.Pincode, p.Phone, p.Email,
		p.BankName, p.AccountNumber, p.IFSC, p.InvoicePrefix, now,
	).Scan(&p.ID, &p.NextInvoiceSeq, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("businessRepo.Upsert: %w", err)
	}
	return nil
}

func (r *businessRepo) NextInvoiceSeq(ctx context.Context) (seq int, prefix string, err error) {
	// A first call creates the profile with sequence 1 already consumed.
	query := `INSERT INTO business_profile (id, next_invoice_seq, created_at, updated_at)
		VALUES ($1, 2, $2, $2)
		ON CONFLICT (singleton) DO UPDATE SET
			next_invoice_seq = business_profile.next_invoice_seq + 1,
			updated_at = EXCLUDED.updated_at
		RETURNING next_invoice_seq - 1, invoice_prefix`

	err = r.db.QueryRowxContext(ctx, query, uuid.New(), time.Now().UTC()).Scan(&seq, &prefix)
	if err != nil {
		return 0, "", fmt.Errorf("businessRepo.NextInvoiceSeq: %w", err)
	}
	return seq, prefix, nil
}
