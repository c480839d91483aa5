package escrowrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/pg"
)

const releaseColumns = `payment_id, release_status, freelancer_request, client_approval, auto_release_date, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, release *domain.EscrowRelease) (*domain.EscrowRelease, error) {
	query := `
        INSERT INTO escrow_releases (payment_id, release_status, freelancer_request, client_approval, auto_release_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query,
		release.PaymentID, release.ReleaseStatus, release.FreelancerRequest,
		release.ClientApproval, release.AutoReleaseDate,
	)
	if err := row.Scan(&release.CreatedAt, &release.UpdatedAt); err != nil {
		zap.L().Error("failed to create escrow release", zap.Error(err))
		return nil, err
	}
	return release, nil
}

func (r *Repository) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error) {
	query := `SELECT ` + releaseColumns + ` FROM escrow_releases WHERE payment_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, paymentID))
}

func (r *Repository) GetForUpdate(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error) {
	query := `SELECT ` + releaseColumns + ` FROM escrow_releases WHERE payment_id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, paymentID))
}

func (r *Repository) Update(ctx context.Context, release *domain.EscrowRelease) error {
	query := `
        UPDATE escrow_releases
        SET release_status = $1, freelancer_request = $2, client_approval = $3, updated_at = now()
        WHERE payment_id = $4
    `
	tag, err := r.db.Exec(ctx, query,
		release.ReleaseStatus, release.FreelancerRequest, release.ClientApproval, release.PaymentID,
	)
	if err != nil {
		zap.L().Error("failed to update escrow release", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FindDueForAutoRelease lists releases the background worker may approve:
// requested by the freelancer, still pending, past their auto-release date.
func (r *Repository) FindDueForAutoRelease(ctx context.Context, now time.Time, limit uint32) ([]domain.EscrowRelease, error) {
	query := `
        SELECT ` + releaseColumns + `
        FROM escrow_releases
        WHERE release_status = 'PENDING'
          AND freelancer_request
          AND auto_release_date IS NOT NULL
          AND auto_release_date <= $1
        ORDER BY auto_release_date ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("failed to find due escrow releases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var releases []domain.EscrowRelease
	for rows.Next() {
		var release domain.EscrowRelease
		err := rows.Scan(&release.PaymentID, &release.ReleaseStatus, &release.FreelancerRequest,
			&release.ClientApproval, &release.AutoReleaseDate, &release.CreatedAt, &release.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan escrow release row", zap.Error(err))
			return nil, err
		}
		releases = append(releases, release)
	}
	return releases, rows.Err()
}

func (r *Repository) scanOne(row pgx.Row) (*domain.EscrowRelease, error) {
	var release domain.EscrowRelease
	err := row.Scan(&release.PaymentID, &release.ReleaseStatus, &release.FreelancerRequest,
		&release.ClientApproval, &release.AutoReleaseDate, &release.CreatedAt, &release.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to scan escrow release", zap.Error(err))
		return nil, err
	}
	return &release, nil
}
