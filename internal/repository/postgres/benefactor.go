package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	"github.com/hamyaran/admin-api/pkg/metrics"
)

type benefactorRepository struct {
	crud[model.Benefactor]
}

func NewBenefactorRepository(db *sqlx.DB, m *metrics.Metrics) repository.BenefactorRepository {
	return &benefactorRepository{newCRUD[model.Benefactor](db, m, "benefactors", "benefactor")}
}

func (r *benefactorRepository) Create(ctx context.Context, benefactor *model.Benefactor) error {
	query := `
		INSERT INTO benefactors (
			owner_national_code, land_line_number, contribution, created_at
		) VALUES ($1, $2, $3, $4) RETURNING id
	`
	benefactor.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		benefactor.OwnerNationalCode,
		benefactor.LandLineNumber,
		benefactor.Contribution,
		benefactor.CreatedAt,
	).Scan(&benefactor.ID)
	if err != nil {
		return fmt.Errorf("failed to create benefactor: %w", err)
	}
	return nil
}
