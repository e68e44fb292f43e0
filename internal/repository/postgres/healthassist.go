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

type healthAssistRepository struct {
	crud[model.HealthAssist]
}

func NewHealthAssistRepository(db *sqlx.DB, m *metrics.Metrics) repository.HealthAssistRepository {
	return &healthAssistRepository{newCRUD[model.HealthAssist](db, m, "health_assists", "health assist")}
}

func (r *healthAssistRepository) Create(ctx context.Context, assist *model.HealthAssist) error {
	query := `
		INSERT INTO health_assists (
			owner_national_code, presenter_national_code, presenter_first_name,
			presenter_last_name, letter_file, assist_type, assist_description, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id
	`
	assist.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		assist.OwnerNationalCode,
		assist.PresenterNationalCode,
		assist.PresenterFirstName,
		assist.PresenterLastName,
		assist.LetterFile,
		assist.AssistType,
		assist.AssistDescription,
		assist.CreatedAt,
	).Scan(&assist.ID)
	if err != nil {
		return fmt.Errorf("failed to create health assist: %w", err)
	}
	return nil
}
