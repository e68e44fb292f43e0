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

type doctorRepository struct {
	crud[model.Doctor]
}

func NewDoctorRepository(db *sqlx.DB, m *metrics.Metrics) repository.DoctorRepository {
	return &doctorRepository{newCRUD[model.Doctor](db, m, "doctors", "doctor")}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (
			owner_national_code, father_name, medical_code, sec_phone_number,
			specialty, services, collab_type, contribution, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id
	`
	doctor.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		doctor.OwnerNationalCode,
		doctor.FatherName,
		doctor.MedicalCode,
		doctor.SecPhoneNumber,
		doctor.Specialty,
		doctor.Services,
		doctor.CollabType,
		doctor.Contribution,
		doctor.CreatedAt,
	).Scan(&doctor.ID)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}
