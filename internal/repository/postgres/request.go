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

type patientServiceRequestRepository struct {
	crud[model.PatientServiceRequest]
}

func NewPatientServiceRequestRepository(db *sqlx.DB, m *metrics.Metrics) repository.PatientServiceRequestRepository {
	return &patientServiceRequestRepository{
		newCRUD[model.PatientServiceRequest](db, m, "patient_service_requests", "patient service request"),
	}
}

func (r *patientServiceRequestRepository) Create(ctx context.Context, req *model.PatientServiceRequest) error {
	query := `
		INSERT INTO patient_service_requests (
			owner_national_code, using_residence, number_of_woman, number_of_man,
			explain, needed_service, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id
	`
	req.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		req.OwnerNationalCode,
		req.UsingResidence,
		req.NumberOfWoman,
		req.NumberOfMan,
		req.Explain,
		req.NeededService,
		req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("failed to create patient service request: %w", err)
	}
	return nil
}

type consultationRequestRepository struct {
	crud[model.ConsultationRequest]
}

func NewConsultationRequestRepository(db *sqlx.DB, m *metrics.Metrics) repository.ConsultationRequestRepository {
	return &consultationRequestRepository{
		newCRUD[model.ConsultationRequest](db, m, "consultation_requests", "consultation request"),
	}
}

func (r *consultationRequestRepository) Create(ctx context.Context, req *model.ConsultationRequest) error {
	query := `
		INSERT INTO consultation_requests (
			owner_national_code, subject, description, consultation_type,
			preferred_date, preferred_time, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id
	`
	req.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		req.OwnerNationalCode,
		req.Subject,
		req.Description,
		req.ConsultationType,
		req.PreferredDate,
		req.PreferredTime,
		req.Status,
		req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("failed to create consultation request: %w", err)
	}
	return nil
}
