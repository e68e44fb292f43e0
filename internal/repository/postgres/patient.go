package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
	"github.com/hamyaran/admin-api/pkg/metrics"
)

type patientRepository struct {
	crud[model.Patient]
}

func NewPatientRepository(db *sqlx.DB, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{newCRUD[model.Patient](db, m, "patients", "patient")}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			owner_national_code, presenter_national_code, presenter_first_name,
			presenter_last_name, father_name, age, marital_status, head_household,
			number_dependents, family_status, job_status, skill, home_status,
			line_number, organ, bank_card_number, insurance, sickness_description,
			familiar1_name, familiar1_family_name, familiar1_phone_number,
			familiar2_name, familiar2_family_name, familiar2_phone_number,
			national_card_image, national_certificate_image, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		) RETURNING id
	`
	patient.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		patient.OwnerNationalCode,
		patient.PresenterNationalCode,
		patient.PresenterFirstName,
		patient.PresenterLastName,
		patient.FatherName,
		patient.Age,
		patient.MaritalStatus,
		patient.HeadHousehold,
		patient.NumberDependents,
		patient.FamilyStatus,
		patient.JobStatus,
		patient.Skill,
		patient.HomeStatus,
		patient.LineNumber,
		patient.Organ,
		patient.BankCardNumber,
		patient.Insurance,
		patient.SicknessDescription,
		patient.Familiar1Name,
		patient.Familiar1FamilyName,
		patient.Familiar1PhoneNumber,
		patient.Familiar2Name,
		patient.Familiar2FamilyName,
		patient.Familiar2PhoneNumber,
		patient.NationalCardImage,
		patient.NationalCertificateImage,
		patient.CreatedAt,
	).Scan(&patient.ID)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) GetByOwnerNationalCode(ctx context.Context, code string) (*model.Patient, error) {
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient,
		`SELECT * FROM patients WHERE owner_national_code = $1 ORDER BY id DESC LIMIT 1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}
