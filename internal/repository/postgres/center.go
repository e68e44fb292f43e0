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

type serviceCenterRepository struct {
	crud[model.ServiceCenter]
}

func NewServiceCenterRepository(db *sqlx.DB, m *metrics.Metrics) repository.ServiceCenterRepository {
	return &serviceCenterRepository{
		newCRUD[model.ServiceCenter](db, m, "service_centers", "service center", "name", "service_category", "city"),
	}
}

func (r *serviceCenterRepository) Create(ctx context.Context, center *model.ServiceCenter) error {
	query := `
		INSERT INTO service_centers (
			name, service_category, detailed_services, email, phone_number,
			state, city, county, address_detail, website, working_hours,
			contact_person_name, contact_person_phone, license_number,
			license_file, service_area, description, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19
		) RETURNING id
	`
	center.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		center.Name,
		center.ServiceCategory,
		center.DetailedServices,
		center.Email,
		center.PhoneNumber,
		center.State,
		center.City,
		center.County,
		center.AddressDetail,
		center.Website,
		center.WorkingHours,
		center.ContactPersonName,
		center.ContactPersonPhone,
		center.LicenseNumber,
		center.LicenseFile,
		center.ServiceArea,
		center.Description,
		center.Status,
		center.CreatedAt,
	).Scan(&center.ID)
	if err != nil {
		return fmt.Errorf("failed to create service center: %w", err)
	}
	return nil
}

type medicalCenterRepository struct {
	crud[model.MedicalCenter]
}

func NewMedicalCenterRepository(db *sqlx.DB, m *metrics.Metrics) repository.MedicalCenterRepository {
	return &medicalCenterRepository{
		newCRUD[model.MedicalCenter](db, m, "medical_centers", "medical center", "name", "type", "city"),
	}
}

func (r *medicalCenterRepository) Create(ctx context.Context, center *model.MedicalCenter) error {
	query := `
		INSERT INTO medical_centers (
			name, type, email, phone_number, state, city, county, address_detail,
			website, services, working_hours, contact_person_name,
			contact_person_phone, license_number, license_file, description,
			status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18
		) RETURNING id
	`
	center.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		center.Name,
		center.Type,
		center.Email,
		center.PhoneNumber,
		center.State,
		center.City,
		center.County,
		center.AddressDetail,
		center.Website,
		center.Services,
		center.WorkingHours,
		center.ContactPersonName,
		center.ContactPersonPhone,
		center.LicenseNumber,
		center.LicenseFile,
		center.Description,
		center.Status,
		center.CreatedAt,
	).Scan(&center.ID)
	if err != nil {
		return fmt.Errorf("failed to create medical center: %w", err)
	}
	return nil
}

type charityCenterRepository struct {
	crud[model.CharityCenter]
}

func NewCharityCenterRepository(db *sqlx.DB, m *metrics.Metrics) repository.CharityCenterRepository {
	return &charityCenterRepository{
		newCRUD[model.CharityCenter](db, m, "charity_centers", "charity center", "name", "main_activity_area", "city"),
	}
}

func (r *charityCenterRepository) Create(ctx context.Context, center *model.CharityCenter) error {
	query := `
		INSERT INTO charity_centers (
			name, main_activity_area, type, registration_number,
			establishment_date, mission_and_goals, email, phone_number, state,
			city, county, address_detail, website, contact_person_name,
			contact_person_phone, current_needs, donation_methods,
			charter_or_license_file, logo, description, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22
		) RETURNING id
	`
	center.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		center.Name,
		center.MainActivityArea,
		center.Type,
		center.RegistrationNumber,
		center.EstablishmentDate,
		center.MissionAndGoals,
		center.Email,
		center.PhoneNumber,
		center.State,
		center.City,
		center.County,
		center.AddressDetail,
		center.Website,
		center.ContactPersonName,
		center.ContactPersonPhone,
		center.CurrentNeeds,
		center.DonationMethods,
		center.CharterOrLicenseFile,
		center.Logo,
		center.Description,
		center.Status,
		center.CreatedAt,
	).Scan(&center.ID)
	if err != nil {
		return fmt.Errorf("failed to create charity center: %w", err)
	}
	return nil
}
