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

type governmentOrganizationRepository struct {
	crud[model.GovernmentOrganization]
}

func NewGovernmentOrganizationRepository(db *sqlx.DB, m *metrics.Metrics) repository.GovernmentOrganizationRepository {
	return &governmentOrganizationRepository{
		newCRUD[model.GovernmentOrganization](db, m, "government_organizations", "government organization",
			"name", "activity_area", "city"),
	}
}

func (r *governmentOrganizationRepository) Create(ctx context.Context, org *model.GovernmentOrganization) error {
	query := `
		INSERT INTO government_organizations (
			name, parent_ministry_or_body, type, activity_area, official_website,
			main_phone_number, fax_number, official_email, state, city, county,
			central_address_detail, head_person_name, liaison_person_name,
			liaison_person_phone, liaison_person_email, collaboration_level,
			description, logo, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21
		) RETURNING id
	`
	org.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		org.Name,
		org.ParentMinistryOrBody,
		org.Type,
		org.ActivityArea,
		org.OfficialWebsite,
		org.MainPhoneNumber,
		org.FaxNumber,
		org.OfficialEmail,
		org.State,
		org.City,
		org.County,
		org.CentralAddressDetail,
		org.HeadPersonName,
		org.LiaisonPersonName,
		org.LiaisonPersonPhone,
		org.LiaisonPersonEmail,
		org.CollaborationLevel,
		org.Description,
		org.Logo,
		org.Status,
		org.CreatedAt,
	).Scan(&org.ID)
	if err != nil {
		return fmt.Errorf("failed to create government organization: %w", err)
	}
	return nil
}

type associationRepository struct {
	crud[model.Association]
}

func NewAssociationRepository(db *sqlx.DB, m *metrics.Metrics) repository.AssociationRepository {
	return &associationRepository{
		newCRUD[model.Association](db, m, "associations", "association",
			"name", "main_activity_area", "city"),
	}
}

func (r *associationRepository) Create(ctx context.Context, association *model.Association) error {
	query := `
		INSERT INTO associations (
			name, type, main_activity_area, mission_and_vision,
			establishment_date, registration_number, contact_phone_number,
			email, website_or_social_page, state, city, county, address_detail,
			head_person_name, head_person_phone, estimated_members_count,
			membership_process, current_needs, logo, description, status,
			created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22
		) RETURNING id
	`
	association.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		association.Name,
		association.Type,
		association.MainActivityArea,
		association.MissionAndVision,
		association.EstablishmentDate,
		association.RegistrationNumber,
		association.ContactPhoneNumber,
		association.Email,
		association.WebsiteOrSocialPage,
		association.State,
		association.City,
		association.County,
		association.AddressDetail,
		association.HeadPersonName,
		association.HeadPersonPhone,
		association.EstimatedMembersCount,
		association.MembershipProcess,
		association.CurrentNeeds,
		association.Logo,
		association.Description,
		association.Status,
		association.CreatedAt,
	).Scan(&association.ID)
	if err != nil {
		return fmt.Errorf("failed to create association: %w", err)
	}
	return nil
}
