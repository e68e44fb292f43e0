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

type privateCompanyRepository struct {
	crud[model.PrivateCompany]
}

func NewPrivateCompanyRepository(db *sqlx.DB, m *metrics.Metrics) repository.PrivateCompanyRepository {
	return &privateCompanyRepository{
		newCRUD[model.PrivateCompany](db, m, "private_companies", "private company", "name", "activity", "name_ceo"),
	}
}

func (r *privateCompanyRepository) Create(ctx context.Context, company *model.PrivateCompany) error {
	query := `
		INSERT INTO private_companies (
			name, year_found, license, year_start, year_license, license_reference,
			activity, specialized_area, target_community, shareable_features,
			name_ceo, phone_number_ceo, name_ceo2, phone_number_ceo2,
			land_line_number, state, city, county, residential_address,
			workplace_address, scope_activity, name_representative,
			mobile_representative, membership_request, activity_license,
			collection_logo, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		) RETURNING id
	`
	company.CreatedAt = time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		company.Name,
		company.YearFound,
		company.License,
		company.YearStart,
		company.YearLicense,
		company.LicenseReference,
		company.Activity,
		company.SpecializedArea,
		company.TargetCommunity,
		company.ShareableFeatures,
		company.NameCeo,
		company.PhoneNumberCeo,
		company.NameCeo2,
		company.PhoneNumberCeo2,
		company.LandLineNumber,
		company.State,
		company.City,
		company.County,
		company.ResidentialAddress,
		company.WorkplaceAddress,
		company.ScopeActivity,
		company.NameRepresentative,
		company.MobileRepresentative,
		company.MembershipRequest,
		company.ActivityLicense,
		company.CollectionLogo,
		company.CreatedAt,
	).Scan(&company.ID)
	if err != nil {
		return fmt.Errorf("failed to create private company: %w", err)
	}
	return nil
}
