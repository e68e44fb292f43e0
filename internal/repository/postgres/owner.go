package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
)

type ownerRepository struct {
	db *sqlx.DB
}

func NewOwnerRepository(db *sqlx.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// Upsert creates the owner row or refreshes its profile fields when a row
// with the same national code already exists. The id is filled either way.
func (r *ownerRepository) Upsert(ctx context.Context, owner *model.Owner) error {
	query := `
		INSERT INTO owners (
			username, first_name, last_name, email, phone_number, national_code,
			gender, job, state, city, county, home_address, job_address,
			how_know, education, user_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (national_code) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone_number = EXCLUDED.phone_number,
			gender = EXCLUDED.gender,
			state = EXCLUDED.state,
			city = EXCLUDED.city,
			county = EXCLUDED.county,
			home_address = EXCLUDED.home_address,
			how_know = EXCLUDED.how_know,
			education = EXCLUDED.education,
			user_type = EXCLUDED.user_type
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		owner.Username,
		owner.FirstName,
		owner.LastName,
		owner.Email,
		owner.PhoneNumber,
		owner.NationalCode,
		owner.Gender,
		owner.Job,
		owner.State,
		owner.City,
		owner.County,
		owner.HomeAddress,
		owner.JobAddress,
		owner.HowKnow,
		owner.Education,
		owner.UserType,
	).Scan(&owner.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert owner: %w", err)
	}
	return nil
}

func (r *ownerRepository) GetByNationalCode(ctx context.Context, code string) (*model.Owner, error) {
	var owner model.Owner
	err := r.db.GetContext(ctx, &owner, `SELECT * FROM owners WHERE national_code = $1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("owner", err)
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return &owner, nil
}

// GetByNationalCodes fetches a batch of owners in one round trip, keyed by
// national code. Codes with no row are simply absent from the result.
func (r *ownerRepository) GetByNationalCodes(ctx context.Context, codes []string) (map[string]*model.Owner, error) {
	result := make(map[string]*model.Owner, len(codes))
	if len(codes) == 0 {
		return result, nil
	}
	var owners []*model.Owner
	err := r.db.SelectContext(ctx, &owners,
		`SELECT * FROM owners WHERE national_code = ANY($1)`, pq.Array(codes))
	if err != nil {
		return nil, fmt.Errorf("failed to get owners: %w", err)
	}
	for _, o := range owners {
		result[o.NationalCode] = o
	}
	return result, nil
}

func (r *ownerRepository) Update(ctx context.Context, code string, set map[string]any) error {
	if len(set) == 0 {
		return nil
	}
	cols := make([]string, 0, len(set))
	for col := range set {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	assignments := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, set[col])
	}
	args = append(args, code)

	query := fmt.Sprintf(`UPDATE owners SET %s WHERE national_code = $%d`,
		strings.Join(assignments, ", "), len(cols)+1)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("owner", sql.ErrNoRows)
	}
	return nil
}
