package owner

import (
	"context"
	"fmt"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
)

// FromInput builds the owner row backing a person create payload. The
// username defaults to the national code; admin-created profiles carry no
// login email.
func FromInput(in model.OwnerInput) *model.Owner {
	return &model.Owner{
		Username:     in.NationalCode,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		NationalCode: in.NationalCode,
		Gender:       in.Gender,
		State:        in.State,
		City:         in.City,
		County:       in.County,
		HomeAddress:  in.HomeAddress,
		HowKnow:      in.HowKnow,
		Education:    in.Education,
		UserType:     in.UserType,
	}
}

// Attach loads the owner profiles for a batch of person records in a single
// query and sets them on each record.
func Attach[T any](ctx context.Context, repo repository.OwnerRepository, items []*T,
	code func(*T) string, set func(*T, *model.Owner)) error {

	codes := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		c := code(item)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		codes = append(codes, c)
	}

	owners, err := repo.GetByNationalCodes(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to load owners: %w", err)
	}
	for _, item := range items {
		if o, ok := owners[code(item)]; ok {
			set(item, o)
		}
	}
	return nil
}
