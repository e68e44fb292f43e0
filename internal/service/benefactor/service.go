package benefactor

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	"github.com/hamyaran/admin-api/internal/service/event"
	"github.com/hamyaran/admin-api/internal/service/owner"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
	"github.com/hamyaran/admin-api/pkg/validation"
)

type BenefactorService interface {
	CreateBenefactor(ctx context.Context, req *model.CreateBenefactorRequest) (*model.Benefactor, error)
	GetBenefactor(ctx context.Context, id int64) (*model.Benefactor, error)
	ListBenefactors(ctx context.Context, f model.ListFilter) ([]*model.Benefactor, model.PageInfo, error)
	UpdateBenefactor(ctx context.Context, id int64, req *model.UpdateBenefactorRequest) (*model.Benefactor, error)
	DeleteBenefactor(ctx context.Context, id int64) error
}

type Service struct {
	repo     repository.BenefactorRepository
	owners   repository.OwnerRepository
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewService(repo repository.BenefactorRepository, owners repository.OwnerRepository,
	validate *validator.Validate, emitter *event.Emitter) *Service {
	return &Service{repo: repo, owners: owners, validate: validate, emitter: emitter}
}

func (s *Service) CreateBenefactor(ctx context.Context, req *model.CreateBenefactorRequest) (*model.Benefactor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	o := owner.FromInput(req.OwnerInput)
	if err := s.owners.Upsert(ctx, o); err != nil {
		return nil, apperrors.Internal(err)
	}

	benefactor := &model.Benefactor{
		OwnerNationalCode: o.NationalCode,
		LandLineNumber:    req.LandLineNumber,
		Contribution:      req.Contribution,
	}
	if err := s.repo.Create(ctx, benefactor); err != nil {
		return nil, apperrors.Internal(err)
	}
	benefactor.Owner = o

	s.emitter.Emit(ctx, "benefactor", "created", benefactor)
	return benefactor, nil
}

func (s *Service) GetBenefactor(ctx context.Context, id int64) (*model.Benefactor, error) {
	benefactor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	o, err := s.owners.GetByNationalCode(ctx, benefactor.OwnerNationalCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}
	benefactor.Owner = o
	return benefactor, nil
}

func (s *Service) ListBenefactors(ctx context.Context, f model.ListFilter) ([]*model.Benefactor, model.PageInfo, error) {
	f.Normalize()
	benefactors, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	err = owner.Attach(ctx, s.owners, benefactors,
		func(b *model.Benefactor) string { return b.OwnerNationalCode },
		func(b *model.Benefactor, o *model.Owner) { b.Owner = o })
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return benefactors, model.NewPageInfo(total, f.Pagination), nil
}

func (s *Service) UpdateBenefactor(ctx context.Context, id int64, req *model.UpdateBenefactorRequest) (*model.Benefactor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if ownerSet := model.PatchMap(&req.OwnerPatch); len(ownerSet) > 0 {
		if err := s.owners.Update(ctx, existing.OwnerNationalCode, ownerSet); err != nil {
			return nil, err
		}
	}
	if set := model.PatchMap(req); len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}

	updated, err := s.GetBenefactor(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "benefactor", "updated", updated)
	return updated, nil
}

func (s *Service) DeleteBenefactor(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitter.Emit(ctx, "benefactor", "deleted", map[string]int64{"id": id})
	return nil
}
