package doctor

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

type DoctorService interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (*model.Doctor, error)
	ListDoctors(ctx context.Context, f model.ListFilter) ([]*model.Doctor, model.PageInfo, error)
	UpdateDoctor(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id int64) error
}

type Service struct {
	repo     repository.DoctorRepository
	owners   repository.OwnerRepository
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewService(repo repository.DoctorRepository, owners repository.OwnerRepository,
	validate *validator.Validate, emitter *event.Emitter) *Service {
	return &Service{repo: repo, owners: owners, validate: validate, emitter: emitter}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	o := owner.FromInput(req.OwnerInput)
	if err := s.owners.Upsert(ctx, o); err != nil {
		return nil, apperrors.Internal(err)
	}

	doctor := &model.Doctor{
		OwnerNationalCode: o.NationalCode,
		FatherName:        req.FatherName,
		MedicalCode:       req.MedicalCode,
		SecPhoneNumber:    req.SecPhoneNumber,
		Specialty:         req.Specialty,
		Services:          req.Services,
		CollabType:        req.CollabType,
		Contribution:      req.Contribution,
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, apperrors.Internal(err)
	}
	doctor.Owner = o

	s.emitter.Emit(ctx, "doctor", "created", doctor)
	return doctor, nil
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	o, err := s.owners.GetByNationalCode(ctx, doctor.OwnerNationalCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}
	doctor.Owner = o
	return doctor, nil
}

func (s *Service) ListDoctors(ctx context.Context, f model.ListFilter) ([]*model.Doctor, model.PageInfo, error) {
	f.Normalize()
	doctors, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	err = owner.Attach(ctx, s.owners, doctors,
		func(d *model.Doctor) string { return d.OwnerNationalCode },
		func(d *model.Doctor, o *model.Owner) { d.Owner = o })
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return doctors, model.NewPageInfo(total, f.Pagination), nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
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

	updated, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "doctor", "updated", updated)
	return updated, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitter.Emit(ctx, "doctor", "deleted", map[string]int64{"id": id})
	return nil
}
