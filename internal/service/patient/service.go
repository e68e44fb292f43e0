package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	cache "github.com/patrickmn/go-cache"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	"github.com/hamyaran/admin-api/internal/service/event"
	"github.com/hamyaran/admin-api/internal/service/owner"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
	"github.com/hamyaran/admin-api/pkg/validation"
)

type PatientService interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	GetPatientByNationalCode(ctx context.Context, code string) (*model.Patient, error)
	ListPatients(ctx context.Context, f model.ListFilter) ([]*model.Patient, model.PageInfo, error)
	UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

type Service struct {
	repo     repository.PatientRepository
	owners   repository.OwnerRepository
	validate *validator.Validate
	emitter  *event.Emitter
	byCode   *cache.Cache
}

func NewService(repo repository.PatientRepository, owners repository.OwnerRepository,
	validate *validator.Validate, emitter *event.Emitter) *Service {
	return &Service{
		repo:     repo,
		owners:   owners,
		validate: validate,
		emitter:  emitter,
		byCode:   cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	o := owner.FromInput(req.OwnerInput)
	if err := s.owners.Upsert(ctx, o); err != nil {
		return nil, apperrors.Internal(err)
	}

	patient := &model.Patient{
		OwnerNationalCode:     o.NationalCode,
		PresenterNationalCode: req.PresenterNationalCode,
		PresenterFirstName:    req.PresenterFirstName,
		PresenterLastName:     req.PresenterLastName,
		FatherName:            req.FatherName,
		Age:                   req.Age,
		MaritalStatus:         req.MaritalStatus,
		HeadHousehold:         req.HeadHousehold,
		NumberDependents:      req.NumberDependents,
		FamilyStatus:          req.FamilyStatus,
		JobStatus:             req.JobStatus,
		Skill:                 req.Skill,
		HomeStatus:            req.HomeStatus,
		LineNumber:            req.LineNumber,
		Organ:                 req.Organ,
		BankCardNumber:        req.BankCardNumber,
		Insurance:             req.Insurance,
		SicknessDescription:   req.SicknessDescription,
		Familiar1Name:         req.Familiar1Name,
		Familiar1FamilyName:   req.Familiar1FamilyName,
		Familiar1PhoneNumber:  req.Familiar1PhoneNumber,
		Familiar2Name:         req.Familiar2Name,
		Familiar2FamilyName:   req.Familiar2FamilyName,
		Familiar2PhoneNumber:  req.Familiar2PhoneNumber,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, apperrors.Internal(err)
	}
	patient.Owner = o

	s.byCode.Delete(o.NationalCode)
	s.emitter.Emit(ctx, "patient", "created", patient)
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachOwner(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetPatientByNationalCode serves the lookup used by the service-request
// forms. Hits are cached briefly because the admin UI fires the lookup on
// every form open.
func (s *Service) GetPatientByNationalCode(ctx context.Context, code string) (*model.Patient, error) {
	if cached, ok := s.byCode.Get(code); ok {
		return cached.(*model.Patient), nil
	}
	patient, err := s.repo.GetByOwnerNationalCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.attachOwner(ctx, patient); err != nil {
		return nil, err
	}
	s.byCode.SetDefault(code, patient)
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context, f model.ListFilter) ([]*model.Patient, model.PageInfo, error) {
	f.Normalize()
	patients, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	err = owner.Attach(ctx, s.owners, patients,
		func(p *model.Patient) string { return p.OwnerNationalCode },
		func(p *model.Patient, o *model.Owner) { p.Owner = o })
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return patients, model.NewPageInfo(total, f.Pagination), nil
}

func (s *Service) UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
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

	s.byCode.Delete(existing.OwnerNationalCode)
	updated, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "patient", "updated", updated)
	return updated, nil
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.byCode.Delete(existing.OwnerNationalCode)
	s.emitter.Emit(ctx, "patient", "deleted", map[string]int64{"id": id})
	return nil
}

func (s *Service) attachOwner(ctx context.Context, patient *model.Patient) error {
	o, err := s.owners.GetByNationalCode(ctx, patient.OwnerNationalCode)
	if err != nil {
		return fmt.Errorf("failed to load owner: %w", err)
	}
	patient.Owner = o
	return nil
}
