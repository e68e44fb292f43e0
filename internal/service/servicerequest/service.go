package servicerequest

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

type PatientServiceRequestService interface {
	CreateRequest(ctx context.Context, req *model.CreatePatientServiceRequestRequest) (*model.PatientServiceRequest, error)
	GetRequest(ctx context.Context, id int64) (*model.PatientServiceRequest, error)
	ListRequests(ctx context.Context, f model.ListFilter) ([]*model.PatientServiceRequest, model.PageInfo, error)
	UpdateRequest(ctx context.Context, id int64, req *model.UpdatePatientServiceRequestRequest) (*model.PatientServiceRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
}

type Service struct {
	repo     repository.PatientServiceRequestRepository
	patients repository.PatientRepository
	owners   repository.OwnerRepository
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewService(repo repository.PatientServiceRequestRepository, patients repository.PatientRepository,
	owners repository.OwnerRepository, validate *validator.Validate, emitter *event.Emitter) *Service {
	return &Service{repo: repo, patients: patients, owners: owners, validate: validate, emitter: emitter}
}

// CreateRequest files a service request for an already-registered patient.
// The national code must resolve to a patient record.
func (s *Service) CreateRequest(ctx context.Context, req *model.CreatePatientServiceRequestRequest) (*model.PatientServiceRequest, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}
	if _, err := s.patients.GetByOwnerNationalCode(ctx, req.NationalCode); err != nil {
		return nil, err
	}

	request := &model.PatientServiceRequest{
		OwnerNationalCode: req.NationalCode,
		UsingResidence:    req.UsingResidence,
		NumberOfWoman:     req.NumberOfWoman,
		NumberOfMan:       req.NumberOfMan,
		Explain:           req.Explain,
		NeededService:     req.NeededService,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.attachOwner(ctx, request); err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "patient_service_request", "created", request)
	return request, nil
}

func (s *Service) GetRequest(ctx context.Context, id int64) (*model.PatientServiceRequest, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachOwner(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *Service) ListRequests(ctx context.Context, f model.ListFilter) ([]*model.PatientServiceRequest, model.PageInfo, error) {
	f.Normalize()
	requests, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	err = owner.Attach(ctx, s.owners, requests,
		func(r *model.PatientServiceRequest) string { return r.OwnerNationalCode },
		func(r *model.PatientServiceRequest, o *model.Owner) { r.Owner = o })
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return requests, model.NewPageInfo(total, f.Pagination), nil
}

func (s *Service) UpdateRequest(ctx context.Context, id int64, req *model.UpdatePatientServiceRequestRequest) (*model.PatientServiceRequest, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}
	if set := model.PatchMap(req); len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}
	updated, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "patient_service_request", "updated", updated)
	return updated, nil
}

func (s *Service) DeleteRequest(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitter.Emit(ctx, "patient_service_request", "deleted", map[string]int64{"id": id})
	return nil
}

func (s *Service) attachOwner(ctx context.Context, request *model.PatientServiceRequest) error {
	o, err := s.owners.GetByNationalCode(ctx, request.OwnerNationalCode)
	if err != nil {
		return fmt.Errorf("failed to load owner: %w", err)
	}
	request.Owner = o
	return nil
}
