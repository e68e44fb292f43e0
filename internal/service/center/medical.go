package center

import (
	"context"
	"mime/multipart"

	"github.com/go-playground/validator/v10"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	"github.com/hamyaran/admin-api/internal/service/event"
	"github.com/hamyaran/admin-api/internal/storage"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
	"github.com/hamyaran/admin-api/pkg/validation"
)

type MedicalCenterService interface {
	CreateMedicalCenter(ctx context.Context, req *model.CreateMedicalCenterRequest, license *multipart.FileHeader) (*model.MedicalCenter, error)
	GetMedicalCenter(ctx context.Context, id int64) (*model.MedicalCenter, error)
	ListMedicalCenters(ctx context.Context, f model.ListFilter) ([]*model.MedicalCenter, model.PageInfo, error)
	UpdateMedicalCenter(ctx context.Context, id int64, req *model.UpdateMedicalCenterRequest, license *multipart.FileHeader) (*model.MedicalCenter, error)
	DeleteMedicalCenter(ctx context.Context, id int64) error
}

type medicalCenterService struct {
	repo     repository.MedicalCenterRepository
	files    storage.Store
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewMedicalCenterService(repo repository.MedicalCenterRepository, files storage.Store,
	validate *validator.Validate, emitter *event.Emitter) MedicalCenterService {
	return &medicalCenterService{repo: repo, files: files, validate: validate, emitter: emitter}
}

func (s *medicalCenterService) CreateMedicalCenter(ctx context.Context, req *model.CreateMedicalCenterRequest, license *multipart.FileHeader) (*model.MedicalCenter, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	center := &model.MedicalCenter{
		Name:               req.Name,
		Type:               req.Type,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		State:              req.State,
		City:               req.City,
		County:             req.County,
		AddressDetail:      req.AddressDetail,
		Website:            req.Website,
		Services:           req.Services,
		WorkingHours:       req.WorkingHours,
		ContactPersonName:  req.ContactPersonName,
		ContactPersonPhone: req.ContactPersonPhone,
		LicenseNumber:      req.LicenseNumber,
		Description:        req.Description,
		Status:             model.StatusPendingApproval,
	}
	if license != nil {
		url, err := s.files.Save(license, "medical-centers")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		center.LicenseFile = &url
	}

	if err := s.repo.Create(ctx, center); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.emitter.Emit(ctx, "medical_center", "created", center)
	return center, nil
}

func (s *medicalCenterService) GetMedicalCenter(ctx context.Context, id int64) (*model.MedicalCenter, error) {
	return s.repo.Get(ctx, id)
}

func (s *medicalCenterService) ListMedicalCenters(ctx context.Context, f model.ListFilter) ([]*model.MedicalCenter, model.PageInfo, error) {
	f.Normalize()
	centers, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return centers, model.NewPageInfo(total, f.Pagination), nil
}

func (s *medicalCenterService) UpdateMedicalCenter(ctx context.Context, id int64, req *model.UpdateMedicalCenterRequest, license *multipart.FileHeader) (*model.MedicalCenter, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}
	if req.Status != nil && !validStatus(*req.Status) {
		return nil, apperrors.Validation("invalid status", nil)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	set := model.PatchMap(req)
	if license != nil {
		url, err := s.files.Save(license, "medical-centers")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		set["license_file"] = url
	}
	if len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}
	if license != nil && existing.LicenseFile != nil {
		if err := s.files.Remove(*existing.LicenseFile); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "medical_center", "updated", updated)
	return updated, nil
}

func (s *medicalCenterService) DeleteMedicalCenter(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if existing.LicenseFile != nil {
		if err := s.files.Remove(*existing.LicenseFile); err != nil {
			return apperrors.Internal(err)
		}
	}
	s.emitter.Emit(ctx, "medical_center", "deleted", map[string]int64{"id": id})
	return nil
}
