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

// New centers start life awaiting review; the status is only changed through
// explicit updates.

type ServiceCenterService interface {
	CreateServiceCenter(ctx context.Context, req *model.CreateServiceCenterRequest, license *multipart.FileHeader) (*model.ServiceCenter, error)
	GetServiceCenter(ctx context.Context, id int64) (*model.ServiceCenter, error)
	ListServiceCenters(ctx context.Context, f model.ListFilter) ([]*model.ServiceCenter, model.PageInfo, error)
	UpdateServiceCenter(ctx context.Context, id int64, req *model.UpdateServiceCenterRequest, license *multipart.FileHeader) (*model.ServiceCenter, error)
	DeleteServiceCenter(ctx context.Context, id int64) error
}

type serviceCenterService struct {
	repo     repository.ServiceCenterRepository
	files    storage.Store
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewServiceCenterService(repo repository.ServiceCenterRepository, files storage.Store,
	validate *validator.Validate, emitter *event.Emitter) ServiceCenterService {
	return &serviceCenterService{repo: repo, files: files, validate: validate, emitter: emitter}
}

func (s *serviceCenterService) CreateServiceCenter(ctx context.Context, req *model.CreateServiceCenterRequest, license *multipart.FileHeader) (*model.ServiceCenter, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	center := &model.ServiceCenter{
		Name:               req.Name,
		ServiceCategory:    req.ServiceCategory,
		DetailedServices:   req.DetailedServices,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		State:              req.State,
		City:               req.City,
		County:             req.County,
		AddressDetail:      req.AddressDetail,
		Website:            req.Website,
		WorkingHours:       req.WorkingHours,
		ContactPersonName:  req.ContactPersonName,
		ContactPersonPhone: req.ContactPersonPhone,
		LicenseNumber:      req.LicenseNumber,
		ServiceArea:        req.ServiceArea,
		Description:        req.Description,
		Status:             model.StatusPendingApproval,
	}
	if license != nil {
		url, err := s.files.Save(license, "service-centers")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		center.LicenseFile = &url
	}

	if err := s.repo.Create(ctx, center); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.emitter.Emit(ctx, "service_center", "created", center)
	return center, nil
}

func (s *serviceCenterService) GetServiceCenter(ctx context.Context, id int64) (*model.ServiceCenter, error) {
	return s.repo.Get(ctx, id)
}

func (s *serviceCenterService) ListServiceCenters(ctx context.Context, f model.ListFilter) ([]*model.ServiceCenter, model.PageInfo, error) {
	f.Normalize()
	centers, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return centers, model.NewPageInfo(total, f.Pagination), nil
}

func (s *serviceCenterService) UpdateServiceCenter(ctx context.Context, id int64, req *model.UpdateServiceCenterRequest, license *multipart.FileHeader) (*model.ServiceCenter, error) {
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
		url, err := s.files.Save(license, "service-centers")
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
	s.emitter.Emit(ctx, "service_center", "updated", updated)
	return updated, nil
}

func (s *serviceCenterService) DeleteServiceCenter(ctx context.Context, id int64) error {
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
	s.emitter.Emit(ctx, "service_center", "deleted", map[string]int64{"id": id})
	return nil
}

func validStatus(s string) bool {
	switch s {
	case model.StatusPendingApproval, model.StatusActive, model.StatusInactive:
		return true
	}
	return false
}
