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

// CharityFiles carries the optional multipart attachments of the charity
// center form.
type CharityFiles struct {
	CharterOrLicense *multipart.FileHeader
	Logo             *multipart.FileHeader
}

type CharityCenterService interface {
	CreateCharityCenter(ctx context.Context, req *model.CreateCharityCenterRequest, files CharityFiles) (*model.CharityCenter, error)
	GetCharityCenter(ctx context.Context, id int64) (*model.CharityCenter, error)
	ListCharityCenters(ctx context.Context, f model.ListFilter) ([]*model.CharityCenter, model.PageInfo, error)
	UpdateCharityCenter(ctx context.Context, id int64, req *model.UpdateCharityCenterRequest, files CharityFiles) (*model.CharityCenter, error)
	DeleteCharityCenter(ctx context.Context, id int64) error
}

type charityCenterService struct {
	repo     repository.CharityCenterRepository
	files    storage.Store
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewCharityCenterService(repo repository.CharityCenterRepository, files storage.Store,
	validate *validator.Validate, emitter *event.Emitter) CharityCenterService {
	return &charityCenterService{repo: repo, files: files, validate: validate, emitter: emitter}
}

func (s *charityCenterService) CreateCharityCenter(ctx context.Context, req *model.CreateCharityCenterRequest, files CharityFiles) (*model.CharityCenter, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	center := &model.CharityCenter{
		Name:               req.Name,
		MainActivityArea:   req.MainActivityArea,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		EstablishmentDate:  req.EstablishmentDate,
		MissionAndGoals:    req.MissionAndGoals,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		State:              req.State,
		City:               req.City,
		County:             req.County,
		AddressDetail:      req.AddressDetail,
		Website:            req.Website,
		ContactPersonName:  req.ContactPersonName,
		ContactPersonPhone: req.ContactPersonPhone,
		CurrentNeeds:       req.CurrentNeeds,
		DonationMethods:    req.DonationMethods,
		Description:        req.Description,
		Status:             model.StatusPendingApproval,
	}
	if files.CharterOrLicense != nil {
		url, err := s.files.Save(files.CharterOrLicense, "charity-centers")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		center.CharterOrLicenseFile = &url
	}
	if files.Logo != nil {
		url, err := s.files.Save(files.Logo, "charity-centers")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		center.Logo = &url
	}

	if err := s.repo.Create(ctx, center); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.emitter.Emit(ctx, "charity_center", "created", center)
	return center, nil
}

func (s *charityCenterService) GetCharityCenter(ctx context.Context, id int64) (*model.CharityCenter, error) {
	return s.repo.Get(ctx, id)
}

func (s *charityCenterService) ListCharityCenters(ctx context.Context, f model.ListFilter) ([]*model.CharityCenter, model.PageInfo, error) {
	f.Normalize()
	centers, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return centers, model.NewPageInfo(total, f.Pagination), nil
}

func (s *charityCenterService) UpdateCharityCenter(ctx context.Context, id int64, req *model.UpdateCharityCenterRequest, files CharityFiles) (*model.CharityCenter, error) {
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
	var replaced []string
	if files.CharterOrLicense != nil {
		url, err := s.files.Save(files.CharterOrLicense, "charity-centers")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		set["charter_or_license_file"] = url
		if existing.CharterOrLicenseFile != nil {
			replaced = append(replaced, *existing.CharterOrLicenseFile)
		}
	}
	if files.Logo != nil {
		url, err := s.files.Save(files.Logo, "charity-centers")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		set["logo"] = url
		if existing.Logo != nil {
			replaced = append(replaced, *existing.Logo)
		}
	}

	if len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}
	for _, url := range replaced {
		if err := s.files.Remove(url); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "charity_center", "updated", updated)
	return updated, nil
}

func (s *charityCenterService) DeleteCharityCenter(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	for _, url := range []*string{existing.CharterOrLicenseFile, existing.Logo} {
		if url == nil {
			continue
		}
		if err := s.files.Remove(*url); err != nil {
			return apperrors.Internal(err)
		}
	}
	s.emitter.Emit(ctx, "charity_center", "deleted", map[string]int64{"id": id})
	return nil
}
