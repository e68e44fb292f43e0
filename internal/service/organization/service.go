package organization

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

type GovernmentOrganizationService interface {
	CreateGovernmentOrganization(ctx context.Context, req *model.CreateGovernmentOrganizationRequest, logo *multipart.FileHeader) (*model.GovernmentOrganization, error)
	GetGovernmentOrganization(ctx context.Context, id int64) (*model.GovernmentOrganization, error)
	ListGovernmentOrganizations(ctx context.Context, f model.ListFilter) ([]*model.GovernmentOrganization, model.PageInfo, error)
	UpdateGovernmentOrganization(ctx context.Context, id int64, req *model.UpdateGovernmentOrganizationRequest, logo *multipart.FileHeader) (*model.GovernmentOrganization, error)
	DeleteGovernmentOrganization(ctx context.Context, id int64) error
}

type governmentOrganizationService struct {
	repo     repository.GovernmentOrganizationRepository
	files    storage.Store
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewGovernmentOrganizationService(repo repository.GovernmentOrganizationRepository, files storage.Store,
	validate *validator.Validate, emitter *event.Emitter) GovernmentOrganizationService {
	return &governmentOrganizationService{repo: repo, files: files, validate: validate, emitter: emitter}
}

func (s *governmentOrganizationService) CreateGovernmentOrganization(ctx context.Context, req *model.CreateGovernmentOrganizationRequest, logo *multipart.FileHeader) (*model.GovernmentOrganization, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	org := &model.GovernmentOrganization{
		Name:                 req.Name,
		ParentMinistryOrBody: req.ParentMinistryOrBody,
		Type:                 req.Type,
		ActivityArea:         req.ActivityArea,
		OfficialWebsite:      req.OfficialWebsite,
		MainPhoneNumber:      req.MainPhoneNumber,
		FaxNumber:            req.FaxNumber,
		OfficialEmail:        req.OfficialEmail,
		State:                req.State,
		City:                 req.City,
		County:               req.County,
		CentralAddressDetail: req.CentralAddressDetail,
		HeadPersonName:       req.HeadPersonName,
		LiaisonPersonName:    req.LiaisonPersonName,
		LiaisonPersonPhone:   req.LiaisonPersonPhone,
		LiaisonPersonEmail:   req.LiaisonPersonEmail,
		CollaborationLevel:   req.CollaborationLevel,
		Description:          req.Description,
		Status:               model.StatusPendingApproval,
	}
	if logo != nil {
		url, err := s.files.Save(logo, "government-organizations")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		org.Logo = &url
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.emitter.Emit(ctx, "government_organization", "created", org)
	return org, nil
}

func (s *governmentOrganizationService) GetGovernmentOrganization(ctx context.Context, id int64) (*model.GovernmentOrganization, error) {
	return s.repo.Get(ctx, id)
}

func (s *governmentOrganizationService) ListGovernmentOrganizations(ctx context.Context, f model.ListFilter) ([]*model.GovernmentOrganization, model.PageInfo, error) {
	f.Normalize()
	orgs, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return orgs, model.NewPageInfo(total, f.Pagination), nil
}

func (s *governmentOrganizationService) UpdateGovernmentOrganization(ctx context.Context, id int64, req *model.UpdateGovernmentOrganizationRequest, logo *multipart.FileHeader) (*model.GovernmentOrganization, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	set := model.PatchMap(req)
	if logo != nil {
		url, err := s.files.Save(logo, "government-organizations")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		set["logo"] = url
	}
	if len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}
	if logo != nil && existing.Logo != nil {
		if err := s.files.Remove(*existing.Logo); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "government_organization", "updated", updated)
	return updated, nil
}

func (s *governmentOrganizationService) DeleteGovernmentOrganization(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if existing.Logo != nil {
		if err := s.files.Remove(*existing.Logo); err != nil {
			return apperrors.Internal(err)
		}
	}
	s.emitter.Emit(ctx, "government_organization", "deleted", map[string]int64{"id": id})
	return nil
}
