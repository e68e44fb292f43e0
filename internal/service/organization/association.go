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

type AssociationService interface {
	CreateAssociation(ctx context.Context, req *model.CreateAssociationRequest, logo *multipart.FileHeader) (*model.Association, error)
	GetAssociation(ctx context.Context, id int64) (*model.Association, error)
	ListAssociations(ctx context.Context, f model.ListFilter) ([]*model.Association, model.PageInfo, error)
	UpdateAssociation(ctx context.Context, id int64, req *model.UpdateAssociationRequest, logo *multipart.FileHeader) (*model.Association, error)
	DeleteAssociation(ctx context.Context, id int64) error
}

type associationService struct {
	repo     repository.AssociationRepository
	files    storage.Store
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewAssociationService(repo repository.AssociationRepository, files storage.Store,
	validate *validator.Validate, emitter *event.Emitter) AssociationService {
	return &associationService{repo: repo, files: files, validate: validate, emitter: emitter}
}

func (s *associationService) CreateAssociation(ctx context.Context, req *model.CreateAssociationRequest, logo *multipart.FileHeader) (*model.Association, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	association := &model.Association{
		Name:                  req.Name,
		Type:                  req.Type,
		MainActivityArea:      req.MainActivityArea,
		MissionAndVision:      req.MissionAndVision,
		EstablishmentDate:     req.EstablishmentDate,
		RegistrationNumber:    req.RegistrationNumber,
		ContactPhoneNumber:    req.ContactPhoneNumber,
		Email:                 req.Email,
		WebsiteOrSocialPage:   req.WebsiteOrSocialPage,
		State:                 req.State,
		City:                  req.City,
		County:                req.County,
		AddressDetail:         req.AddressDetail,
		HeadPersonName:        req.HeadPersonName,
		HeadPersonPhone:       req.HeadPersonPhone,
		EstimatedMembersCount: req.EstimatedMembersCount,
		MembershipProcess:     req.MembershipProcess,
		CurrentNeeds:          req.CurrentNeeds,
		Description:           req.Description,
		Status:                model.StatusPendingApproval,
	}
	if logo != nil {
		url, err := s.files.Save(logo, "associations")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		association.Logo = &url
	}

	if err := s.repo.Create(ctx, association); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.emitter.Emit(ctx, "association", "created", association)
	return association, nil
}

func (s *associationService) GetAssociation(ctx context.Context, id int64) (*model.Association, error) {
	return s.repo.Get(ctx, id)
}

func (s *associationService) ListAssociations(ctx context.Context, f model.ListFilter) ([]*model.Association, model.PageInfo, error) {
	f.Normalize()
	associations, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return associations, model.NewPageInfo(total, f.Pagination), nil
}

func (s *associationService) UpdateAssociation(ctx context.Context, id int64, req *model.UpdateAssociationRequest, logo *multipart.FileHeader) (*model.Association, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	set := model.PatchMap(req)
	if logo != nil {
		url, err := s.files.Save(logo, "associations")
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
	s.emitter.Emit(ctx, "association", "updated", updated)
	return updated, nil
}

func (s *associationService) DeleteAssociation(ctx context.Context, id int64) error {
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
	s.emitter.Emit(ctx, "association", "deleted", map[string]int64{"id": id})
	return nil
}
