package company

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

// Files carries the optional multipart attachments of a company form.
type Files struct {
	MembershipRequest *multipart.FileHeader
	ActivityLicense   *multipart.FileHeader
	CollectionLogo    *multipart.FileHeader
}

type PrivateCompanyService interface {
	CreatePrivateCompany(ctx context.Context, req *model.CreatePrivateCompanyRequest, files Files) (*model.PrivateCompany, error)
	GetPrivateCompany(ctx context.Context, id int64) (*model.PrivateCompany, error)
	ListPrivateCompanies(ctx context.Context, f model.ListFilter) ([]*model.PrivateCompany, model.PageInfo, error)
	UpdatePrivateCompany(ctx context.Context, id int64, req *model.UpdatePrivateCompanyRequest, files Files) (*model.PrivateCompany, error)
	DeletePrivateCompany(ctx context.Context, id int64) error
}

type Service struct {
	repo     repository.PrivateCompanyRepository
	files    storage.Store
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewService(repo repository.PrivateCompanyRepository, files storage.Store,
	validate *validator.Validate, emitter *event.Emitter) *Service {
	return &Service{repo: repo, files: files, validate: validate, emitter: emitter}
}

func (s *Service) CreatePrivateCompany(ctx context.Context, req *model.CreatePrivateCompanyRequest, files Files) (*model.PrivateCompany, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(errs[0].Message, nil)
	}

	company := &model.PrivateCompany{
		Name:                 req.Name,
		YearFound:            req.YearFound,
		License:              req.License,
		YearStart:            req.YearStart,
		YearLicense:          req.YearLicense,
		LicenseReference:     req.LicenseReference,
		Activity:             req.Activity,
		SpecializedArea:      req.SpecializedArea,
		TargetCommunity:      req.TargetCommunity,
		ShareableFeatures:    req.ShareableFeatures,
		NameCeo:              req.NameCeo,
		PhoneNumberCeo:       req.PhoneNumberCeo,
		NameCeo2:             req.NameCeo2,
		PhoneNumberCeo2:      req.PhoneNumberCeo2,
		LandLineNumber:       req.LandLineNumber,
		State:                req.State,
		City:                 req.City,
		County:               req.County,
		ResidentialAddress:   req.ResidentialAddress,
		WorkplaceAddress:     req.WorkplaceAddress,
		ScopeActivity:        req.ScopeActivity,
		NameRepresentative:   req.NameRepresentative,
		MobileRepresentative: req.MobileRepresentative,
	}

	if err := s.saveFile(files.MembershipRequest, &company.MembershipRequest); err != nil {
		return nil, err
	}
	if err := s.saveFile(files.ActivityLicense, &company.ActivityLicense); err != nil {
		return nil, err
	}
	if err := s.saveFile(files.CollectionLogo, &company.CollectionLogo); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.emitter.Emit(ctx, "private_company", "created", company)
	return company, nil
}

func (s *Service) GetPrivateCompany(ctx context.Context, id int64) (*model.PrivateCompany, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListPrivateCompanies(ctx context.Context, f model.ListFilter) ([]*model.PrivateCompany, model.PageInfo, error) {
	f.Normalize()
	companies, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return companies, model.NewPageInfo(total, f.Pagination), nil
}

func (s *Service) UpdatePrivateCompany(ctx context.Context, id int64, req *model.UpdatePrivateCompanyRequest, files Files) (*model.PrivateCompany, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := req.ValidateAgainst(existing); len(errs) > 0 {
		return nil, apperrors.Validation(errs[0].Message, nil)
	}

	set := model.PatchMap(req)
	var replaced []string
	addFile := func(fh *multipart.FileHeader, col string, old *string) error {
		if fh == nil {
			return nil
		}
		url, err := s.files.Save(fh, "private-companies")
		if err != nil {
			return apperrors.Internal(err)
		}
		set[col] = url
		if old != nil {
			replaced = append(replaced, *old)
		}
		return nil
	}
	if err := addFile(files.MembershipRequest, "membership_request", existing.MembershipRequest); err != nil {
		return nil, err
	}
	if err := addFile(files.ActivityLicense, "activity_license", existing.ActivityLicense); err != nil {
		return nil, err
	}
	if err := addFile(files.CollectionLogo, "collection_logo", existing.CollectionLogo); err != nil {
		return nil, err
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
	s.emitter.Emit(ctx, "private_company", "updated", updated)
	return updated, nil
}

func (s *Service) DeletePrivateCompany(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	for _, url := range []*string{existing.MembershipRequest, existing.ActivityLicense, existing.CollectionLogo} {
		if url == nil {
			continue
		}
		if err := s.files.Remove(*url); err != nil {
			return apperrors.Internal(err)
		}
	}
	s.emitter.Emit(ctx, "private_company", "deleted", map[string]int64{"id": id})
	return nil
}

func (s *Service) saveFile(fh *multipart.FileHeader, dst **string) error {
	if fh == nil {
		return nil
	}
	url, err := s.files.Save(fh, "private-companies")
	if err != nil {
		return apperrors.Internal(err)
	}
	*dst = &url
	return nil
}
