package healthassist

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/go-playground/validator/v10"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	"github.com/hamyaran/admin-api/internal/service/event"
	"github.com/hamyaran/admin-api/internal/service/owner"
	"github.com/hamyaran/admin-api/internal/storage"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
	"github.com/hamyaran/admin-api/pkg/validation"
)

type HealthAssistService interface {
	CreateHealthAssist(ctx context.Context, req *model.CreateHealthAssistRequest, letter *multipart.FileHeader) (*model.HealthAssist, error)
	GetHealthAssist(ctx context.Context, id int64) (*model.HealthAssist, error)
	ListHealthAssists(ctx context.Context, f model.ListFilter) ([]*model.HealthAssist, model.PageInfo, error)
	UpdateHealthAssist(ctx context.Context, id int64, req *model.UpdateHealthAssistRequest, letter *multipart.FileHeader) (*model.HealthAssist, error)
	DeleteHealthAssist(ctx context.Context, id int64) error
}

type Service struct {
	repo     repository.HealthAssistRepository
	owners   repository.OwnerRepository
	files    storage.Store
	validate *validator.Validate
	emitter  *event.Emitter
}

func NewService(repo repository.HealthAssistRepository, owners repository.OwnerRepository,
	files storage.Store, validate *validator.Validate, emitter *event.Emitter) *Service {
	return &Service{repo: repo, owners: owners, files: files, validate: validate, emitter: emitter}
}

func (s *Service) CreateHealthAssist(ctx context.Context, req *model.CreateHealthAssistRequest, letter *multipart.FileHeader) (*model.HealthAssist, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}

	o := owner.FromInput(req.OwnerInput)
	if err := s.owners.Upsert(ctx, o); err != nil {
		return nil, apperrors.Internal(err)
	}

	assist := &model.HealthAssist{
		OwnerNationalCode:     o.NationalCode,
		PresenterNationalCode: req.PresenterNationalCode,
		PresenterFirstName:    req.PresenterFirstName,
		PresenterLastName:     req.PresenterLastName,
		AssistType:            req.AssistType,
		AssistDescription:     req.AssistDescription,
	}
	if letter != nil {
		url, err := s.files.Save(letter, "health-assists")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		assist.LetterFile = &url
	}

	if err := s.repo.Create(ctx, assist); err != nil {
		return nil, apperrors.Internal(err)
	}
	assist.Owner = o

	s.emitter.Emit(ctx, "health_assist", "created", assist)
	return assist, nil
}

func (s *Service) GetHealthAssist(ctx context.Context, id int64) (*model.HealthAssist, error) {
	assist, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	o, err := s.owners.GetByNationalCode(ctx, assist.OwnerNationalCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}
	assist.Owner = o
	return assist, nil
}

func (s *Service) ListHealthAssists(ctx context.Context, f model.ListFilter) ([]*model.HealthAssist, model.PageInfo, error) {
	f.Normalize()
	assists, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	err = owner.Attach(ctx, s.owners, assists,
		func(a *model.HealthAssist) string { return a.OwnerNationalCode },
		func(a *model.HealthAssist, o *model.Owner) { a.Owner = o })
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return assists, model.NewPageInfo(total, f.Pagination), nil
}

// UpdateHealthAssist replaces the introduction letter when a new file is
// part of the form; the previous file is removed from storage afterwards.
func (s *Service) UpdateHealthAssist(ctx context.Context, id int64, req *model.UpdateHealthAssistRequest, letter *multipart.FileHeader) (*model.HealthAssist, error) {
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

	set := model.PatchMap(req)
	if letter != nil {
		url, err := s.files.Save(letter, "health-assists")
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		set["letter_file"] = url
	}
	if len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}
	if letter != nil && existing.LetterFile != nil {
		if err := s.files.Remove(*existing.LetterFile); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	updated, err := s.GetHealthAssist(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitter.Emit(ctx, "health_assist", "updated", updated)
	return updated, nil
}

func (s *Service) DeleteHealthAssist(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if existing.LetterFile != nil {
		if err := s.files.Remove(*existing.LetterFile); err != nil {
			return apperrors.Internal(err)
		}
	}
	s.emitter.Emit(ctx, "health_assist", "deleted", map[string]int64{"id": id})
	return nil
}
