package consultation

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	"github.com/hamyaran/admin-api/internal/service/event"
	"github.com/hamyaran/admin-api/internal/service/owner"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
	"github.com/hamyaran/admin-api/pkg/logger"
	"github.com/hamyaran/admin-api/pkg/mailer"
	"github.com/hamyaran/admin-api/pkg/validation"
)

type ConsultationRequestService interface {
	CreateRequest(ctx context.Context, req *model.CreateConsultationRequestRequest) (*model.ConsultationRequest, error)
	GetRequest(ctx context.Context, id int64) (*model.ConsultationRequest, error)
	ListRequests(ctx context.Context, f model.ListFilter) ([]*model.ConsultationRequest, model.PageInfo, error)
	UpdateRequest(ctx context.Context, id int64, req *model.UpdateConsultationRequestRequest) (*model.ConsultationRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
}

type Service struct {
	repo     repository.ConsultationRequestRepository
	patients repository.PatientRepository
	owners   repository.OwnerRepository
	validate *validator.Validate
	emitter  *event.Emitter
	mail     mailer.Mailer
	logger   *logger.Logger
}

func NewService(repo repository.ConsultationRequestRepository, patients repository.PatientRepository,
	owners repository.OwnerRepository, validate *validator.Validate, emitter *event.Emitter,
	mail mailer.Mailer, logger *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		owners:   owners,
		validate: validate,
		emitter:  emitter,
		mail:     mail,
		logger:   logger,
	}
}

// CreateRequest opens a consultation for a registered patient. New requests
// always start out pending; the admin inbox is notified out of band.
func (s *Service) CreateRequest(ctx context.Context, req *model.CreateConsultationRequestRequest) (*model.ConsultationRequest, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}
	if _, err := s.patients.GetByOwnerNationalCode(ctx, req.NationalCode); err != nil {
		return nil, err
	}

	request := &model.ConsultationRequest{
		OwnerNationalCode: req.NationalCode,
		Subject:           req.Subject,
		Description:       req.Description,
		ConsultationType:  req.ConsultationType,
		PreferredDate:     req.PreferredDate,
		PreferredTime:     req.PreferredTime,
		Status:            model.ConsultationStatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.attachOwner(ctx, request); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, "consultation_request", "created", request)
	s.notifyAdmin(request)
	return request, nil
}

func (s *Service) GetRequest(ctx context.Context, id int64) (*model.ConsultationRequest, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachOwner(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *Service) ListRequests(ctx context.Context, f model.ListFilter) ([]*model.ConsultationRequest, model.PageInfo, error) {
	f.Normalize()
	requests, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	err = owner.Attach(ctx, s.owners, requests,
		func(r *model.ConsultationRequest) string { return r.OwnerNationalCode },
		func(r *model.ConsultationRequest, o *model.Owner) { r.Owner = o })
	if err != nil {
		return nil, model.PageInfo{}, err
	}
	return requests, model.NewPageInfo(total, f.Pagination), nil
}

func (s *Service) UpdateRequest(ctx context.Context, id int64, req *model.UpdateConsultationRequestRequest) (*model.ConsultationRequest, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation(validation.Message(err), err)
	}
	if req.Status != nil && !validConsultationStatus(*req.Status) {
		return nil, apperrors.Validation("invalid status", nil)
	}
	if req.ConsultationType != nil && !validConsultationType(*req.ConsultationType) {
		return nil, apperrors.Validation("invalid consultation type", nil)
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
	s.emitter.Emit(ctx, "consultation_request", "updated", updated)
	return updated, nil
}

func (s *Service) DeleteRequest(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitter.Emit(ctx, "consultation_request", "deleted", map[string]int64{"id": id})
	return nil
}

func (s *Service) attachOwner(ctx context.Context, request *model.ConsultationRequest) error {
	o, err := s.owners.GetByNationalCode(ctx, request.OwnerNationalCode)
	if err != nil {
		return fmt.Errorf("failed to load owner: %w", err)
	}
	request.Owner = o
	return nil
}

// notifyAdmin sends the new-request mail in the background. Mail problems
// are logged, never surfaced to the caller.
func (s *Service) notifyAdmin(request *model.ConsultationRequest) {
	if s.mail == nil {
		return
	}
	subject := fmt.Sprintf("New consultation request: %s", request.Subject)
	body := fmt.Sprintf("Request #%d (%s) from %s %s.\n\n%s",
		request.ID, request.ConsultationType,
		request.Owner.FirstName, request.Owner.LastName,
		request.Description)
	go func() {
		if err := s.mail.Notify(subject, body); err != nil {
			s.logger.Error(err, "failed to send consultation notification", "request_id", request.ID)
		}
	}()
}

func validConsultationStatus(s string) bool {
	switch s {
	case model.ConsultationStatusPending, model.ConsultationStatusAccepted,
		model.ConsultationStatusRejected, model.ConsultationStatusDone:
		return true
	}
	return false
}

func validConsultationType(s string) bool {
	switch s {
	case model.ConsultationTypeOnline, model.ConsultationTypeInPerson, model.ConsultationTypePhone:
		return true
	}
	return false
}
