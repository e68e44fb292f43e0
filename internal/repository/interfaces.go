package repository

import (
	"context"
	"time"

	"github.com/hamyaran/admin-api/internal/model"
)

// Store is the storage contract shared by every admin resource. Update takes
// a column assignment map so partial updates only touch the supplied fields.
type Store[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, f model.ListFilter) ([]*T, int, error)
	Update(ctx context.Context, id int64, set map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// OwnerRepository manages the shared user profiles the person-like resources
// hang off. Owners are keyed by national code, not id.
type OwnerRepository interface {
	Upsert(ctx context.Context, owner *model.Owner) error
	GetByNationalCode(ctx context.Context, code string) (*model.Owner, error)
	GetByNationalCodes(ctx context.Context, codes []string) (map[string]*model.Owner, error)
	Update(ctx context.Context, code string, set map[string]any) error
}

type PatientRepository interface {
	Store[model.Patient]
	Create(ctx context.Context, patient *model.Patient) error
	GetByOwnerNationalCode(ctx context.Context, code string) (*model.Patient, error)
}

type BenefactorRepository interface {
	Store[model.Benefactor]
	Create(ctx context.Context, benefactor *model.Benefactor) error
}

type DoctorRepository interface {
	Store[model.Doctor]
	Create(ctx context.Context, doctor *model.Doctor) error
}

type HealthAssistRepository interface {
	Store[model.HealthAssist]
	Create(ctx context.Context, assist *model.HealthAssist) error
}

type PrivateCompanyRepository interface {
	Store[model.PrivateCompany]
	Create(ctx context.Context, company *model.PrivateCompany) error
}

type ServiceCenterRepository interface {
	Store[model.ServiceCenter]
	Create(ctx context.Context, center *model.ServiceCenter) error
}

type MedicalCenterRepository interface {
	Store[model.MedicalCenter]
	Create(ctx context.Context, center *model.MedicalCenter) error
}

type CharityCenterRepository interface {
	Store[model.CharityCenter]
	Create(ctx context.Context, center *model.CharityCenter) error
}

type GovernmentOrganizationRepository interface {
	Store[model.GovernmentOrganization]
	Create(ctx context.Context, org *model.GovernmentOrganization) error
}

type AssociationRepository interface {
	Store[model.Association]
	Create(ctx context.Context, association *model.Association) error
}

type PatientServiceRequestRepository interface {
	Store[model.PatientServiceRequest]
	Create(ctx context.Context, req *model.PatientServiceRequest) error
}

type ConsultationRequestRepository interface {
	Store[model.ConsultationRequest]
	Create(ctx context.Context, req *model.ConsultationRequest) error
}

// OutboxRepository persists mutation events for the worker to drain.
type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	UpdateStatus(ctx context.Context, id int64, status model.OutboxStatus, errMsg *string) error
	DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
}

type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
}
