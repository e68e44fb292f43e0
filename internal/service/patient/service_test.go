package patient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/service/event"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
	"github.com/hamyaran/admin-api/pkg/logger"
	"github.com/hamyaran/admin-api/pkg/validation"
)

type fakePatientRepo struct {
	patients map[int64]*model.Patient
	nextID   int64
	updates  []map[string]any
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[int64]*model.Patient), nextID: 1}
}

func (r *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	r.nextID++
	r.patients[p.ID] = p
	return nil
}

func (r *fakePatientRepo) Get(_ context.Context, id int64) (*model.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePatientRepo) GetByOwnerNationalCode(_ context.Context, code string) (*model.Patient, error) {
	for _, p := range r.patients {
		if p.OwnerNationalCode == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("patient", nil)
}

func (r *fakePatientRepo) List(_ context.Context, _ model.ListFilter) ([]*model.Patient, int, error) {
	out := make([]*model.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		copied := *p
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakePatientRepo) Update(_ context.Context, id int64, set map[string]any) error {
	p, ok := r.patients[id]
	if !ok {
		return apperrors.NotFound("patient", nil)
	}
	r.updates = append(r.updates, set)
	if v, ok := set["father_name"]; ok {
		p.FatherName = v.(string)
	}
	if v, ok := set["age"]; ok {
		p.Age = v.(int)
	}
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.patients[id]; !ok {
		return apperrors.NotFound("patient", nil)
	}
	delete(r.patients, id)
	return nil
}

type fakeOwnerRepo struct {
	owners  map[string]*model.Owner
	updates []map[string]any
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: make(map[string]*model.Owner)}
}

func (r *fakeOwnerRepo) Upsert(_ context.Context, o *model.Owner) error {
	if existing, ok := r.owners[o.NationalCode]; ok {
		o.ID = existing.ID
	} else {
		o.ID = int64(len(r.owners) + 1)
	}
	r.owners[o.NationalCode] = o
	return nil
}

func (r *fakeOwnerRepo) GetByNationalCode(_ context.Context, code string) (*model.Owner, error) {
	o, ok := r.owners[code]
	if !ok {
		return nil, apperrors.NotFound("owner", nil)
	}
	return o, nil
}

func (r *fakeOwnerRepo) GetByNationalCodes(_ context.Context, codes []string) (map[string]*model.Owner, error) {
	out := make(map[string]*model.Owner)
	for _, code := range codes {
		if o, ok := r.owners[code]; ok {
			out[code] = o
		}
	}
	return out, nil
}

func (r *fakeOwnerRepo) Update(_ context.Context, code string, set map[string]any) error {
	o, ok := r.owners[code]
	if !ok {
		return apperrors.NotFound("owner", nil)
	}
	r.updates = append(r.updates, set)
	if v, ok := set["phone_number"]; ok {
		o.PhoneNumber = v.(string)
	}
	return nil
}

type fakeOutbox struct {
	events []*model.OutboxEvent
}

func (r *fakeOutbox) Create(_ context.Context, e *model.OutboxEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *fakeOutbox) GetPendingEvents(_ context.Context, _ int) ([]*model.OutboxEvent, error) {
	return r.events, nil
}

func (r *fakeOutbox) UpdateStatus(_ context.Context, _ int64, _ model.OutboxStatus, _ *string) error {
	return nil
}

func (r *fakeOutbox) DeleteProcessedBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func createRequest() *model.CreatePatientRequest {
	return &model.CreatePatientRequest{
		OwnerInput: model.OwnerInput{
			FirstName:    "Sara",
			LastName:     "Ahmadi",
			PhoneNumber:  "09121234567",
			NationalCode: "0499370899",
			Gender:       "female",
			State:        "Tehran",
			City:         "Tehran",
			County:       "Tehran",
			HomeAddress:  "Valiasr St",
			HowKnow:      "friend",
			Education:    "diploma",
			UserType:     "patient",
		},
		FatherName:    "Hossein",
		Age:           34,
		MaritalStatus: "married",
	}
}

func newTestService() (*Service, *fakePatientRepo, *fakeOwnerRepo, *fakeOutbox) {
	patients := newFakePatientRepo()
	owners := newFakeOwnerRepo()
	outbox := &fakeOutbox{}
	emitter := event.NewEmitter(outbox, logger.New(nil))
	svc := NewService(patients, owners, validation.New(), emitter)
	return svc, patients, owners, outbox
}

func TestCreatePatientUpsertsOwner(t *testing.T) {
	svc, _, owners, outbox := newTestService()

	created, err := svc.CreatePatient(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "0499370899", created.OwnerNationalCode)
	require.NotNil(t, created.Owner)
	assert.Equal(t, "Sara", created.Owner.FirstName)
	assert.Equal(t, "0499370899", created.Owner.Username)

	require.Contains(t, owners.owners, "0499370899")
	require.Len(t, outbox.events, 1)
	assert.Equal(t, "patient.created", outbox.events[0].EventType)
}

func TestCreatePatientSharesOwnerRow(t *testing.T) {
	svc, _, owners, _ := newTestService()

	_, err := svc.CreatePatient(context.Background(), createRequest())
	require.NoError(t, err)

	second := createRequest()
	second.FatherName = "Mahmoud"
	_, err = svc.CreatePatient(context.Background(), second)
	require.NoError(t, err)

	assert.Len(t, owners.owners, 1, "same national code reuses the owner row")
}

func TestCreatePatientInvalidNationalCode(t *testing.T) {
	svc, patients, _, _ := newTestService()

	req := createRequest()
	req.NationalCode = "1111111111"

	_, err := svc.CreatePatient(context.Background(), req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Empty(t, patients.patients)
}

func TestUpdatePatientSplitsOwnerPatch(t *testing.T) {
	svc, patients, owners, _ := newTestService()

	created, err := svc.CreatePatient(context.Background(), createRequest())
	require.NoError(t, err)

	phone := "09350001122"
	father := "Ali"
	updated, err := svc.UpdatePatient(context.Background(), created.ID, &model.UpdatePatientRequest{
		OwnerPatch: model.OwnerPatch{PhoneNumber: &phone},
		FatherName: &father,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ali", updated.FatherName)
	assert.Equal(t, "09350001122", updated.Owner.PhoneNumber)

	require.Len(t, patients.updates, 1)
	assert.Equal(t, map[string]any{"father_name": "Ali"}, patients.updates[0])
	require.Len(t, owners.updates, 1)
	assert.Equal(t, map[string]any{"phone_number": "09350001122"}, owners.updates[0])
}

func TestGetPatientByNationalCodeCaches(t *testing.T) {
	svc, patients, _, _ := newTestService()

	created, err := svc.CreatePatient(context.Background(), createRequest())
	require.NoError(t, err)

	first, err := svc.GetPatientByNationalCode(context.Background(), created.OwnerNationalCode)
	require.NoError(t, err)

	// Mutate the store behind the cache; the lookup must still serve the
	// cached record until an update invalidates it.
	patients.patients[created.ID].FatherName = "changed"

	second, err := svc.GetPatientByNationalCode(context.Background(), created.OwnerNationalCode)
	require.NoError(t, err)
	assert.Equal(t, first.FatherName, second.FatherName)
}

func TestDeletePatientGone(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.DeletePatient(context.Background(), 42)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestDeletePatientEmitsEvent(t *testing.T) {
	svc, patients, _, outbox := newTestService()

	created, err := svc.CreatePatient(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(context.Background(), created.ID))
	assert.Empty(t, patients.patients)
	assert.Equal(t, "patient.deleted", outbox.events[len(outbox.events)-1].EventType)
}
