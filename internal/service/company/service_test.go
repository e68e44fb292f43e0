package company

import (
	"context"
	"mime/multipart"
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

type fakeCompanyRepo struct {
	companies map[int64]*model.PrivateCompany
	nextID    int64
	updates   []map[string]any
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[int64]*model.PrivateCompany), nextID: 1}
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *model.PrivateCompany) error {
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	r.nextID++
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) Get(_ context.Context, id int64) (*model.PrivateCompany, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, apperrors.NotFound("private company", nil)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _ model.ListFilter) ([]*model.PrivateCompany, int, error) {
	out := make([]*model.PrivateCompany, 0, len(r.companies))
	for _, c := range r.companies {
		copied := *c
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, id int64, set map[string]any) error {
	c, ok := r.companies[id]
	if !ok {
		return apperrors.NotFound("private company", nil)
	}
	r.updates = append(r.updates, set)
	if v, ok := set["license"]; ok {
		c.License = v.(bool)
	}
	if v, ok := set["license_reference"]; ok {
		c.LicenseReference = v.(string)
	}
	if v, ok := set["year_start"]; ok {
		c.YearStart = v.(int)
	}
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.companies[id]; !ok {
		return apperrors.NotFound("private company", nil)
	}
	delete(r.companies, id)
	return nil
}

type fakeStore struct {
	removed []string
}

func (s *fakeStore) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	return "/media/" + subdir + "/" + fh.Filename, nil
}

func (s *fakeStore) Remove(url string) error {
	s.removed = append(s.removed, url)
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

func createRequest() *model.CreatePrivateCompanyRequest {
	return &model.CreatePrivateCompanyRequest{
		Name:           "Mehr Co",
		YearFound:      1390,
		YearStart:      1392,
		Activity:       "manufacturing",
		NameCeo:        "Reza",
		PhoneNumberCeo: "09121234567",
		State:          "Tehran",
		City:           "Tehran",
		County:         "Tehran",
	}
}

func newTestService() (*Service, *fakeCompanyRepo) {
	repo := newFakeCompanyRepo()
	emitter := event.NewEmitter(&fakeOutbox{}, logger.New(nil))
	svc := NewService(repo, &fakeStore{}, validation.New(), emitter)
	return svc, repo
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestUpdateCompanyLicenseNeedsStoredReference(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.CreatePrivateCompany(context.Background(), createRequest(), Files{})
	require.NoError(t, err)

	_, err = svc.UpdatePrivateCompany(context.Background(), created.ID,
		&model.UpdatePrivateCompanyRequest{License: boolPtr(true)}, Files{})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Equal(t, "license reference is required when licensed", appErr.Message)
	assert.Empty(t, repo.updates, "a rejected patch must not reach the store")
}

func TestUpdateCompanyYearStartBeforeStoredFounding(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.CreatePrivateCompany(context.Background(), createRequest(), Files{})
	require.NoError(t, err)

	_, err = svc.UpdatePrivateCompany(context.Background(), created.ID,
		&model.UpdatePrivateCompanyRequest{YearStart: intPtr(1388)}, Files{})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Empty(t, repo.updates)
}

func TestUpdateCompanyLicenseWithReference(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.CreatePrivateCompany(context.Background(), createRequest(), Files{})
	require.NoError(t, err)

	updated, err := svc.UpdatePrivateCompany(context.Background(), created.ID,
		&model.UpdatePrivateCompanyRequest{
			License:          boolPtr(true),
			LicenseReference: strPtr("ref-1401"),
		}, Files{})
	require.NoError(t, err)

	assert.True(t, updated.License)
	assert.Equal(t, "ref-1401", updated.LicenseReference)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, true, repo.updates[0]["license"])
}
