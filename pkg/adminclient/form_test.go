package adminclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamyaran/admin-api/internal/model"
)

func strPtr(s string) *string { return &s }

func validCompanyRequest() *model.CreatePrivateCompanyRequest {
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

func validPatientRequest() *model.CreatePatientRequest {
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

func formBackend(t *testing.T, calls *atomic.Int64, ok bool, message string) *Resource[testRecord] {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if ok {
			respond(w, http.StatusCreated, map[string]any{"ok": true, "data": testRecord{ID: 5}})
			return
		}
		respond(w, http.StatusBadRequest, map[string]any{"ok": false, "message": message})
	}))
	t.Cleanup(srv.Close)
	return NewResource[testRecord](New(srv.URL), "/things", EncodingMultipart)
}

func TestSubmitBlocksLicenseWithoutReference(t *testing.T) {
	var calls atomic.Int64
	f := NewFormController[testRecord](formBackend(t, &calls, true, ""))

	req := validCompanyRequest()
	req.License = true
	req.LicenseReference = ""

	navigated := f.Submit(context.Background(), 0, req, nil)

	assert.False(t, navigated)
	assert.Equal(t, FormFailed, f.State())
	assert.Equal(t, "license reference is required when licensed", f.Message())
	assert.Equal(t, int64(0), calls.Load(), "cross-field failure must block before any network call")
}

func TestSubmitUpdateBlocksLicenseWithoutReference(t *testing.T) {
	var calls atomic.Int64
	f := NewFormController[testRecord](formBackend(t, &calls, true, ""))

	licensed := true
	patch := &model.UpdatePrivateCompanyRequest{
		License:          &licensed,
		LicenseReference: strPtr(""),
	}

	assert.False(t, f.Submit(context.Background(), 7, patch, nil))
	assert.Equal(t, FormFailed, f.State())
	assert.Equal(t, "license reference is required when licensed", f.Message())
	assert.Equal(t, int64(0), calls.Load(), "edit-mode cross-field failure must block before any network call")
}

func TestSubmitBlocksBadMobile(t *testing.T) {
	var calls atomic.Int64
	f := NewFormController[testRecord](formBackend(t, &calls, true, ""))

	req := validCompanyRequest()
	req.PhoneNumberCeo = "12345"

	assert.False(t, f.Submit(context.Background(), 0, req, nil))
	assert.Equal(t, FormFailed, f.State())
	assert.Equal(t, int64(0), calls.Load())
}

func TestSubmitSuccessNavigates(t *testing.T) {
	var calls atomic.Int64
	f := NewFormController[testRecord](formBackend(t, &calls, true, ""))

	navigated := f.Submit(context.Background(), 0, validCompanyRequest(), nil)

	assert.True(t, navigated)
	assert.Equal(t, FormSucceeded, f.State())
	assert.Equal(t, int64(1), calls.Load())
	require.NotNil(t, f.Record())
	assert.Equal(t, int64(5), f.Record().ID)
}

func TestSubmitRejectionKeepsMessage(t *testing.T) {
	var calls atomic.Int64
	f := NewFormController[testRecord](formBackend(t, &calls, false, "start year cannot precede the founding year"))

	navigated := f.Submit(context.Background(), 0, validCompanyRequest(), nil)

	assert.False(t, navigated)
	assert.Equal(t, FormFailed, f.State())
	assert.Equal(t, "start year cannot precede the founding year", f.Message())
}

func TestPresenterGateClearsNames(t *testing.T) {
	var calls atomic.Int64
	f := NewFormController[testRecord](formBackend(t, &calls, true, ""))

	req := validPatientRequest()
	req.PresenterFirstName = strPtr("Leftover")
	req.PresenterLastName = strPtr("Name")

	require.True(t, f.Submit(context.Background(), 0, req, nil))
	assert.Nil(t, req.PresenterFirstName, "presenter names must be cleared when the gate code is empty")
	assert.Nil(t, req.PresenterLastName)
}

func TestPresenterGateKeepsNamesWhenCodePresent(t *testing.T) {
	var calls atomic.Int64
	f := NewFormController[testRecord](formBackend(t, &calls, true, ""))

	req := validPatientRequest()
	req.PresenterNationalCode = strPtr("0013542419")
	req.PresenterFirstName = strPtr("Mina")
	req.PresenterLastName = strPtr("Karimi")

	require.True(t, f.Submit(context.Background(), 0, req, nil))
	require.NotNil(t, req.PresenterFirstName)
	assert.Equal(t, "Mina", *req.PresenterFirstName)
}

func TestPresenterFieldsEnabled(t *testing.T) {
	req := validPatientRequest()
	assert.False(t, PresenterFieldsEnabled(req))

	req.PresenterNationalCode = strPtr("0013542419")
	assert.True(t, PresenterFieldsEnabled(req))
}

func TestLoadPopulatesForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]any{"ok": true, "data": testRecord{ID: 8, Name: "loaded"}})
	}))
	defer srv.Close()

	f := NewFormController[testRecord](NewResource[testRecord](New(srv.URL), "/things", EncodingJSON))
	f.Load(context.Background(), 8)

	assert.Equal(t, FormPopulated, f.State())
	require.NotNil(t, f.Record())
	assert.Equal(t, "loaded", f.Record().Name)
	assert.False(t, f.ShouldRedirect())
}

func TestLoadFailureRedirectsToList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusNotFound, map[string]any{"ok": false, "message": "record not found"})
	}))
	defer srv.Close()

	f := NewFormController[testRecord](NewResource[testRecord](New(srv.URL), "/things", EncodingJSON))
	f.Load(context.Background(), 404)

	assert.Equal(t, FormFailed, f.State())
	assert.True(t, f.ShouldRedirect())
	assert.Equal(t, "record not found", f.Message())
}
