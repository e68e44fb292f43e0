package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamyaran/admin-api/internal/model"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
)

type fakeService struct {
	patient    *model.Patient
	patients   []*model.Patient
	page       model.PageInfo
	err        error
	lastUpdate *model.UpdatePatientRequest
	deleted    []int64
}

func (f *fakeService) CreatePatient(_ context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	return f.patient, f.err
}

func (f *fakeService) GetPatient(_ context.Context, id int64) (*model.Patient, error) {
	return f.patient, f.err
}

func (f *fakeService) GetPatientByNationalCode(_ context.Context, code string) (*model.Patient, error) {
	return f.patient, f.err
}

func (f *fakeService) ListPatients(_ context.Context, _ model.ListFilter) ([]*model.Patient, model.PageInfo, error) {
	return f.patients, f.page, f.err
}

func (f *fakeService) UpdatePatient(_ context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	f.lastUpdate = req
	return f.patient, f.err
}

func (f *fakeService) DeletePatient(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func createPayload() map[string]any {
	return map[string]any{
		"first_name":    "Sara",
		"last_name":     "Ahmadi",
		"phone_number":  "09121234567",
		"national_code": "0499370899",
		"gender":        "female",
		"state":         "Tehran",
		"city":          "Tehran",
		"county":        "Tehran",
		"homeAddress":   "Valiasr St",
		"howKnow":       "friend",
		"education":     "diploma",
		"userType":      "patient",
		"fatherName":    "Hossein",
		"age":           34,
		"maritalStatus": "married",
	}
}

func TestCreatePatient(t *testing.T) {
	svc := &fakeService{patient: &model.Patient{Base: model.Base{ID: 7}, FatherName: "Hossein"}}
	r := setupRouter(svc)

	body, _ := json.Marshal(createPayload())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OK   bool          `json:"ok"`
		Data model.Patient `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, int64(7), resp.Data.ID)
}

func TestCreatePatientMissingFields(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewReader([]byte(`{"age": 30}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestGetPatientNotFound(t *testing.T) {
	svc := &fakeService{err: apperrors.NotFound("patient", nil)}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/patients/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Message)
}

func TestGetPatientInvalidID(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/patients/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPatients(t *testing.T) {
	svc := &fakeService{
		patients: []*model.Patient{
			{Base: model.Base{ID: 1}},
			{Base: model.Base{ID: 2}},
		},
		page: model.PageInfo{TotalCount: 12, PageSize: 2, CurrentPage: 1, TotalPages: 6},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/patients?page=1&page_size=2", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK         bool            `json:"ok"`
		Data       []model.Patient `json:"data"`
		Pagination model.PageInfo  `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 6, resp.Pagination.TotalPages)
	assert.Equal(t, 12, resp.Pagination.TotalCount)
}

func TestUpdatePatientPartial(t *testing.T) {
	svc := &fakeService{patient: &model.Patient{Base: model.Base{ID: 3}}}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/patients/3",
		bytes.NewReader([]byte(`{"fatherName":"Ali"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastUpdate)
	require.NotNil(t, svc.lastUpdate.FatherName)
	assert.Equal(t, "Ali", *svc.lastUpdate.FatherName)
	assert.Nil(t, svc.lastUpdate.Age)
	assert.Nil(t, svc.lastUpdate.MaritalStatus)
}

func TestDeletePatient(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/patients/5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{5}, svc.deleted)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestDeletePatientAlreadyGone(t *testing.T) {
	svc := &fakeService{err: apperrors.NotFound("patient", nil)}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/patients/5", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}
