package company

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamyaran/admin-api/internal/model"
	companysvc "github.com/hamyaran/admin-api/internal/service/company"
	"github.com/hamyaran/admin-api/pkg/adminclient"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
)

type fakeService struct {
	company    *model.PrivateCompany
	err        error
	lastReq    *model.CreatePrivateCompanyRequest
	lastUpdate *model.UpdatePrivateCompanyRequest
	lastFiles  companysvc.Files
}

func (f *fakeService) CreatePrivateCompany(_ context.Context, req *model.CreatePrivateCompanyRequest, files companysvc.Files) (*model.PrivateCompany, error) {
	f.lastReq = req
	f.lastFiles = files
	return f.company, f.err
}

func (f *fakeService) GetPrivateCompany(_ context.Context, id int64) (*model.PrivateCompany, error) {
	return f.company, f.err
}

func (f *fakeService) ListPrivateCompanies(_ context.Context, _ model.ListFilter) ([]*model.PrivateCompany, model.PageInfo, error) {
	return nil, model.PageInfo{}, f.err
}

func (f *fakeService) UpdatePrivateCompany(_ context.Context, id int64, req *model.UpdatePrivateCompanyRequest, files companysvc.Files) (*model.PrivateCompany, error) {
	f.lastUpdate = req
	f.lastFiles = files
	return f.company, f.err
}

func (f *fakeService) DeletePrivateCompany(_ context.Context, id int64) error {
	return f.err
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for name, data := range files {
		fw, err := w.CreateFormFile(name, name+".pdf")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func companyFields() map[string]string {
	return map[string]string{
		"name":           "Mehr Co",
		"yearFound":      "1390",
		"yearStart":      "1392",
		"activity":       "manufacturing",
		"nameCeo":        "Reza",
		"phoneNumberCeo": "09121234567",
		"state":          "Tehran",
		"city":           "Tehran",
		"county":         "Tehran",
	}
}

func TestCreatePrivateCompanyMultipart(t *testing.T) {
	svc := &fakeService{company: &model.PrivateCompany{Base: model.Base{ID: 11}, Name: "Mehr Co"}}
	r := setupRouter(svc)

	body, contentType := multipartBody(t, companyFields(), map[string][]byte{
		"membershipRequest": []byte("request-doc"),
		"collectionLogo":    []byte("logo-bytes"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/private-companies", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "Mehr Co", svc.lastReq.Name)
	assert.Equal(t, 1390, svc.lastReq.YearFound)

	assert.NotNil(t, svc.lastFiles.MembershipRequest)
	assert.NotNil(t, svc.lastFiles.CollectionLogo)
	assert.Nil(t, svc.lastFiles.ActivityLicense)

	var resp struct {
		OK   bool                 `json:"ok"`
		Data model.PrivateCompany `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, int64(11), resp.Data.ID)
}

func TestCreatePrivateCompanyFromTypedClient(t *testing.T) {
	svc := &fakeService{company: &model.PrivateCompany{Base: model.Base{ID: 21}, Name: "Mehr Co"}}
	srv := httptest.NewServer(setupRouter(svc))
	defer srv.Close()

	client := adminclient.New(srv.URL + "/api/v1")
	res := adminclient.NewResource[model.PrivateCompany](client, "/private-companies", adminclient.EncodingMultipart)

	payload := &model.CreatePrivateCompanyRequest{
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
	result, err := res.Create(context.Background(), payload, map[string]adminclient.Attachment{
		"collectionLogo": adminclient.NewAttachment{Name: "logo.png", Data: []byte("logo-bytes")},
	})
	require.NoError(t, err)

	created, ok := result.Ok()
	require.True(t, ok, result.Message())
	assert.Equal(t, int64(21), created.ID)

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "Mehr Co", svc.lastReq.Name)
	assert.Equal(t, 1390, svc.lastReq.YearFound)
	assert.Equal(t, "09121234567", svc.lastReq.PhoneNumberCeo)
	assert.NotNil(t, svc.lastFiles.CollectionLogo)
	assert.Nil(t, svc.lastFiles.MembershipRequest)
}

func TestUpdatePrivateCompanyFromTypedClient(t *testing.T) {
	svc := &fakeService{company: &model.PrivateCompany{Base: model.Base{ID: 4}, Name: "Renamed"}}
	srv := httptest.NewServer(setupRouter(svc))
	defer srv.Close()

	client := adminclient.New(srv.URL + "/api/v1")
	res := adminclient.NewResource[model.PrivateCompany](client, "/private-companies", adminclient.EncodingMultipart)

	name := "Renamed"
	result, err := res.Update(context.Background(), 4, &model.UpdatePrivateCompanyRequest{Name: &name}, nil)
	require.NoError(t, err)

	_, ok := result.Ok()
	require.True(t, ok, result.Message())

	require.NotNil(t, svc.lastUpdate)
	require.NotNil(t, svc.lastUpdate.Name)
	assert.Equal(t, "Renamed", *svc.lastUpdate.Name)
	assert.Nil(t, svc.lastUpdate.YearFound, "omitted fields must stay unset")
}

func TestCreatePrivateCompanyMissingRequired(t *testing.T) {
	r := setupRouter(&fakeService{})

	body, contentType := multipartBody(t, map[string]string{"name": "Mehr Co"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/private-companies", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestCreatePrivateCompanyValidationRejected(t *testing.T) {
	svc := &fakeService{err: apperrors.Validation("license reference is required when licensed", nil)}
	r := setupRouter(svc)

	fields := companyFields()
	fields["license"] = "true"
	body, contentType := multipartBody(t, fields, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/private-companies", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "license reference is required when licensed")
}

func TestUpdatePrivateCompanyReplacesFile(t *testing.T) {
	svc := &fakeService{company: &model.PrivateCompany{Base: model.Base{ID: 4}}}
	r := setupRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"name": "Renamed"}, map[string][]byte{
		"activityLicense": []byte("new-license"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/private-companies/4", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, svc.lastFiles.ActivityLicense)
	assert.Nil(t, svc.lastFiles.MembershipRequest)
}
