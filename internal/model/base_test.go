package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	p := Pagination{Page: 0, PageSize: 0}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)

	p = Pagination{Page: 3, PageSize: 500}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		pageSize  int
		wantPages int
		wantPage  int
	}{
		{"exact division", 40, 1, 10, 4, 1},
		{"remainder rounds up", 41, 1, 10, 5, 1},
		{"single partial page", 3, 1, 10, 1, 1},
		{"empty collection", 0, 1, 10, 0, 1},
		{"page past the end clamps", 15, 9, 10, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.total, Pagination{Page: tt.page, PageSize: tt.pageSize})
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.wantPage, info.CurrentPage)
			assert.Equal(t, tt.total, info.TotalCount)
			assert.Equal(t, tt.pageSize, info.PageSize)
		})
	}
}

func TestPatchMapOnlySuppliedKeys(t *testing.T) {
	name := "Reza"
	age := 42
	req := &UpdatePatientRequest{
		FatherName: &name,
		Age:        &age,
	}
	set := PatchMap(req)
	assert.Equal(t, map[string]any{"father_name": "Reza", "age": 42}, set)
}

func TestPatchMapSkipsEmbedded(t *testing.T) {
	phone := "09121234567"
	first := "Sara"
	req := &UpdatePatientRequest{
		OwnerPatch:         OwnerPatch{PhoneNumber: &phone},
		PresenterFirstName: &first,
	}
	set := PatchMap(req)
	assert.NotContains(t, set, "phone_number")
	assert.Equal(t, "Sara", set["presenter_first_name"])
}

func TestPatchMapNil(t *testing.T) {
	var req *UpdatePatientRequest
	assert.Empty(t, PatchMap(req))
}
