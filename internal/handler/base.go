package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/model"
)

// PathID parses the numeric id path parameter. On failure it writes the
// 400 envelope and reports false.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, NewErrorResponse("invalid id"))
		return 0, false
	}
	return id, true
}

// BindListFilter reads the page, page_size and search query parameters.
func BindListFilter(c *gin.Context) model.ListFilter {
	var f model.ListFilter
	_ = c.ShouldBindQuery(&f)
	f.Normalize()
	return f
}

// FormFile fetches an optional multipart attachment. A missing field is not
// an error; it simply yields nil.
func FormFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}
