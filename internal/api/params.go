package api

import (
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"bookmark_backend/internal/shared/apperr"
)

// ListLinksParams are the query filters accepted by GET /api/links.
type ListLinksParams struct {
	CategoryID *uint   `form:"categoryId"`
	Favorite   *bool   `form:"favorite"`
	Search     *string `form:"search"`
}

// BindID binds the ":id" path parameter as a positive integer.
func BindID(c *gin.Context) (uint, error) {
	var id uint
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil || id == 0 {
		return 0, apperr.Invalid("id", "must be a positive integer")
	}
	return id, nil
}

// BindListLinksParams binds the optional link list filters.
func BindListLinksParams(c *gin.Context) (ListLinksParams, error) {
	var params ListLinksParams
	query := c.Request.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "categoryId", query, &params.CategoryID); err != nil {
		return params, apperr.Invalid("categoryId", "must be a positive integer")
	}
	// Only favorite=true filters; any other value is ignored.
	if err := runtime.BindQueryParameter("form", true, false, "favorite", query, &params.Favorite); err != nil {
		params.Favorite = nil
	}
	if err := runtime.BindQueryParameter("form", true, false, "search", query, &params.Search); err != nil {
		return params, apperr.Invalid("search", "must be a string")
	}

	return params, nil
}
