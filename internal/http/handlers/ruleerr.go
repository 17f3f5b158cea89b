package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloomhaus/floristry-backend/internal/domain/catalog"
	"github.com/bloomhaus/floristry-backend/internal/http/response"
	"github.com/bloomhaus/floristry-backend/internal/platform/apierr"
)

// mapRuleError translates a catalog rule failure into an HTTP error. Unknown
// errors fall through as opaque persistence failures.
func mapRuleError(err error) *apierr.Error {
	re := catalog.AsRuleError(err)
	if re == nil {
		return apierr.New(http.StatusInternalServerError, string(catalog.CodePersistence), err)
	}
	switch re.Code {
	case catalog.CodeAdminNotFound:
		return apierr.New(http.StatusUnauthorized, string(re.Code), re)
	case catalog.CodeAdminHasNoStore:
		return apierr.New(http.StatusForbidden, string(re.Code), re)
	case catalog.CodeParentProductNotFound, catalog.CodeFlowerNotFound:
		return apierr.New(http.StatusNotFound, string(re.Code), re)
	case catalog.CodePersistence:
		return apierr.New(http.StatusInternalServerError, string(re.Code), re)
	default:
		return apierr.New(http.StatusBadRequest, string(re.Code), re)
	}
}

func respondRuleError(c *gin.Context, err error) {
	ae := mapRuleError(err)
	if re := catalog.AsRuleError(err); re != nil && len(re.Fields) > 0 {
		response.RespondFieldError(c, ae.Status, ae.Code, ae, re.Fields)
		return
	}
	response.RespondError(c, ae.Status, ae.Code, ae)
}
