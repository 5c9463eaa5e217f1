// Package httperr is the single place where errors become HTTP
// responses: every endpoint failure goes through AbortWithError or the
// sentinel-mapping AbortWithDomainError.
package httperr

import (
	"net/http"

	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps the sentinel attached to err onto a status.
// Upstream failures are reported as unavailable rather than internal;
// everything unrecognized stays a 500.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := classify(err)
	AbortWithError(c, status, err, msg)
}

func classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
