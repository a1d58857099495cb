package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
	// Fallback is a link the client can use when the request itself
	// cannot be served, e.g. the printable plan when export is down.
	Fallback string `json:"fallback,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, err error) {
	respondErrorWithFallback(c, err, "")
}

func respondErrorWithFallback(c *gin.Context, err error, fallback string) {
	ae := classify(err)
	msg := "unknown error"
	if ae.Err != nil {
		msg = ae.Err.Error()
	}
	if ae.Status >= http.StatusInternalServerError && ae.Code == CodeInternal {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(ae.Status, ErrorEnvelope{
		Error: APIError{
			Message:  msg,
			Code:     ae.Code,
			Details:  ae.Details,
			Fallback: fallback,
		},
	})
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
