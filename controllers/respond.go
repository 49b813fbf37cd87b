package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vital-be/apperrors"
)

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindValidation:         http.StatusBadRequest,
	apperrors.KindPermission:         http.StatusForbidden,
	apperrors.KindNotFound:           http.StatusNotFound,
	apperrors.KindInvalidState:       http.StatusConflict,
	apperrors.KindBackendUnavailable: http.StatusServiceUnavailable,
	apperrors.KindActionFailed:       http.StatusInternalServerError,
	apperrors.KindUpdateFailed:       http.StatusInternalServerError,
	apperrors.KindDecode:             http.StatusBadGateway,
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	if status, ok := kindStatus[apperrors.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := StatusFor(err)
	body := gin.H{"error": "Something went wrong", "retryable": false}
	if appErr, ok := apperrors.As(err); ok {
		body["error"] = appErr.Message
		body["retryable"] = appErr.Retryable()
		if appErr.Field != "" {
			body["field"] = appErr.Field
		}
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Error(err))
	}
	c.AbortWithStatusJSON(status, body)
}

// bindError reports a malformed request body.
func bindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error(), "retryable": false})
}
