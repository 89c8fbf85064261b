package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/logger"
	"github.com/brunosduarte/sindestiva-api/internal/middleware"
)

// redactedMessage is the body of a 500 outside development mode.
const redactedMessage = "internal server error"

// statusFor maps a domain error to an HTTP status code and a safe message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserDeactivated):
		return http.StatusUnauthorized, "user is deactivated"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusBadRequest, "current password is incorrect"
	default:
		return http.StatusInternalServerError, redactedMessage
	}
}

// respondError translates a service error into an HTTP response. Internal
// errors are logged with the request id; their details only reach the client
// in development mode.
func respondError(c *gin.Context, err error, dev bool) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		if dev {
			msg = err.Error()
		}
	}
	c.JSON(status, gin.H{"error": msg})
}
