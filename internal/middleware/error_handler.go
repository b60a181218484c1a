package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/domain/dto"
	"github.com/guttosm/invoice-service/internal/i18n"
	"github.com/rs/zerolog/log"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Errors attached by handlers are logged once here; if the handler did not
// write a response, a translated 500 is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		event := log.Ctx(c.Request.Context()).Error()
		if c.Writer.Status() < http.StatusInternalServerError {
			event = log.Ctx(c.Request.Context()).Warn()
		}
		event.
			Str("request_id", requestID).
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", c.Writer.Status()).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			errorResp := dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
