package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RomanNest/social-media-api/pkg/logger"
)

// Recovery panic 恢复：记录日志并上报 Sentry
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v", r)
				logger.Error("request panic",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err),
				)
				if hub := sentry.CurrentHub(); hub.Client() != nil {
					hub.Recover(r)
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
