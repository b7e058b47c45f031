package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/freelanceos/internal/platform/analytics"
	"github.com/gin-gonic/gin"
)

// AnalyticsMiddleware records one event per successful authenticated request, named after
// the route pattern ("/api/v1/projects/:projectID" -> "api_v1_projects_:projectID").
func AnalyticsMiddleware(tracker *analytics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracker.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		tracker.Enqueue(userID, eventName, props)
	}
}
