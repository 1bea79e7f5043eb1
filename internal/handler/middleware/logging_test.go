//go:build unit

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/config"
	httptestutil "salon-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEngine(buf *bytes.Buffer, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestLogger(newLogger(buf, config.LogConfig{Level: "debug"})))
	engine.GET("/api/appointments/:id", handlers...)
	return engine
}

func TestRequestLogger(t *testing.T) {
	t.Run("logs the authenticated actor after the handler chain", func(t *testing.T) {
		var buf bytes.Buffer
		actor := user.NewActor(uuid.New(), user.RoleStaff, "Meera Staff")
		engine := newLoggedEngine(&buf,
			func(c *gin.Context) { c.Set(ctxActorKey, actor) },
			func(c *gin.Context) { c.Status(http.StatusNoContent) },
		)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointments/123", nil))

		require.Equal(t, http.StatusNoContent, w.Code)
		out := buf.String()
		assert.Contains(t, out, "request completed")
		assert.Contains(t, out, "user_id="+actor.ID.String())
		assert.Contains(t, out, "role=staff")
		assert.Contains(t, out, "path=/api/appointments/:id")
		assert.Contains(t, out, "status=204")
		assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	})

	t.Run("anonymous request logs no user and warns on 4xx", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newLoggedEngine(&buf, func(c *gin.Context) { c.Status(http.StatusNotFound) })

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointments/123", nil))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.NotContains(t, out, "user_id=")
	})

	t.Run("caller supplied request id is echoed", func(t *testing.T) {
		var buf bytes.Buffer
		var seen string
		engine := newLoggedEngine(&buf, func(c *gin.Context) {
			seen = GetRequestID(c)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/appointments/123", nil)
		req.Header.Set(requestIDHeader, "req-42")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		httptestutil.AssertHeaders(t, w, map[string]string{requestIDHeader: "req-42"})
		assert.Equal(t, "req-42", seen)
		assert.Contains(t, buf.String(), "request_id=req-42")
	})
}
