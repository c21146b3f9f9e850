package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestID_TableDriven(t *testing.T) {
	gin.SetMode(gin.TestMode)
	incoming := uuid.NewString()

	cases := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generated when absent", header: ""},
		{name: "kept when valid uuid", header: incoming, wantSame: true},
		{name: "replaced when not a uuid", header: "not-a-uuid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			r := gin.New()
			r.Use(RequestID())
			r.GET("/", func(c *gin.Context) {
				seen = c.GetString(RequestIDKey)
				c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" || got != seen {
				t.Fatalf("header=%q context=%q", got, seen)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("request id %q is not a uuid", got)
			}
			if tc.wantSame != (got == tc.header) {
				t.Fatalf("got %q, incoming %q, wantSame=%v", got, tc.header, tc.wantSame)
			}
		})
	}
}
