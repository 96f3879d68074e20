package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	allowHeaders = "Content-Type,Authorization,true"
	allowMethods = "GET,PATCH,POST,DELETE,OPTIONS"
)

// CORS answers preflight requests and sets Access-Control-Allow-Origin for
// the given origins. An empty list or "*" allows every origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}

	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}

// AccessControlHeaders adds the allow-headers and allow-methods headers to
// every response, not only to preflights. The values are applied again just
// before the status line is written, so they also win over the preflight
// headers set by CORS.
func AccessControlHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		w := &accessControlWriter{ResponseWriter: c.Writer}
		w.setHeaders()
		c.Writer = w
		c.Next()
	}
}

type accessControlWriter struct {
	gin.ResponseWriter
}

func (w *accessControlWriter) setHeaders() {
	if w.Written() {
		return
	}
	w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
	w.Header().Set("Access-Control-Allow-Methods", allowMethods)
}

func (w *accessControlWriter) WriteHeader(code int) {
	w.setHeaders()
	w.ResponseWriter.WriteHeader(code)
}

func (w *accessControlWriter) WriteHeaderNow() {
	w.setHeaders()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *accessControlWriter) Write(data []byte) (int, error) {
	w.setHeaders()
	return w.ResponseWriter.Write(data)
}

func (w *accessControlWriter) WriteString(s string) (int, error) {
	w.setHeaders()
	return w.ResponseWriter.WriteString(s)
}
