package mw

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

type bodyCacheWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	maxAge string
}

// setCacheControl marks the response cacheable just before the header is
// flushed, and only for 2xx statuses.
func (w bodyCacheWriter) setCacheControl() {
	if !w.Written() && isCacheable(w.Status()) {
		w.Header().Set("Cache-Control", w.maxAge)
	}
}

func (w bodyCacheWriter) WriteHeaderNow() {
	w.setCacheControl()
	w.ResponseWriter.WriteHeaderNow()
}

func (w bodyCacheWriter) Write(b []byte) (int, error) {
	w.setCacheControl()
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w bodyCacheWriter) WriteString(s string) (int, error) {
	w.setCacheControl()
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func isCacheable(status int) bool {
	return status >= 200 && status < 300
}

// cacheKey separates entries per negotiated language, since the same URI
// renders different copy for different Accept-Language headers.
func cacheKey(c *gin.Context) string {
	return string(LanguageFrom(c)) + "|" + c.Request.URL.RequestURI()
}

// Cache is a middleware for in-memory caching of GET responses. It must
// run after Language so the negotiated language is part of the key.
func Cache(store *cache.Cache, duration time.Duration) gin.HandlerFunc {
	maxAge := "public, max-age=" + strconv.Itoa(int(duration.Seconds()))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		if resp, found := store.Get(key); found {
			cached := resp.(cachedResponse)
			for k, v := range cached.headers {
				c.Writer.Header()[k] = v
			}
			c.Writer.Header().Set("X-Cache", "HIT")
			c.Writer.WriteHeader(cached.status)
			c.Writer.Write(cached.body)
			c.Abort()
			return
		}

		blw := &bodyCacheWriter{body: bytes.NewBuffer(nil), ResponseWriter: c.Writer, maxAge: maxAge}
		c.Writer = blw
		c.Header("X-Cache", "MISS")

		c.Next()

		// Only cache successful responses
		if isCacheable(blw.Status()) {
			headers := blw.Header().Clone()
			headers.Del("X-Cache")
			store.Set(key, cachedResponse{
				status:  blw.Status(),
				headers: headers,
				body:    blw.body.Bytes(),
			}, duration)
		}
	}
}
