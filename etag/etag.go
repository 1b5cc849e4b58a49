// Package etag adds entity tags and conditional GET handling to HTTP
// handlers.
//
// All responses of the wrapped handler share one tag, typically a version of
// the data being served. A GET or HEAD request presenting that tag in
// If-None-Match is answered with 304 Not Modified.
package etag

import (
	"bytes"
	"net/http"
	"strings"
)

// Middleware tags responses of next with tag. With debug set, the ETag
// header is still sent but requests are never answered with 304.
func Middleware(tag string, debug bool) func(http.Handler) http.Handler {
	quoted := quote(tag)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bw := &bufferedWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(bw, r)
			w.Header().Set("ETag", quoted)
			if !debug && bw.status == http.StatusOK && conditional(r) &&
				NoneMatch(r.Header.Get("If-None-Match"), quoted) {
				w.Header().Del("Content-Type")
				w.Header().Del("Content-Length")
				w.WriteHeader(http.StatusNotModified)
				return
			}
			w.WriteHeader(bw.status)
			if r.Method != http.MethodHead {
				_, _ = w.Write(bw.body.Bytes())
			}
		})
	}
}

func conditional(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

// NoneMatch reports whether an If-None-Match header value matches the
// quoted entity tag, using weak comparison.
func NoneMatch(header, quoted string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	want := strings.TrimPrefix(quoted, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == want {
			return true
		}
	}
	return false
}

func quote(tag string) string {
	if strings.HasPrefix(tag, `"`) || strings.HasPrefix(tag, `W/"`) {
		return tag
	}
	return `"` + tag + `"`
}

// bufferedWriter holds back status and body until the handler is done.
// Headers go straight to the underlying writer.
type bufferedWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (bw *bufferedWriter) WriteHeader(status int) {
	if bw.wroteHeader {
		return
	}
	bw.wroteHeader = true
	bw.status = status
}

func (bw *bufferedWriter) Write(p []byte) (int, error) {
	bw.wroteHeader = true
	return bw.body.Write(p)
}
