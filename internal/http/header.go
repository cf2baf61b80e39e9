package http

import (
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

const (
	headerRequestID = "x-request-id"
	headerUserAgent = "user-agent"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// clientName resolves the calling client family from the user agent, so
// the completion log can tell browser traffic from the replay tooling.
func clientName(r *http.Request) string {
	ua := useragent.Parse(r.Header.Get(headerUserAgent))
	if ua.Name == "" {
		return "unknown"
	}
	return ua.Name
}
