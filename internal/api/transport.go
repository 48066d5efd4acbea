package api

import (
	"log"
	"net/http"
	"time"
)

// loggingTransport logs every request with its duration
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	if err != nil {
		log.Printf("%s %s %s failed: %v", r.Method, r.URL.Path, time.Since(start), err)
		return nil, err
	}
	log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	return resp, nil
}

// withLogging returns a copy of c whose transport logs requests
func withLogging(c *http.Client) *http.Client {
	next := c.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	logged := *c
	logged.Transport = &loggingTransport{next: next}
	return &logged
}
