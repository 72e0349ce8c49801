package handler

import (
	"io"
	"net/http"
)

// emptyResponse represents an empty HTTP response with only a status code
type emptyResponse struct {
	status int
}

// Render writes the status code without any body content
func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates an empty response with status 204 (No Content).
func Empty() Response {
	return emptyResponse{
		status: http.StatusNoContent,
	}
}

// EmptyWithStatus creates an empty response with a custom status code.
// This allows returning any status code without a response body, e.g. a
// 401 that only carries a challenge header.
func EmptyWithStatus(status int) Response {
	return emptyResponse{
		status: status,
	}
}

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := io.WriteString(w, t.body)
	return err
}

// Text creates a plain-text response with the given status.
func Text(status int, body string) Response {
	return textResponse{status: status, body: body}
}

type headerResponse struct {
	next   Response
	header http.Header
}

func (h headerResponse) Render(w http.ResponseWriter, r *http.Request) error {
	dst := w.Header()
	for key, values := range h.header {
		for _, v := range values {
			dst.Add(key, v)
		}
	}
	return h.next.Render(w, r)
}

// WithHeader appends a header to resp. The header is added before resp
// writes its status line, so it reaches the client.
func WithHeader(resp Response, key, value string) Response {
	if hr, ok := resp.(headerResponse); ok {
		hr.header = hr.header.Clone()
		hr.header.Add(key, value)
		return hr
	}
	h := make(http.Header, 1)
	h.Add(key, value)
	return headerResponse{next: resp, header: h}
}

// ResponseFunc adapts an ordinary function to the Response interface.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

// Render calls f(w, r).
func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}
