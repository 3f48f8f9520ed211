package server

import (
	"bytes"
	"net/http"
)

// recordingResponseWriter keeps a copy of the status code and body so the
// audit middleware can attach them to the log entry after the handler runs.
type recordingResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func newRecordingResponseWriter(w http.ResponseWriter) *recordingResponseWriter {
	return &recordingResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *recordingResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *recordingResponseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingResponseWriter) Status() int { return w.status }

func (w *recordingResponseWriter) Body() []byte { return w.body.Bytes() }
