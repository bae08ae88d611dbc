package handlers

import (
	"net/http"
	"strings"
)

const notFoundPage = `<!DOCTYPE html>
<html>
<head><title>404 Not Found</title></head>
<body><h1>404 Not Found</h1></body>
</html>`

// NotFound answers unknown routes in whatever the client accepts: HTML,
// JSON, or plain text.
func NotFound(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "text/html"):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFoundPage))
	case strings.Contains(accept, "application/json"), strings.Contains(accept, "*/*"), accept == "":
		respondMessage(w, http.StatusNotFound, "404 Not Found")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("404 Not Found"))
	}
}
