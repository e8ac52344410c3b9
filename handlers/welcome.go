package handlers

import (
	"fmt"
	"net/http"
)

// GET /
func Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<p>Welcome to Graph Explorer!</p><p>View the <a href="/apidocs">API documentation</a></p>`)
}

// OPTIONS /api/v0/{noun} and /api/v0/{noun}/{id}
//
// Answers CORS preflight requests without touching the database.
func Preflight(w http.ResponseWriter, r *http.Request) {
	noun := r.PathValue("noun")
	known := noun == "node" || noun == "edge" ||
		(noun == "graph" && r.PathValue("id") == "") // the graph route takes no id
	if !known {
		http.Error(w, fmt.Sprintf("Sorry, there is no '%s' resource in this API.", noun), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, "{}")
}
