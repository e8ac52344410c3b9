package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/andrewmackie/graph-explorer-api/models"
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
}

// Graph is the complete snapshot of all nodes and edges. Mutating handlers
// return it so the frontend can redraw without a second round-trip.
type Graph struct {
	Nodes []models.Node `json:"nodes"`
	Edges []models.Edge `json:"edges"`
}

func (db *DBHandler) snapshot() (Graph, error) {
	g := Graph{Nodes: []models.Node{}, Edges: []models.Edge{}}
	if err := db.Find(&g.Nodes).Error; err != nil {
		return g, err
	}
	if err := db.Find(&g.Edges).Error; err != nil {
		return g, err
	}
	return g, nil
}

// writeGraph sends the post-mutation snapshot with the given status.
func (db *DBHandler) writeGraph(w http.ResponseWriter, status int) {
	g, err := db.snapshot()
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, status, g)
}

// GET /api/v0/graph
func (db *DBHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	db.writeGraph(w, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: error encoding response: %v", err)
	}
}

// internalError surfaces an unexpected failure as plain text, leaving the
// aborted transaction to the storage engine's atomicity.
func internalError(w http.ResponseWriter, err error) {
	http.Error(w, fmt.Sprintf("Sorry, there was an exception: %v", err), http.StatusNotImplemented)
}

// pathID parses the {id} path segment. Non-integer ids never identify an
// entity, so they 404 like any other unmatched route.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return uint(id), true
}
