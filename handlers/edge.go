package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/andrewmackie/graph-explorer-api/models"
	"gorm.io/gorm"
)

const sidTidMessage = "Sorry, the sid and tid params must be integers."

// GET /api/v0/edge/{id}
func (db *DBHandler) GetEdge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var edge models.Edge
	if err := db.First(&edge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, fmt.Sprintf("Sorry, there is no edge with id %d", id), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, edge)
}

// POST /api/v0/edge
//
// Node existence and the no-self-loop rule are deliberately not checked here;
// the FK and check constraints reject bad writes atomically and the failure
// surfaces through internalError.
func (db *DBHandler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	b, err := decodeBody(r)
	if err != nil {
		internalError(w, err)
		return
	}

	sid, sidOK := b.integer("sid")
	tid, tidOK := b.integer("tid")
	if !sidOK || !tidOK {
		http.Error(w, sidTidMessage, http.StatusBadRequest)
		return
	}

	name := b.text("name")
	color := b.text("_color")

	if name != nil {
		var existing models.Edge
		err := db.Where("name = ?", *name).First(&existing).Error
		if err == nil {
			http.Error(w, fmt.Sprintf("Sorry, an edge with the name '%s' already exists. Please change the name and try again.", *name), http.StatusBadRequest)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			internalError(w, err)
			return
		}
	}

	edge := models.Edge{Sid: sid, Tid: tid, Name: name, Color: color}
	if err := db.Create(&edge).Error; err != nil {
		internalError(w, err)
		return
	}

	log.Printf("CreateEdge: created edge id=%d (%d -> %d)", edge.ID, sid, tid)
	db.writeGraph(w, http.StatusCreated)
}

// PUT /api/v0/edge/{id}
//
// On update, sid/tid are applied only when present and integral; non-integer
// values for those two fields are silently ignored. On create, both are
// required integers.
func (db *DBHandler) UpsertEdge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := decodeBody(r)
	if err != nil {
		internalError(w, err)
		return
	}

	var edge models.Edge
	err = db.First(&edge, id).Error
	switch {
	case err == nil:
		updates := map[string]any{}
		if sid, ok := b.integer("sid"); ok {
			updates["sid"] = sid
		}
		if tid, ok := b.integer("tid"); ok {
			updates["tid"] = tid
		}
		if b.has("name") {
			updates["name"] = b.text("name")
		}
		if b.has("_color") {
			updates["color"] = b.text("_color")
		}
		if len(updates) > 0 {
			if err := db.Model(&edge).Updates(updates).Error; err != nil {
				internalError(w, err)
				return
			}
		}
		db.writeGraph(w, http.StatusOK)

	case errors.Is(err, gorm.ErrRecordNotFound):
		sid, sidOK := b.integer("sid")
		tid, tidOK := b.integer("tid")
		if !sidOK || !tidOK {
			http.Error(w, sidTidMessage, http.StatusBadRequest)
			return
		}
		edge = models.Edge{ID: id, Sid: sid, Tid: tid, Name: b.text("name"), Color: b.text("_color")}
		if err := db.Create(&edge).Error; err != nil {
			internalError(w, err)
			return
		}
		log.Printf("UpsertEdge: created edge id=%d (%d -> %d)", id, sid, tid)
		db.writeGraph(w, http.StatusCreated)

	default:
		internalError(w, err)
	}
}

// DELETE /api/v0/edge/{id}
func (db *DBHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var edge models.Edge
	if err := db.First(&edge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, fmt.Sprintf("There is no edge with id=%d. Perhaps it has already been deleted?", id), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	if err := db.Delete(&edge).Error; err != nil {
		internalError(w, err)
		return
	}

	log.Printf("DeleteEdge: deleted edge id=%d", id)
	db.writeGraph(w, http.StatusOK)
}
