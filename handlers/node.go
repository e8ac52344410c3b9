package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/andrewmackie/graph-explorer-api/models"
	"gorm.io/gorm"
)

// GET /api/v0/node/{id}
func (db *DBHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var node models.Node
	if err := db.First(&node, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, fmt.Sprintf("Sorry, there is no node with id %d", id), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, node)
}

// POST /api/v0/node
func (db *DBHandler) CreateNode(w http.ResponseWriter, r *http.Request) {
	b, err := decodeBody(r)
	if err != nil {
		internalError(w, err)
		return
	}

	name := b.text("name")
	color := b.text("_color")

	// Uniqueness only applies to names that are actually present; the unique
	// index allows any number of NULLs.
	if name != nil {
		var existing models.Node
		err := db.Where("name = ?", *name).First(&existing).Error
		if err == nil {
			http.Error(w, fmt.Sprintf("Sorry, a node with the name '%s' already exists. Please change the name and try again.", *name), http.StatusBadRequest)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			internalError(w, err)
			return
		}
	}

	node := models.Node{Name: name, Color: color}
	if err := db.Create(&node).Error; err != nil {
		internalError(w, err)
		return
	}

	log.Printf("CreateNode: created node id=%d", node.ID)
	db.writeGraph(w, http.StatusCreated)
}

// PUT /api/v0/node/{id}
//
// Updates the node when the id exists, applying only the fields present in
// the request body. Otherwise creates a node with the caller-supplied id.
func (db *DBHandler) UpsertNode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := decodeBody(r)
	if err != nil {
		internalError(w, err)
		return
	}

	var node models.Node
	err = db.First(&node, id).Error
	switch {
	case err == nil:
		updates := map[string]any{}
		if b.has("name") {
			updates["name"] = b.text("name")
		}
		if b.has("_color") {
			updates["color"] = b.text("_color")
		}
		if len(updates) > 0 {
			if err := db.Model(&node).Updates(updates).Error; err != nil {
				internalError(w, err)
				return
			}
		}
		db.writeGraph(w, http.StatusOK)

	case errors.Is(err, gorm.ErrRecordNotFound):
		node = models.Node{ID: id, Name: b.text("name"), Color: b.text("_color")}
		if err := db.Create(&node).Error; err != nil {
			internalError(w, err)
			return
		}
		log.Printf("UpsertNode: created node id=%d", id)
		db.writeGraph(w, http.StatusCreated)

	default:
		internalError(w, err)
	}
}

// DELETE /api/v0/node/{id}
//
// Edges referencing the node are removed by the schema's ON DELETE CASCADE.
func (db *DBHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var node models.Node
	if err := db.First(&node, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, fmt.Sprintf("There is no node with id=%d. Perhaps it has already been deleted?", id), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	if err := db.Delete(&node).Error; err != nil {
		internalError(w, err)
		return
	}

	log.Printf("DeleteNode: deleted node id=%d", id)
	db.writeGraph(w, http.StatusOK)
}
