package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/andrewmackie/graph-explorer-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestHandler opens a fresh in-memory sqlite database with foreign keys
// enforced, so cascade and check-constraint behavior matches production.
func newTestHandler(t *testing.T) *DBHandler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and scoped to
	// this test; extra pool connections would each see an empty database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Node{}, &models.Edge{}))
	return &DBHandler{DB: db}
}

func createNode(t *testing.T, db *DBHandler, name string) models.Node {
	t.Helper()
	var node models.Node
	if name != "" {
		node.Name = &name
	}
	require.NoError(t, db.Create(&node).Error)
	return node
}

func createEdge(t *testing.T, db *DBHandler, sid, tid uint, name string) models.Edge {
	t.Helper()
	edge := models.Edge{Sid: sid, Tid: tid}
	if name != "" {
		edge.Name = &name
	}
	require.NoError(t, db.Create(&edge).Error)
	return edge
}

// seedChain creates n nodes and an edge i->i+1 between each consecutive pair.
func seedChain(t *testing.T, db *DBHandler, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		createNode(t, db, "node-"+strconv.Itoa(i+1))
	}
	for i := 1; i < n; i++ {
		createEdge(t, db, uint(i), uint(i+1), "")
	}
}

func jsonRequest(t *testing.T, method, target, payload string) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if payload != "" {
		reqBody = strings.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reqBody)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withID(req *http.Request, id string) *http.Request {
	req.SetPathValue("id", id)
	return req
}

func decodeGraph(t *testing.T, w *httptest.ResponseRecorder) Graph {
	t.Helper()
	var g Graph
	require.NoError(t, json.NewDecoder(w.Body).Decode(&g))
	return g
}
