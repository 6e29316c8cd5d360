// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-score/cliparse"
	"github.com/danielhkuo/quickly-score/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in t.TempDir and is removed with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scoring_test.db")
	conn, err := db.Open(cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    "scoring_test.db",
		DatabaseType:   cliparse.DatabaseSQLite,
		UploadLimitMB:  1,
		MetricsEnabled: false,
	}
}

// CreateTestContestant inserts a contestant and returns its id
func CreateTestContestant(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO contestant (name, info) VALUES ($1, '') RETURNING id
	`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test contestant: %v", err)
	}
	return id
}

// CreateTestRubricSet inserts a rubric set and returns its id
func CreateTestRubricSet(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO rubric_set (name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test rubric set: %v", err)
	}
	return id
}

// AddTestRubricItem adds an item with max score 10 and returns its id
func AddTestRubricItem(t *testing.T, conn *sql.DB, setID int64, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO rubric_item (name, description, max_score, set_id)
		VALUES ($1, '', 10, $2)
		RETURNING id
	`, name, setID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test rubric item: %v", err)
	}
	return id
}

// InsertTestScore writes a score row directly, bypassing the live session
func InsertTestScore(t *testing.T, conn *sql.DB, contestantID, itemID int64, judgeID string, value int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO score (contestant_id, rubric_item_id, value, judge_id)
		VALUES ($1, $2, $3, $4)
	`, contestantID, itemID, value, judgeID)
	if err != nil {
		t.Fatalf("Failed to create test score: %v", err)
	}
}

// CountRows runs a COUNT(*) query
func CountRows(t *testing.T, conn *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeUploadRequest creates a multipart request with one file field
func MakeUploadRequest(t *testing.T, path, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
