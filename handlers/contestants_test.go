// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/quickly-score/models"
	"github.com/danielhkuo/quickly-score/scoring"
	"github.com/danielhkuo/quickly-score/testutil"
)

// setupService returns a scoring service backed by a fresh test database
func setupService(t *testing.T) (*scoring.Service, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })
	return scoring.NewService(db, nil), db
}

func TestCreateContestant(t *testing.T) {
	svc, _ := setupService(t)
	handler := NewContestantHandler(svc, testutil.GetTestConfig())

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "valid contestant",
			body:           models.CreateContestantRequest{Name: "Alice", Info: "Piano"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "name only",
			body:           models.CreateContestantRequest{Name: "Bob"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "blank name",
			body:           models.CreateContestantRequest{Name: "   ", Info: "Piano"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/contestants", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if w.Code == http.StatusCreated {
				var resp models.Contestant
				testutil.AssertJSON(t, w, &resp)
				if resp.ID == 0 {
					t.Error("Expected contestant id in response")
				}
			}
		})
	}
}

func TestListContestants(t *testing.T) {
	svc, db := setupService(t)
	handler := NewContestantHandler(svc, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/api/contestants", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var empty []models.Contestant
	testutil.AssertJSON(t, w, &empty)
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty JSON array, got %v", empty)
	}

	testutil.CreateTestContestant(t, db, "Alice")
	testutil.CreateTestContestant(t, db, "Bob")

	w = httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/api/contestants", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list []models.Contestant
	testutil.AssertJSON(t, w, &list)
	if len(list) != 2 || list[0].Name != "Alice" || list[1].Name != "Bob" {
		t.Errorf("Expected [Alice Bob] in id order, got %v", list)
	}
}

func TestUpdateContestant(t *testing.T) {
	svc, db := setupService(t)
	handler := NewContestantHandler(svc, testutil.GetTestConfig())
	id := testutil.CreateTestContestant(t, db, "Alice")

	tests := []struct {
		name            string
		id              string
		expectedStatus  int
		expectedChanges int64
	}{
		{"existing contestant", strconv.FormatInt(id, 10), http.StatusOK, 1},
		{"unknown contestant", "9999", http.StatusOK, 0},
		{"non-numeric id", "abc", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := models.UpdateContestantRequest{Name: "Alice Smith", Info: "Violin"}
			req := testutil.MakeRequest("PUT", "/api/contestants/"+tt.id, body, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Update(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if w.Code != http.StatusOK {
				return
			}

			var resp models.ChangesResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Changes != tt.expectedChanges {
				t.Errorf("Expected %d changes, got %d", tt.expectedChanges, resp.Changes)
			}
		})
	}
}

func TestDeleteContestant(t *testing.T) {
	svc, db := setupService(t)
	handler := NewContestantHandler(svc, testutil.GetTestConfig())

	setID := testutil.CreateTestRubricSet(t, db, "Final")
	itemID := testutil.AddTestRubricItem(t, db, setID, "Style")
	id := testutil.CreateTestContestant(t, db, "Alice")
	testutil.InsertTestScore(t, db, id, itemID, "judge1", 7)

	idStr := strconv.FormatInt(id, 10)
	req := testutil.MakeRequest("DELETE", "/api/contestants/"+idStr, nil, nil)
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM score`); n != 0 {
		t.Errorf("Expected scores to cascade, %d remain", n)
	}

	// Second delete finds nothing
	req = testutil.MakeRequest("DELETE", "/api/contestants/"+idStr, nil, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestImportContestants(t *testing.T) {
	svc, db := setupService(t)
	handler := NewContestantHandler(svc, testutil.GetTestConfig())

	tests := []struct {
		name           string
		field          string
		filename       string
		content        string
		expectedStatus int
	}{
		{
			name:           "csv upload",
			field:          "contestantsFile",
			filename:       "contestants.csv",
			content:        "Alice,Piano\nBob,Violin\n,no name\n",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "wrong field",
			field:          "file",
			filename:       "contestants.csv",
			content:        "Carol,Cello\n",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unsupported type",
			field:          "contestantsFile",
			filename:       "contestants.json",
			content:        "[]",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeUploadRequest(t, "/api/contestants/import", tt.field, tt.filename, []byte(tt.content))
			w := httptest.NewRecorder()

			handler.Import(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM contestant`); n != 2 {
		t.Errorf("Expected 2 imported contestants, got %d", n)
	}
}

func TestImportContestants_Response(t *testing.T) {
	svc, _ := setupService(t)
	handler := NewContestantHandler(svc, testutil.GetTestConfig())

	req := testutil.MakeUploadRequest(t, "/api/contestants/import", "contestantsFile", "c.csv",
		[]byte("Alice,Piano\n,orphan\nBob\n"))
	w := httptest.NewRecorder()
	handler.Import(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.ImportResult
	testutil.AssertJSON(t, w, &resp)
	if resp.Processed != 3 {
		t.Errorf("Expected count 3, got %d", resp.Processed)
	}
	if resp.Inserted != 2 {
		t.Errorf("Expected 2 inserted, got %d", resp.Inserted)
	}
	if len(resp.Skipped) != 1 || resp.Skipped[0].Row != 2 {
		t.Errorf("Expected row 2 skipped, got %v", resp.Skipped)
	}
}
