// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/quickly-score/models"
	"github.com/danielhkuo/quickly-score/testutil"
)

func TestGetResults(t *testing.T) {
	svc, db := setupService(t)
	handler := NewResultsHandler(svc, testutil.GetTestConfig())

	setID := testutil.CreateTestRubricSet(t, db, "Final")
	style := testutil.AddTestRubricItem(t, db, setID, "Style")
	technique := testutil.AddTestRubricItem(t, db, setID, "Technique")
	alice := testutil.CreateTestContestant(t, db, "Alice")
	bob := testutil.CreateTestContestant(t, db, "Bob")

	testutil.InsertTestScore(t, db, alice, style, "judge1", 8)
	testutil.InsertTestScore(t, db, alice, technique, "judge1", 9)
	testutil.InsertTestScore(t, db, alice, style, "judge2", 7)
	testutil.InsertTestScore(t, db, alice, technique, "judge2", 10)

	w := httptest.NewRecorder()
	handler.GetResults(w, testutil.MakeRequest("GET", "/api/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.ContestantResult
	testutil.AssertJSON(t, w, &results)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	top := results[0]
	if top.ID != alice || top.JudgeCount != 2 || top.TotalScore != 34 || top.FinalAverage != 17 {
		t.Errorf("Unexpected top result: %+v", top)
	}

	last := results[1]
	if last.ID != bob || last.JudgeCount != 0 || last.TotalScore != 0 || last.FinalAverage != 0 {
		t.Errorf("Expected unscored Bob last with zeros, got %+v", last)
	}
}

func TestGetScores(t *testing.T) {
	svc, db := setupService(t)
	handler := NewResultsHandler(svc, testutil.GetTestConfig())

	setID := testutil.CreateTestRubricSet(t, db, "Final")
	style := testutil.AddTestRubricItem(t, db, setID, "Style")
	alice := testutil.CreateTestContestant(t, db, "Alice")
	testutil.InsertTestScore(t, db, alice, style, "judge2", 6)
	testutil.InsertTestScore(t, db, alice, style, "judge1", 8)

	idStr := strconv.FormatInt(alice, 10)
	req := testutil.MakeRequest("GET", "/api/results/"+idStr+"/scores", nil, nil)
	req.SetPathValue("contestantId", idStr)
	w := httptest.NewRecorder()
	handler.GetScores(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var scores []models.Score
	testutil.AssertJSON(t, w, &scores)
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].JudgeID != "judge1" || scores[0].Value != 8 {
		t.Errorf("Expected judge1 first with 8, got %+v", scores[0])
	}
}

func TestResetContestant(t *testing.T) {
	svc, db := setupService(t)
	handler := NewResultsHandler(svc, testutil.GetTestConfig())

	setID := testutil.CreateTestRubricSet(t, db, "Final")
	style := testutil.AddTestRubricItem(t, db, setID, "Style")
	alice := testutil.CreateTestContestant(t, db, "Alice")
	testutil.InsertTestScore(t, db, alice, style, "judge1", 8)
	testutil.InsertTestScore(t, db, alice, style, "judge2", 6)
	idStr := strconv.FormatInt(alice, 10)

	tests := []struct {
		name            string
		id              string
		expectedStatus  int
		expectedDeleted int64
	}{
		{"scored contestant", idStr, http.StatusOK, 2},
		{"already reset", idStr, http.StatusOK, 0},
		{"unknown contestant", "9999", http.StatusOK, 0},
		{"invalid id", "-1", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("DELETE", "/api/results/"+tt.id, nil, nil)
			req.SetPathValue("contestantId", tt.id)
			w := httptest.NewRecorder()

			handler.Reset(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if w.Code != http.StatusOK {
				return
			}

			var resp models.ResetResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.DeletedCount != tt.expectedDeleted {
				t.Errorf("Expected deleted_count %d, got %d", tt.expectedDeleted, resp.DeletedCount)
			}
		})
	}

	// Contestant row itself is untouched
	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM contestant`); n != 1 {
		t.Errorf("Expected contestant to remain, got %d rows", n)
	}
}
