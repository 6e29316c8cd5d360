// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreateContestantRequest struct {
	Name string `json:"name"`
	Info string `json:"info"`
}

type UpdateContestantRequest struct {
	Name string `json:"name"`
	Info string `json:"info"`
}

type CreateRubricSetRequest struct {
	Name string `json:"name"`
}

type CreateRubricItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxScore    int    `json:"max_score"`
}

type UpdateRubricItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxScore    int    `json:"max_score"`
}

type ScoreEntry struct {
	RubricItemID int64 `json:"item_id"`
	Value        int   `json:"score"`
}

type SubmitScoresRequest struct {
	ContestantID int64        `json:"contestant_id"`
	JudgeID      string       `json:"judge_id"`
	Scores       []ScoreEntry `json:"scores"`
}

// Response types

type ChangesResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CurrentResponse struct {
	Contestant  *Contestant  `json:"contestant"`
	RubricItems []RubricItem `json:"rubric_items"`
}

type LiveStatusResponse struct {
	ActiveRubricSetID  *int64 `json:"active_rubric_set_id"`
	ActiveContestantID *int64 `json:"active_contestant_id"`
}

type ResetResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// Domain types

type Contestant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Info string `json:"info"`
}

type RubricSet struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RubricItem struct {
	ID          int64  `json:"id"`
	SetID       int64  `json:"set_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxScore    int    `json:"max_score"`
}

type Score struct {
	ID           int64  `json:"id"`
	ContestantID int64  `json:"contestant_id"`
	RubricItemID int64  `json:"item_id"`
	Value        int    `json:"score"`
	JudgeID      string `json:"judge_id"`
}

// ContestantResult is one row of the live ranking
type ContestantResult struct {
	Contestant
	JudgeCount   int     `json:"judge_count"`
	TotalScore   int64   `json:"total_score"`
	FinalAverage float64 `json:"final_average_score"`
}

// Import types

// RubricRow is one parsed line of a rubric spreadsheet
type RubricRow struct {
	SetName     string
	ItemName    string
	Description string
	MaxScore    int
}

// ContestantRow is one parsed line of a contestant spreadsheet
type ContestantRow struct {
	Name string
	Info string
}

// RowDiagnostic explains why an import row was skipped. Row is 1-indexed.
type RowDiagnostic struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Processed int             `json:"count"`
	Inserted  int             `json:"inserted"`
	Skipped   []RowDiagnostic `json:"skipped"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
