// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateContestantRequest / UpdateContestantRequest: name, info
  - CreateRubricSetRequest: name
  - CreateRubricItemRequest / UpdateRubricItemRequest: name, description, max_score
  - SubmitScoresRequest: contestant_id, judge_id, scores ([]{item_id, score})

# Response Types

  - ChangesResponse: message, changes (affected rows)
  - CurrentResponse: contestant (or null), rubric_items
  - LiveStatusResponse: active_rubric_set_id, active_contestant_id
  - ResetResponse: deleted_count
  - ImportResult: count (rows read), inserted, skipped diagnostics

# Domain Types

  - Contestant, RubricSet, RubricItem, Score
  - ContestantResult: contestant plus judge_count, total_score,
    final_average_score

# Import Rows

RubricRow and ContestantRow are what the sheets package produces and the
scoring package consumes. They carry no JSON tags since they never cross the
wire directly.
*/
package models
