package dto

import (
	"time"

	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusUpdateRequest is the body of the status endpoints.
type StatusUpdateRequest struct {
	Status domain.Status `json:"status" binding:"required,status"`
}

// InsertResult reports a created record.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
	Message      string `json:"message,omitempty"`
}

// UpdateResult reports an applied update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports a removed record.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// NewInsertResult builds an acknowledged InsertResult.
func NewInsertResult(id string) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id}
}

// UpdatedOne is the result of a single-record update.
func UpdatedOne() UpdateResult {
	return UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
}

// DeletedOne is the result of a single-record delete.
func DeletedOne() DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: 1}
}

// ParseDate parses an optional calendar date. An empty string yields nil.
func ParseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders an optional calendar date.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
