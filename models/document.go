package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded supporting evidence document (lease
// agreements, FIR copies, payslips and the like that a triage answer tells
// the user to gather), optionally linked to the query it supports.
type Document struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	QueryID     *uuid.UUID `json:"query_id"`
	Filename    string     `json:"filename"`
	MimeType    string     `json:"mime_type"`
	Size        int64      `json:"size"`
	StoragePath string     `json:"storage_path"`
	CreatedAt   time.Time  `json:"created_at"`
}
