package domain

import "time"

// StoreRecord is the local ledger entry written after a successful store.
type StoreRecord struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`
	// ServerURL is the product URL the results were sent to.
	ServerURL string `json:"server_url"`
	// RunName is the run the results were stored into.
	RunName string `json:"run_name"`
	// RunID is the server assigned run ID.
	RunID int64 `json:"run_id"`
	// Tag is the optional version tag of the store.
	Tag string `json:"tag,omitempty"`
	// FileCount is the number of files found in the report directory.
	FileCount int `json:"file_count"`
	// UploadedCount is the number of files the server did not have yet.
	UploadedCount int `json:"uploaded_count"`
	// ZipSize is the size of the uploaded archive in bytes.
	ZipSize int64 `json:"zip_size"`
	// StoredAt is when the store completed.
	StoredAt time.Time `json:"stored_at"`
}

// SuppressEntry is one line of a suppress file.
type SuppressEntry struct {
	BugHash  string
	FileName string
	Message  string
	Status   ReviewStatus
}
