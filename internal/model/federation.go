package model

import "time"

// FederationBatchStatus describes processing status of a federation batch.
type FederationBatchStatus string

var (
	// BatchUnprocessed marks a discovered batch that has not been downloaded yet.
	BatchUnprocessed FederationBatchStatus = "UNPROCESSED"
	// BatchProcessed marks a batch whose keys were stored.
	BatchProcessed FederationBatchStatus = "PROCESSED"
	// BatchError marks a failed batch that is retried once.
	BatchError FederationBatchStatus = "ERROR"
	// BatchErrorWontRetry marks a batch that failed its retry as well.
	BatchErrorWontRetry FederationBatchStatus = "ERROR_WONT_RETRY"
)

// FederationBatchSourceSystem identifies the federation partner a batch came from.
type FederationBatchSourceSystem string

var (
	SourceEFGS FederationBatchSourceSystem = "EFGS"
	SourceCHGS FederationBatchSourceSystem = "CHGS"
)

// FederationBatchInfo tracks one externally sourced batch.
type FederationBatchInfo struct {
	BatchTag     string
	Date         time.Time
	Status       FederationBatchStatus
	SourceSystem FederationBatchSourceSystem
}

// FederationBatch is a downloaded batch.
type FederationBatch struct {
	Tag string
	// NextTag is empty for the last batch of a day.
	NextTag string
	Keys    []DiagnosisKey
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
