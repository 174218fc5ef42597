package app

import (
	"context"
	"time"
)

type IngestionSummary struct {
	FileName    string    `json:"file_name"`
	TotalRows   int       `json:"total_rows"`
	InvalidRows int       `json:"invalid_rows"`
	StagedAt    time.Time `json:"staged_at"`
}

type IngestionPipeline interface {
	Ingest(ctx context.Context, file []byte, fileName string) (Batch, error)
}

type SummaryStore interface {
	Save(ctx context.Context, summary IngestionSummary) error
	Latest(ctx context.Context) (*IngestionSummary, error)
}
