package ingestion_service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/init-pkg/excel-users/domain/app"
)

const messageSeparator = ", "

var allowedExtensions = map[string]bool{
	"xls":  true,
	"xlsx": true,
}

type IngestionService struct {
	reader    app.SpreadsheetReader
	validator app.FieldValidator
	store     app.RecordStore
	summaries app.SummaryStore
	events    app.EventPublisher
	log       *slog.Logger
	now       func() time.Time
}

var _ app.IngestionPipeline = &IngestionService{}

func New(
	reader app.SpreadsheetReader,
	validator app.FieldValidator,
	store app.RecordStore,
	summaries app.SummaryStore,
	events app.EventPublisher,
	log *slog.Logger,
) *IngestionService {
	return &IngestionService{reader, validator, store, summaries, events, log, time.Now}
}

// Ingest decodes, annotates and stages an uploaded workbook. The staged batch
// is only replaced once every row is annotated; any earlier failure leaves
// the previous batch in place.
func (this *IngestionService) Ingest(ctx context.Context, file []byte, fileName string) (app.Batch, error) {
	if file == nil && fileName == "" {
		return nil, app.ErrNoFilePassed
	}
	if !allowedExtensions[extension(fileName)] {
		this.log.Info("upload rejected", "file", fileName, "reason", app.ErrUnsupportedFileType)
		return nil, app.ErrUnsupportedFileType
	}

	rows, err := this.reader.Decode(file)
	if err != nil {
		this.log.Error("decode failed", "file", fileName, "error", err)
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}

	batch := make(app.Batch, len(rows))
	for i, row := range rows {
		batch[i] = app.AnnotatedRow{
			Row:              row,
			ValidationErrors: strings.Join(this.validator.Validate(row), messageSeparator),
		}
	}

	this.store.Replace(batch)

	summary := app.IngestionSummary{
		FileName:    fileName,
		TotalRows:   len(batch),
		InvalidRows: batch.InvalidCount(),
		StagedAt:    this.now().UTC(),
	}
	this.log.Info("batch staged", "file", fileName, "rows", summary.TotalRows, "invalid", summary.InvalidRows)

	if err := this.summaries.Save(ctx, summary); err != nil {
		this.log.Warn("save ingestion summary failed", "error", err)
	}
	if err := this.events.Publish(ctx, app.EventBatchStaged, summary); err != nil {
		this.log.Warn("publish event failed", "event", app.EventBatchStaged, "error", err)
	}

	return batch, nil
}

func extension(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
}
