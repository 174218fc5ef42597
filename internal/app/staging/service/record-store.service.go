package staging_service

import (
	"slices"
	"sync/atomic"

	"github.com/init-pkg/excel-users/domain/app"
	"github.com/init-pkg/excel-users/internal/config"
)

const fallbackPageSize = 50

// RecordStore keeps the latest batch behind an atomic pointer. Readers see
// either the previous batch or the new one, never a mix.
type RecordStore struct {
	batch           atomic.Pointer[app.Batch]
	defaultPageSize int
}

var _ app.RecordStore = &RecordStore{}

func New(cfg *config.Config) *RecordStore {
	size := cfg.Records.DefaultPageSize
	if size < 1 {
		size = fallbackPageSize
	}
	return &RecordStore{defaultPageSize: size}
}

func (this *RecordStore) Replace(batch app.Batch) {
	staged := slices.Clone(batch)
	if staged == nil {
		staged = app.Batch{}
	}
	this.batch.Store(&staged)
}

func (this *RecordStore) Snapshot() app.Batch {
	if p := this.batch.Load(); p != nil {
		return *p
	}
	return app.Batch{}
}

func (this *RecordStore) Len() int {
	return len(this.Snapshot())
}

// Page is 1-indexed. Out of range pages yield an empty batch.
func (this *RecordStore) Page(page, size int) app.Batch {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = this.defaultPageSize
	}

	rows := this.Snapshot()
	pages := len(rows) / size
	if len(rows)%size != 0 {
		pages++
	}
	if page > pages {
		return app.Batch{}
	}
	start := (page - 1) * size
	end := min(start+size, len(rows))
	return slices.Clone(rows[start:end])
}
