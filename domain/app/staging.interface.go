package app

// RecordStore holds the single staged batch. Replace swaps it atomically.
type RecordStore interface {
	Replace(batch Batch)
	Snapshot() Batch
	Page(page, size int) Batch
	Len() int
}
