package app

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFileType = errors.New("Wrong extension type")
	ErrNoFilePassed        = errors.New("No file passed")
	ErrDecode              = errors.New("malformed spreadsheet")
	ErrNoSummary           = errors.New("no ingestion summary recorded")
)

// PersistenceError reports the row that stopped a bulk write.
type PersistenceError struct {
	Index int
	NID   string
	Err   error
}

func (this *PersistenceError) Error() string {
	return fmt.Sprintf("persist row %d (NID %q): %v", this.Index, this.NID, this.Err)
}

func (this *PersistenceError) Unwrap() error {
	return this.Err
}
