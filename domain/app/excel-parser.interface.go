package app

// SpreadsheetReader decodes the first sheet of an .xls/.xlsx workbook.
type SpreadsheetReader interface {
	Decode(file []byte) ([]Row, error)
}
