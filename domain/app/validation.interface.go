package app

type FieldValidator interface {
	Validate(row Row) []string
}
