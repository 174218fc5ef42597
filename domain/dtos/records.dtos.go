package dtos

// RecordsPageRequest is bound from the /records query. Zero values select
// the store defaults.
type RecordsPageRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=1000"`
}
