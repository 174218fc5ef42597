package dtos

type PersistUsersResponse struct {
	Persisted int `json:"persisted"`
}

type PersistUsersErrorResponse struct {
	Error     string `json:"error"`
	Index     int    `json:"index"`
	Persisted int    `json:"persisted"`
}
