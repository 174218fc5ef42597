package dtos

const (
	ErrorCodeRejectedUpload = 1
	ErrorCodeDecode         = 2
	ErrorCodeNotFound       = 3
)

type UploadErrorResponse struct {
	ErrorCode int    `json:"error_code"`
	ErrDesc   string `json:"err_desc"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}
