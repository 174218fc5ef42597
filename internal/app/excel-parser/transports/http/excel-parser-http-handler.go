package excel_parser_http_handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/init-pkg/excel-users/domain/app"
	"github.com/init-pkg/excel-users/domain/dtos"
	validation_service "github.com/init-pkg/excel-users/internal/app/validation/service"

	"github.com/gofiber/fiber/v3"
)

const fileField = "file"

type ExcelParserHttpHandler struct {
	pipeline  app.IngestionPipeline
	summaries app.SummaryStore
	log       *slog.Logger
}

func New(pipeline app.IngestionPipeline, summaries app.SummaryStore, log *slog.Logger) *ExcelParserHttpHandler {
	return &ExcelParserHttpHandler{pipeline, summaries, log}
}

func (this *ExcelParserHttpHandler) Register(mainApp *fiber.App) {
	mainApp.Post("/upload", this.upload)
	mainApp.Get("/upload/template", this.template)
	mainApp.Get("/upload/summary", this.summary)
}

// upload godoc
// @Summary  Upload an .xls/.xlsx sheet and stage its validated rows
// @Accept   multipart/form-data
// @Produce  json
// @Param    file  formData  file  true  "spreadsheet"
// @Success  200
// @Failure  200  {object}  dtos.UploadErrorResponse  "wrong extension or no file"
// @Failure  422  {object}  dtos.UploadErrorResponse  "malformed spreadsheet"
// @Router   /upload [post]
func (this *ExcelParserHttpHandler) upload(fctx fiber.Ctx) error {
	var (
		ctx      = fctx.Context()
		file     []byte
		fileName string
	)

	if header, err := fctx.FormFile(fileField); err == nil {
		fileName = header.Filename
		file, err = readUpload(header)
		if err != nil {
			return fmt.Errorf("read upload: %w", err)
		}
		this.log.Info("upload received", "file", fileName, "bytes", len(file))
	}

	_, err := this.pipeline.Ingest(ctx, file, fileName)
	switch {
	case err == nil:
		fctx.Status(fiber.StatusOK)
		return nil
	case errors.Is(err, app.ErrUnsupportedFileType), errors.Is(err, app.ErrNoFilePassed):
		return fctx.JSON(dtos.UploadErrorResponse{ErrorCode: dtos.ErrorCodeRejectedUpload, ErrDesc: err.Error()})
	case errors.Is(err, app.ErrDecode):
		return fctx.Status(fiber.StatusUnprocessableEntity).JSON(dtos.UploadErrorResponse{ErrorCode: dtos.ErrorCodeDecode, ErrDesc: err.Error()})
	default:
		return err
	}
}

// template godoc
// @Summary  JSON Schema of one upload row
// @Produce  json
// @Success  200  {object}  object
// @Router   /upload/template [get]
func (this *ExcelParserHttpHandler) template(fctx fiber.Ctx) error {
	return fctx.JSON(validation_service.Template())
}

// summary godoc
// @Summary  Latest ingestion summary
// @Produce  json
// @Success  200  {object}  app.IngestionSummary
// @Failure  404  {object}  dtos.UploadErrorResponse
// @Router   /upload/summary [get]
func (this *ExcelParserHttpHandler) summary(fctx fiber.Ctx) error {
	summary, err := this.summaries.Latest(fctx.Context())
	if errors.Is(err, app.ErrNoSummary) {
		return fctx.Status(fiber.StatusNotFound).JSON(dtos.UploadErrorResponse{ErrorCode: dtos.ErrorCodeNotFound, ErrDesc: err.Error()})
	}
	if err != nil {
		return err
	}
	return fctx.JSON(summary)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
