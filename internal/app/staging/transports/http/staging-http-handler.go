package staging_http_handler

import (
	"log/slog"

	"github.com/init-pkg/excel-users/domain/app"
	"github.com/init-pkg/excel-users/domain/dtos"

	"github.com/gofiber/fiber/v3"
)

type StagingHttpHandler struct {
	store app.RecordStore
	log   *slog.Logger
}

func New(store app.RecordStore, log *slog.Logger) *StagingHttpHandler {
	return &StagingHttpHandler{store, log}
}

func (this *StagingHttpHandler) Register(mainApp *fiber.App) {
	mainApp.Get("/records", this.records)
}

// records godoc
// @Summary  Page through the staged batch
// @Produce  json
// @Param    page   query  int  false  "1-indexed page"  default(1)
// @Param    limit  query  int  false  "page size"       default(50)
// @Success  200  {array}  object
// @Router   /records [get]
func (this *StagingHttpHandler) records(fctx fiber.Ctx) error {
	var req dtos.RecordsPageRequest
	// A query that does not bind or validate falls back to the first default page.
	if err := fctx.Bind().WithoutAutoHandling().Query(&req); err != nil {
		this.log.Debug("records query rejected", "url", fctx.OriginalURL(), "error", err)
		req = dtos.RecordsPageRequest{}
	}
	return fctx.JSON(this.store.Page(req.Page, req.Limit))
}
