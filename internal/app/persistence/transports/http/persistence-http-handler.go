package persistence_http_handler

import (
	"errors"

	"github.com/init-pkg/excel-users/domain/app"
	"github.com/init-pkg/excel-users/domain/dtos"

	"github.com/gofiber/fiber/v3"
)

type PersistenceHttpHandler struct {
	service app.UsersService
}

func New(service app.UsersService) *PersistenceHttpHandler {
	return &PersistenceHttpHandler{service}
}

func (this *PersistenceHttpHandler) Register(mainApp *fiber.App) {
	mainApp.Post("/users", this.persist)
}

// persist godoc
// @Summary  Persist the staged batch into the users table
// @Produce  json
// @Success  201  {object}  dtos.PersistUsersResponse
// @Failure  500  {object}  dtos.PersistUsersErrorResponse
// @Router   /users [post]
func (this *PersistenceHttpHandler) persist(fctx fiber.Ctx) error {
	n, err := this.service.PersistStaged(fctx.Context())
	if err != nil {
		res := dtos.PersistUsersErrorResponse{Error: err.Error(), Index: -1, Persisted: n}
		var perr *app.PersistenceError
		if errors.As(err, &perr) {
			res.Index = perr.Index
		}
		return fctx.Status(fiber.StatusInternalServerError).JSON(res)
	}

	return fctx.Status(fiber.StatusCreated).JSON(dtos.PersistUsersResponse{Persisted: n})
}
