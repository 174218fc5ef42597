package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/init-pkg/excel-users/docs"
	"github.com/init-pkg/excel-users/domain/app"
	"github.com/init-pkg/excel-users/domain/dtos"
	"github.com/init-pkg/excel-users/internal/config"

	swagger "github.com/Flussen/swagger-fiber-v3"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"
)

const welcomeMessage = "Welcome to BackEndDev"

func NewHttpApp(cfg *config.Config, log *slog.Logger) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:      "excel-users",
		BodyLimit:       cfg.Http.UploadMaxBytes,
		ErrorHandler:    errorHandler(log),
		StructValidator: &structValidator{validator.New(validator.WithRequiredStructEnabled())},
	})

	server.Use(recoverer.New())
	server.Use(cors.New())

	return server
}

// structValidator runs validate tags on every bound request DTO.
type structValidator struct {
	validate *validator.Validate
}

func (this *structValidator) Validate(out any) error {
	return this.validate.Struct(out)
}

// RegisterHandlers mounts the root and docs routes plus every feature handler.
func RegisterHandlers(server *fiber.App, handlers []app.HttpHandler) {
	server.Get("/", welcome)
	server.Get("/swagger/*", swagger.HandlerDefault)

	for _, h := range handlers {
		h.Register(server)
	}
}

func StartHttp(lc fx.Lifecycle, server *fiber.App, cfg *config.Config, log *slog.Logger) {
	addr := fmt.Sprintf(":%d", cfg.Http.Port)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server starting", "addr", addr)
				if err := server.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					log.Error("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.ShutdownWithContext(ctx)
		},
	})
}

// welcome godoc
// @Summary  Welcome message
// @Produce  json
// @Success  200  {object}  dtos.WelcomeResponse
// @Router   / [get]
func welcome(fctx fiber.Ctx) error {
	return fctx.JSON(dtos.WelcomeResponse{Message: welcomeMessage})
}

func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(fctx fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			code = ferr.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", "method", fctx.Method(), "path", fctx.Path(), "error", err)
		}
		return fctx.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
