package app

import "github.com/gofiber/fiber/v3"

type HttpHandler interface {
	Register(mainApp *fiber.App)
}
