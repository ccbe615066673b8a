package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cervezas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BeerUC *usecase.BeerUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	beers := api.Group("/beers")
	beerHandler := NewBeerHandler(deps.BeerUC)
	beers.Post("/", beerHandler.Create)
	beers.Get("/", beerHandler.List)
	beers.Get("/:name", beerHandler.GetByName)
	beers.Delete("/:id", beerHandler.DeleteByID)
	beers.Patch("/:id/increment", beerHandler.Increment)
	beers.Patch("/:id/decrement", beerHandler.Decrement)
}
