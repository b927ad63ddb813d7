package internal

import (
	"net/http"
	"ohd/internal/controllers"
	"ohd/internal/providers"
	"ohd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/schedule", http.HandlerFunc(apiController.GetSchedule))
	routers.Put("/schedule", http.HandlerFunc(apiController.ReplaceSchedule))
	routers.Get("/opening-times", http.HandlerFunc(apiController.GetOpeningTimes))
	routers.Post("/opening-times", http.HandlerFunc(apiController.ComputeOpeningTimes))
	routers.Get("/display", http.HandlerFunc(apiController.GetDisplay))
	routers.Post("/format", http.HandlerFunc(apiController.FormatInterval))
	return routers
}
