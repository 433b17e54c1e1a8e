package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router, api *API) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/add", api.Add)
		r.Post("/subtract", api.Subtract)
		r.Post("/multiply", api.Multiply)
		r.Post("/divide", api.Divide)
		r.Post("/power", api.Power)

		r.Get("/history", api.History)
		r.Delete("/history", api.ClearHistory)
	})
}
