package routes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/config"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/controllers"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/jobs"
	auth "github.com/mehmetadiyaman/DiyetimTakip-sub000/middleware"
)

func SetupRouter(cfg *config.ServiceConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Client record entry (API key protected)
	r.Group(func(r chi.Router) {
		r.Use(auth.APIKeyMiddleware)
		r.Post("/clients", controllers.CreateClient)
	})

	// Read side and plan generation
	r.Get("/clients", controllers.ListClients)
	r.Get("/clients/{client_id}", controllers.GetClient)
	r.Post("/clients/{client_id}/plan", controllers.GeneratePlan)

	// Queue a background regeneration; result arrives over SSE.
	r.Post("/clients/{client_id}/plan/async", func(w http.ResponseWriter, req *http.Request) {
		idStr := chi.URLParam(req, "client_id")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil || id == 0 {
			http.Error(w, "Invalid client_id", http.StatusBadRequest)
			return
		}
		jobs.GetWorker().Enqueue(uint(id))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"status": "enqueued"}`))
	})

	// Server-Sent Events for finished background plans
	r.Get("/sse/plans", PlanSSE)

	return r
}
