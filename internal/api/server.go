package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/cadence/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx            *chi.Mux
	habitsService service.HabitsServiceI
	checksService service.ChecksServiceI
	statsService  service.StatsServiceI
	tasksService  service.TasksServiceI
}

type ServicesList struct {
	HabitsService service.HabitsServiceI
	ChecksService service.ChecksServiceI
	StatsService  service.StatsServiceI
	TasksService  service.TasksServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:            chi.NewMux(),
		habitsService: servicesOptions.HabitsService,
		checksService: servicesOptions.ChecksService,
		statsService:  servicesOptions.StatsService,
		tasksService:  servicesOptions.TasksService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware)
		r.Use(s.SettingUpLoggerMiddleware)
		r.Use(s.MetricsMiddleware)
		r.Use(s.UserScopeMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Post("/habits", s.CreateHabit)
		r.Get("/habits", s.GetHabits)
		r.Get("/habits/due", s.GetDueHabits)
		r.Get("/habits/{id}", s.GetHabit)
		r.Patch("/habits/{id}", s.UpdateHabit)
		r.Delete("/habits/{id}", s.DeleteHabit)
		r.Post("/habits/{id}/toggle", s.ToggleCheck)
		r.Get("/habits/{id}/checks", s.GetChecks)
		r.Get("/habits/{id}/stats", s.GetHabitStats)

		r.Get("/stats/summary", s.GetSummary)
		r.Get("/stats/tasks", s.GetTaskStats)

		r.Post("/tasks", s.CreateTask)
		r.Get("/tasks", s.GetTasks)
		r.Patch("/tasks/{id}/done", s.SetTaskDone)
		r.Delete("/tasks/{id}", s.DeleteTask)
	})
	return http.ListenAndServe(addr, s.mx)
}
