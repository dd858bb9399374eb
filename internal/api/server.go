package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/streakmate/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	habitService       service.HabitsServiceI
	completionsService service.CompletionsServiceI
	statsService       service.StatsServiceI
	partnerService     service.PartnerServiceI
	nudgeService       service.NudgeServiceI
	pushService        service.PushServiceI
	jwtService         JWTServiceI
	limiter            *ipLimiter
	metrics            *httpMetrics
	metricsAuth        BasicAuth
}

type ServicesList struct {
	UserService        service.UserServiceI
	HabitsService      service.HabitsServiceI
	CompletionsService service.CompletionsServiceI
	StatsService       service.StatsServiceI
	PartnerService     service.PartnerServiceI
	NudgeService       service.NudgeServiceI
	PushService        service.PushServiceI
	JwtService         JWTServiceI
	// Zero value disables per IP limiting
	RateLimit RateLimitOptions
	// /metrics is public when User is empty
	MetricsAuth BasicAuth
}

type BasicAuth struct {
	User     string
	Password string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		habitService:       servicesOptions.HabitsService,
		completionsService: servicesOptions.CompletionsService,
		statsService:       servicesOptions.StatsService,
		partnerService:     servicesOptions.PartnerService,
		nudgeService:       servicesOptions.NudgeService,
		pushService:        servicesOptions.PushService,
		jwtService:         servicesOptions.JwtService,
		limiter:            newIPLimiter(servicesOptions.RateLimit),
		metrics:            newHTTPMetrics(prometheus.NewRegistry()),
		metricsAuth:        servicesOptions.MetricsAuth,
	}
	s.routes()
	return s
}

// Handler returns the router with every route mounted.
func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware, s.RateLimitMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", s.MetricsAuthMiddleware(s.metrics.handler()))
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/users/me", s.GetMe)
			r.Delete("/users/me", s.DeleteMe)
			r.Get("/users/me/reminder", s.GetReminder)
			r.Put("/users/me/reminder", s.UpdateReminder)

			r.Post("/habits", s.CreateHabit)
			r.Get("/habits", s.GetHabits)
			r.Get("/habits/{id}", s.GetHabit)
			r.Patch("/habits/{id}", s.UpdateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)

			r.Post("/completions", s.Complete)
			r.Get("/completions", s.GetCompletion)
			r.Delete("/completions", s.Uncomplete)

			r.Get("/streaks", s.GetStreaks)
			r.Get("/streaks/all", s.GetAllStreaks)
			r.Get("/calendar", s.GetCalendar)

			r.Post("/invites", s.CreateInvite)
			r.Get("/invites", s.ListInvites)
			r.Delete("/invites/{code}", s.RevokeInvite)
			r.Post("/invites/{code}/accept", s.AcceptInvite)

			r.Get("/partner", s.GetPartner)
			r.Delete("/partner", s.DissolvePartnership)
			r.Get("/partner/progress", s.GetPartnerProgress)

			r.Post("/nudges", s.SendNudge)
			r.Get("/nudges", s.ListNudges)

			r.Post("/push/subscriptions", s.Subscribe)
			r.Delete("/push/subscriptions", s.Unsubscribe)
		})
	})
}
