// @title Habit-tracker API
// @description API for habit-tracker app "Streakmate": habits, daily completions, streaks and accountability partners
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	_ "github.com/limbo/streakmate/docs"
	"github.com/limbo/streakmate/internal/api"
	"github.com/limbo/streakmate/internal/repository"
	"github.com/limbo/streakmate/internal/service"
	"github.com/limbo/streakmate/pkg/cleanup"
	"github.com/limbo/streakmate/pkg/config"
	jwtservice "github.com/limbo/streakmate/pkg/jwt_service"
	"github.com/limbo/streakmate/pkg/push"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)

	usersRepo := repository.NewUsersRepoWithConn(pool)
	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	completionsRepo := repository.NewCompletionsRepoWithConn(pool)
	partnershipsRepo := repository.NewPartnershipsRepoWithConn(pool)
	invitesRepo := repository.NewInvitesRepoWithConn(pool)
	nudgesRepo := repository.NewNudgesRepoWithConn(pool)
	pushRepo := repository.NewPushSubscriptionsRepoWithConn(pool)

	// Without credentials subscriptions are still stored, nothing is sent
	var sender service.PushSender
	fcm, err := push.NewFCMSender(context.Background(), push.Credentials{
		EncodedJSON: cfg.GetString("FCM_SERVICE_ACCOUNT_JSON"),
		File:        cfg.GetString("FCM_CREDENTIALS_FILE"),
	})
	if err != nil {
		slog.Warn("push notifications disabled", slog.String("reason", err.Error()))
	} else {
		sender = fcm
	}
	pushService := service.NewPushService(pushRepo, sender)
	var notifier service.Notifier
	if sender != nil {
		notifier = pushService
	}

	nudgeService := service.NewNudgeService(nudgesRepo, partnershipsRepo, usersRepo, notifier, service.NudgeOptions{
		Cooldown:   cfg.GetDuration("NUDGE_COOLDOWN", service.DefaultNudgeCooldown),
		DailyLimit: cfg.GetInt("NUDGE_DAILY_LIMIT", service.DefaultNudgeDailyLimit),
	})
	partnerService := service.NewPartnerService(service.PartnerRepos{
		Users:        usersRepo,
		Habits:       habitsRepo,
		Completions:  completionsRepo,
		Partnerships: partnershipsRepo,
		Invites:      invitesRepo,
	})

	if notifier != nil {
		reminders := service.NewReminderJob(usersRepo, habitsRepo, completionsRepo, notifier,
			cfg.GetDuration("REMINDER_INTERVAL", service.DefaultReminderInterval))
		if err = reminders.Start(); err != nil {
			log.Fatal("starting reminder job error: " + err.Error())
		}
		cleanup.Register(&cleanup.Job{
			Name: "stopping reminder job",
			F: func() error {
				reminders.Stop()
				return nil
			},
		})
	}

	trustedProxies, err := api.ParseTrustedProxies(cfg.GetString("TRUSTED_PROXIES"))
	if err != nil {
		log.Fatal("reading TRUSTED_PROXIES error: " + err.Error())
	}
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		HabitsService:      service.NewHabitsService(habitsRepo),
		CompletionsService: service.NewCompletionsService(habitsRepo, completionsRepo),
		StatsService:       service.NewStatsService(habitsRepo, completionsRepo),
		PartnerService:     partnerService,
		NudgeService:       nudgeService,
		PushService:        pushService,
		JwtService: jwtservice.New(cfg.GetString("JWT_SECRET")).
			WithTTL(cfg.GetDuration("JWT_TTL", time.Hour)),
		RateLimit: api.RateLimitOptions{
			RPS:            cfg.GetFloat("RATE_LIMIT_RPS", 10),
			Burst:          cfg.GetInt("RATE_LIMIT_BURST", 20),
			TrustedProxies: trustedProxies,
		},
		MetricsAuth: api.BasicAuth{
			User:     cfg.GetString("METRICS_USER"),
			Password: cfg.GetString("METRICS_PASSWORD"),
		},
	})

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(strings.Split(cfg.GetStringOr("CORS_ORIGINS", "*"), ",")),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	server := http.Server{
		Addr:         cfg.GetStringOr("API_ADDRESS", ":8080"),
		Handler:      corsHandler(serv.Handler()),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: " + err.Error())
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("got signal, shutting down", slog.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}
