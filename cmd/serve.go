package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	acceptAppointmentHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/accept_appointment"
	cancelAppointmentHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/create_appointment"
	deleteScheduleHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/delete_schedule"
	getAppointmentHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/get_available_slots"
	getScheduleHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/get_schedule"
	listSchedulesHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/list_schedules"
	reconcileHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/reconcile"
	registerScheduleHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/register_schedule"
	searchAppointmentsHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/search_appointments"
	searchInterpretersHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/search_interpreters"
	updateAppointmentHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/update_appointment"
	updateScheduleHandler "github.com/m04kA/SMC-InterpreterService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-InterpreterService/internal/api/middleware"
	"github.com/m04kA/SMC-InterpreterService/internal/integrations/userservice"
	appointmentsService "github.com/m04kA/SMC-InterpreterService/internal/service/appointments"
	schedulesService "github.com/m04kA/SMC-InterpreterService/internal/service/schedules"
	createAppointmentUC "github.com/m04kA/SMC-InterpreterService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-InterpreterService/internal/usecase/get_available_slots"
	registerScheduleUC "github.com/m04kA/SMC-InterpreterService/internal/usecase/register_schedule"
	searchInterpretersUC "github.com/m04kA/SMC-InterpreterService/internal/usecase/search_interpreters"
	updateAppointmentUC "github.com/m04kA/SMC-InterpreterService/internal/usecase/update_appointment"
	updateScheduleUC "github.com/m04kA/SMC-InterpreterService/internal/usecase/update_schedule"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP API and the appointment status scheduler",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg
	log := a.log

	// Внешние сервисы
	userClient := userservice.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)

	// Планировщик сверки статусов записей
	sched := a.newScheduler()
	if cfg.Scheduler.Enabled {
		sched.Start(ctx)
		log.Info("Appointment status scheduler started (default interval=%s)", cfg.Scheduler.DefaultInterval())
	} else {
		log.Info("Appointment status scheduler disabled")
	}

	// Инициализируем сервисы
	scheduleSvc := schedulesService.NewService(a.schedules, log)
	appointmentSvc := appointmentsService.NewService(a.appointments, a.txManager, a.events, log)

	// Инициализируем use cases
	registerScheduleUseCase := registerScheduleUC.NewUseCase(a.schedules, a.interpreters, a.txManager, log)
	updateScheduleUseCase := updateScheduleUC.NewUseCase(a.schedules, a.txManager, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		a.appointments,
		a.interpreters,
		userClient,
		a.events,
		a.txManager,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(a.appointments, a.txManager, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		a.schedules,
		a.appointments,
		getAvailableSlotsUC.Settings{
			SlotDurationMinutes: cfg.Slots.DurationMinutes,
			SlotStepMinutes:     cfg.Slots.StepMinutes,
			MaxRangeDays:        cfg.Slots.MaxRangeDays,
		},
		log,
	)
	searchInterpretersUseCase := searchInterpretersUC.NewUseCase(a.interpreters, log)

	// Инициализируем handlers
	registerSchedule := registerScheduleHandler.NewHandler(registerScheduleUseCase, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)
	listSchedules := listSchedulesHandler.NewHandler(scheduleSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	searchInterpreters := searchInterpretersHandler.NewHandler(searchInterpretersUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	searchAppointments := searchAppointmentsHandler.NewHandler(appointmentSvc, log)
	acceptAppointment := acceptAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	reconcileNow := reconcileHandler.NewHandler(sched, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением частоты)
	// ============================================================

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimit.SearchRPS),
		Burst: cfg.RateLimit.SearchBurst,
	})

	public := api.PathPrefix("").Subrouter()
	public.Use(limiter.RateLimit())

	// Поиск интерпретаторов по модальности, локации, специальностям и окну времени
	public.HandleFunc("/interpreters", searchInterpreters.Handle).Methods(http.MethodGet)

	// Свободные слоты; регистрируется раньше /schedules/{scheduleId}
	public.HandleFunc("/schedules/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписания ---
	protected.HandleFunc("/schedules", registerSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{scheduleId}", updateSchedule.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", searchAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/accept", acceptAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Администрирование ---
	protected.HandleFunc("/admin/reconcile", reconcileNow.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	select {
	case <-ctx.Done():
		log.Info("Shutting down server...")
	case err := <-serverErr:
		log.Error("Server failed: %v", err)
		sched.Stop()
		return err
	}

	// Сначала останавливаем планировщик, затем HTTP сервер
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
