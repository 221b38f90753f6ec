package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advanceQuestionnaireHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/advance_questionnaire"
	createQuestionnaireHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/create_questionnaire"
	createSelectionHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/create_selection"
	deleteSelectionHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/delete_selection"
	getQuestionnaireHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/get_questionnaire"
	getQuoteHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/get_quote"
	getReceiptsHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/get_receipts"
	getSelectionHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/get_selection"
	rewindQuestionnaireHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/rewind_questionnaire"
	submitBookingHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/submit_booking"
	toggleAnswerHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/toggle_answer"
	toggleDiscardHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/toggle_discard"
	updateSelectionHandler "github.com/m04kA/SEP-BookingService/internal/api/handlers/update_selection"
	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	"github.com/m04kA/SEP-BookingService/internal/config"
	questionnaireRepo "github.com/m04kA/SEP-BookingService/internal/infra/storage/questionnaire"
	receiptRepo "github.com/m04kA/SEP-BookingService/internal/infra/storage/receipt"
	selectionRepo "github.com/m04kA/SEP-BookingService/internal/infra/storage/selection"
	experienceAPIClient "github.com/m04kA/SEP-BookingService/internal/integrations/experienceapi"
	questionnaireService "github.com/m04kA/SEP-BookingService/internal/service/questionnaire"
	selectionsService "github.com/m04kA/SEP-BookingService/internal/service/selections"
	advanceQuestionnaireUC "github.com/m04kA/SEP-BookingService/internal/usecase/advance_questionnaire"
	submitBookingUC "github.com/m04kA/SEP-BookingService/internal/usecase/submit_booking"
	"github.com/m04kA/SEP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SEP-BookingService/pkg/logger"
	"github.com/m04kA/SEP-BookingService/pkg/metrics"
	"github.com/m04kA/SEP-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SEP-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SEP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента Experiences API
	experienceClient := experienceAPIClient.NewClient(
		cfg.ExperienceAPI.URL,
		time.Duration(cfg.ExperienceAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ExperienceAPI=%s timeout=%ds)",
		cfg.ExperienceAPI.URL, cfg.ExperienceAPI.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		selectionRepository     *selectionRepo.Repository
		questionnaireRepository *questionnaireRepo.Repository
		receiptRepository       *receiptRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		selectionRepository = selectionRepo.NewRepository(wrappedDB)
		questionnaireRepository = questionnaireRepo.NewRepository(wrappedDB)
		receiptRepository = receiptRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		selectionRepository = selectionRepo.NewRepository(db)
		questionnaireRepository = questionnaireRepo.NewRepository(db)
		receiptRepository = receiptRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	selectionsSvc := selectionsService.NewService(
		selectionRepository,
		receiptRepository,
		log,
	)
	questionnaireSvc := questionnaireService.NewService(
		questionnaireRepository,
		log,
	)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		selectionRepository,
		receiptRepository,
		experienceClient,
		txMgr,
		log,
	)

	advanceQuestionnaireUseCase := advanceQuestionnaireUC.NewUseCase(
		questionnaireRepository,
		experienceClient,
		log,
	)

	// Инициализируем handlers
	createSelection := createSelectionHandler.NewHandler(selectionsSvc, log)
	getSelection := getSelectionHandler.NewHandler(selectionsSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(selectionsSvc, log)
	deleteSelection := deleteSelectionHandler.NewHandler(selectionsSvc, log)
	toggleDiscard := toggleDiscardHandler.NewHandler(selectionsSvc, log)
	getQuote := getQuoteHandler.NewHandler(selectionsSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getReceipts := getReceiptsHandler.NewHandler(selectionsSvc, log)
	createQuestionnaire := createQuestionnaireHandler.NewHandler(questionnaireSvc, log)
	getQuestionnaire := getQuestionnaireHandler.NewHandler(questionnaireSvc, log)
	toggleAnswer := toggleAnswerHandler.NewHandler(questionnaireSvc, log)
	advanceQuestionnaire := advanceQuestionnaireHandler.NewHandler(advanceQuestionnaireUseCase, log)
	rewindQuestionnaire := rewindQuestionnaireHandler.NewHandler(questionnaireSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Черновики бронирования ---
	// Создание черновика
	protected.HandleFunc("/selections", createSelection.Handle).Methods(http.MethodPost)

	// Получение черновика по ID
	protected.HandleFunc("/selections/{selectionId}", getSelection.Handle).Methods(http.MethodGet)

	// Частичное обновление черновика
	protected.HandleFunc("/selections/{selectionId}", updateSelection.Handle).Methods(http.MethodPatch)

	// Удаление черновика
	protected.HandleFunc("/selections/{selectionId}", deleteSelection.Handle).Methods(http.MethodDelete)

	// Переключение исключенной категории
	protected.HandleFunc("/selections/{selectionId}/discards", toggleDiscard.Handle).Methods(http.MethodPost)

	// Разбивка стоимости черновика
	protected.HandleFunc("/selections/{selectionId}/quote", getQuote.Handle).Methods(http.MethodGet)

	// Отправка бронирования во внешний Experiences API
	protected.HandleFunc("/selections/{selectionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// История отправленных бронирований пользователя
	protected.HandleFunc("/bookings", getReceipts.Handle).Methods(http.MethodGet)

	// --- Анкета предпочтений ---
	// Создание анкеты
	protected.HandleFunc("/questionnaire", createQuestionnaire.Handle).Methods(http.MethodPost)

	// Текущее состояние анкеты
	protected.HandleFunc("/questionnaire", getQuestionnaire.Handle).Methods(http.MethodGet)

	// Переключение варианта ответа текущего вопроса
	protected.HandleFunc("/questionnaire/answers", toggleAnswer.Handle).Methods(http.MethodPut)

	// Переход next (с охраной и завершением на последнем вопросе)
	protected.HandleFunc("/questionnaire/next", advanceQuestionnaire.Handle).Methods(http.MethodPost)

	// Переход prev (без охраны, no-op на первом вопросе)
	protected.HandleFunc("/questionnaire/prev", rewindQuestionnaire.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
