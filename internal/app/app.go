package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"gw-fraud-scoring/internal/api/handlers"
	"gw-fraud-scoring/internal/api/middlew"
	"gw-fraud-scoring/internal/config"
	"gw-fraud-scoring/internal/db"
	"gw-fraud-scoring/internal/explainer"
	"gw-fraud-scoring/internal/kafka"
	"gw-fraud-scoring/internal/metrics"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/server"
	"gw-fraud-scoring/internal/service"
	"gw-fraud-scoring/internal/storage"
	"gw-fraud-scoring/internal/storage/mongodb"
	"gw-fraud-scoring/internal/storage/postgres"
	"gw-fraud-scoring/pkg/logger"
)

type App struct {
	log             *slog.Logger
	server          *server.Server
	pool            *pgxpool.Pool
	logFile         *os.File
	cfg             *config.Config
	authService     *service.AuthService
	analysisService *service.AnalysisService
	kafkaProducer   kafka.Producer
	kafkaConsumer   *kafka.Consumer
	consumerCancel  context.CancelFunc
	archive         storage.AnalysisArchive
	explainer       explainer.Explainer
}

func NewApp() (*App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации конфига: %w", err)
	}

	loggerWithFile, err := logger.NewLoggerWithFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	log := loggerWithFile.Logger
	log.Info("инициализация приложения", slog.String("port", cfg.HTTPPort))

	log.Info("выполнение миграций базы данных")
	if err := db.RunMigrations(cfg.DB.MigrationURL(), cfg.DB.MigrationsPath, log); err != nil {
		return nil, fmt.Errorf("ошибка выполнения миграций: %w", err)
	}
	log.Info("миграции успешно применены")

	poolCfg := db.DefaultPoolConfig()
	poolCfg.MaxConns = cfg.DB.MaxConns
	poolCfg.MinConns = cfg.DB.MinConns

	pool, err := db.NewPool(context.Background(), cfg.DB.DSN(), poolCfg, log)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}
	log.Info("подключение к базе данных установлено")

	var kafkaProducer kafka.Producer
	if cfg.Kafka.Enabled {
		log.Info("инициализация kafka producer", slog.Any("brokers", cfg.Kafka.Brokers))
		kafkaProducer, err = kafka.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.DecisionsTopic, log)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("ошибка инициализации kafka: %w", err)
		}
	} else {
		log.Info("kafka отключен в конфигурации")
		kafkaProducer = kafka.NewNoOpProducer(log)
	}

	var archive storage.AnalysisArchive = storage.NoOpArchive{}
	if cfg.MongoDB.Enabled {
		log.Info("подключение к MongoDB", slog.String("database", cfg.MongoDB.Database))
		mongoArchive, err := mongodb.NewAnalysisArchive(context.Background(),
			cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Collection, cfg.MongoDB.Timeout)
		if err != nil {
			log.Error("MongoDB недоступна, архив анализов отключён", slog.String("error", err.Error()))
		} else {
			archive = mongoArchive
		}
	} else {
		log.Info("архив анализов отключен в конфигурации")
	}

	expl := explainer.New(explainer.ClientConfig{
		URL:         cfg.Explainer.URL,
		APIKey:      cfg.Explainer.APIKey,
		Model:       cfg.Explainer.Model,
		Timeout:     cfg.Explainer.Timeout,
		Temperature: cfg.Explainer.Temperature,
		MaxTokens:   cfg.Explainer.MaxTokens,
	}, log)

	srv := server.NewServer(cfg.HTTPPort)
	log.Info("сервер инициализирован", slog.String("port", cfg.HTTPPort))
	srv.Router.Use(middleware.RequestID)
	srv.Router.Use(middlew.WithLogger(log))
	srv.Router.Use(middleware.RealIP)
	srv.Router.Use(metrics.Middleware)
	srv.Router.Use(middleware.Recoverer)
	srv.RegisterSwagger()
	srv.Router.Handle("/metrics", metrics.Handler())

	healthHandler := handlers.NewHealthHandler(pool)
	srv.Router.Get("/health", healthHandler.Health)

	return &App{
		log:           log,
		server:        srv,
		pool:          pool,
		logFile:       loggerWithFile.LogFile,
		cfg:           cfg,
		kafkaProducer: kafkaProducer,
		archive:       archive,
		explainer:     expl,
	}, nil
}

func (a *App) BuildAuthLayer(ctx context.Context) error {
	userRepo := postgres.NewUserRepository(a.pool)

	a.authService = service.NewAuthService(
		userRepo,
		a.cfg.JWT.Secret,
		a.cfg.JWT.Expiration,
		a.log,
	)

	if err := a.authService.EnsureAdmin(ctx, a.cfg.Admin.Username, a.cfg.Admin.Password, a.cfg.Admin.Email); err != nil {
		return fmt.Errorf("ошибка создания администратора: %w", err)
	}

	authHandler := handlers.NewAuthHandler(a.authService)
	a.server.Router.Post("/api/v1/login", authHandler.Login)

	a.log.Info("слой 'auth' собран и маршруты зарегистрированы")
	return nil
}

func (a *App) BuildScoringLayer() error {
	if a.authService == nil {
		err := errors.New("authService not initialized, call BuildAuthLayer first")
		a.log.Error(err.Error())
		return err
	}

	txRepo := postgres.NewTransactionRepository(a.pool)
	behaviorRepo := postgres.NewBehaviorRepository(a.pool)
	txManager := service.NewPgxTxManager(a.pool)

	a.analysisService = service.NewAnalysisService(
		txRepo,
		behaviorRepo,
		txManager,
		a.explainer,
		a.archive,
		a.kafkaProducer,
		service.AnalysisConfig{
			Risk:           a.cfg.Risk,
			ExplainTimeout: a.cfg.Explainer.Timeout,
			EventWorkers:   a.cfg.Kafka.Workers,
			EventQueueSize: a.cfg.Kafka.QueueSize,
		},
		a.log,
	)
	transactionService := service.NewTransactionService(txRepo, behaviorRepo, a.cfg.Risk, a.log)
	batchService := service.NewBatchService(
		txRepo,
		postgres.NewBatchJobRepository(a.pool),
		a.analysisService,
		a.cfg.Replay.Concurrency,
		a.log,
	)
	statisticsService := service.NewStatisticsService(
		postgres.NewStatisticsRepository(a.pool),
		txRepo,
		behaviorRepo,
		a.cfg.Risk,
		a.log,
	)

	txHandler := handlers.NewTransactionHandler(transactionService, a.analysisService)
	customerHandler := handlers.NewCustomerHandler(transactionService)
	batchHandler := handlers.NewBatchHandler(batchService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)

	a.server.Router.Route("/api/v1", func(r chi.Router) {
		r.Use(middlew.RequireAuth(a.authService))

		r.Post("/transactions", txHandler.Create)
		r.Get("/transactions", txHandler.List)
		r.Get("/transactions/fraudulent", txHandler.Fraudulent)
		r.Get("/transactions/{id}", txHandler.GetByID)
		r.Post("/transactions/{id}/analyze", txHandler.Analyze)
		r.Get("/transactions/{id}/analysis", txHandler.LatestAnalysis)

		r.Get("/customers/{customerID}/transactions", customerHandler.Transactions)
		r.Get("/customers/{customerID}/stats", customerHandler.Stats)
		r.Get("/customers/{customerID}/behavior", customerHandler.Behavior)

		r.Get("/statistics/dashboard", statisticsHandler.Dashboard)
		r.Get("/statistics/customers/{customerID}", statisticsHandler.Customer)

		r.Get("/batches/history", batchHandler.History)
		r.Get("/batches/{batchID}", batchHandler.Status)

		r.Group(func(r chi.Router) {
			r.Use(middlew.RequireRole(models.RoleAdmin, models.RoleAnalyst))
			r.Post("/transactions/{id}/replay", txHandler.Replay)
			r.Post("/batches", batchHandler.Upload)
			r.Post("/batches/{batchID}/replay", batchHandler.Replay)
		})
	})

	a.log.Info("слой 'scoring' собран и маршруты зарегистрированы")
	return nil
}

// StartBehaviorConsumer подписывается на снимки поведения клиентов
func (a *App) StartBehaviorConsumer() error {
	if !a.cfg.Kafka.Enabled {
		a.log.Info("kafka отключен, consumer поведения не запускается")
		return nil
	}

	consumer, err := kafka.NewConsumer(
		a.cfg.Kafka.Brokers,
		a.cfg.Kafka.GroupID,
		a.cfg.Kafka.BehaviorTopic,
		a.cfg.Kafka.Workers,
		postgres.NewBehaviorRepository(a.pool),
		a.log,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания kafka consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	consumer.Start(ctx)

	a.kafkaConsumer = consumer
	a.consumerCancel = cancel
	return nil
}

func (a *App) Run() error {
	a.log.Info("сервер запускается")

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска сервера: %w", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case runErr = <-serverErr:
	case sig := <-shutdownChan:
		a.log.Info("получен сигнал завершения", slog.String("signal", sig.String()))
	}

	a.shutdown()
	return runErr
}

func (a *App) shutdown() {
	a.log.Info("приложение останавливается")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("ошибка при остановке http сервера", slog.String("error", err.Error()))
	}

	if a.kafkaConsumer != nil {
		a.consumerCancel()
		if err := a.kafkaConsumer.Close(ctx); err != nil {
			a.log.Error("ошибка при остановке kafka consumer", slog.String("error", err.Error()))
		}
	}

	if a.analysisService != nil {
		a.log.Info("остановка analysis service")
		if err := a.analysisService.Shutdown(ctx); err != nil {
			a.log.Error("ошибка при остановке analysis service", slog.String("error", err.Error()))
		}
	}

	if a.kafkaProducer != nil {
		a.log.Info("закрытие kafka producer")
		if err := a.kafkaProducer.Close(); err != nil {
			a.log.Error("ошибка при закрытии kafka producer", slog.String("error", err.Error()))
		}
	}

	if a.archive != nil {
		if err := a.archive.Close(); err != nil {
			a.log.Error("ошибка при закрытии архива анализов", slog.String("error", err.Error()))
		}
	}

	a.log.Info("закрытие соединения с базой данных")
	a.pool.Close()

	a.log.Info("закрытие файла логов")
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			a.log.Error("ошибка при закрытии файла логов", slog.String("error", err.Error()))
		}
	}

	a.log.Info("приложение остановлено")
}
