package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/joho/godotenv"
	inhttp "github.com/suchimauz/enrollee-queue-bot/internal/adapters/in/http"
	"github.com/suchimauz/enrollee-queue-bot/internal/adapters/in/rabbitmq"
	intelegram "github.com/suchimauz/enrollee-queue-bot/internal/adapters/in/telegram"
	"github.com/suchimauz/enrollee-queue-bot/internal/adapters/out/cache"
	"github.com/suchimauz/enrollee-queue-bot/internal/adapters/out/captcha"
	"github.com/suchimauz/enrollee-queue-bot/internal/adapters/out/logger"
	"github.com/suchimauz/enrollee-queue-bot/internal/adapters/out/memory"
	"github.com/suchimauz/enrollee-queue-bot/internal/adapters/out/postgres"
	outtelegram "github.com/suchimauz/enrollee-queue-bot/internal/adapters/out/telegram"
	"github.com/suchimauz/enrollee-queue-bot/internal/config"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/services"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/services/dialogue_service"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/services/slot_allocator_service"
)

func main() {
	// .env нужен только для локального запуска, в остальных окружениях
	// переменные приходят из среды
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone, cfg.IsLocal())
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка расписания приема
	scheduleFile, err := config.LoadScheduleFile(cfg.Schedule.ConfigPath)
	if err != nil {
		log.Error("app.schedule.load_failed", out.LogFields{
			"path":  cfg.Schedule.ConfigPath,
			"error": err.Error(),
		})
		os.Exit(1)
	}
	schedule := scheduleFile.Table()

	log.Info("app.schedule.loaded", out.LogFields{
		"path": cfg.Schedule.ConfigPath,
		"days": schedule.Len(),
	})

	// Выбор хранилища: postgres в обычной работе, память при пустом URL
	var (
		queuePort    out.QueuePort
		enrolleePort out.EnrolleePort
		dialoguePort out.DialogueStoragePort
		feedPort     out.EventFeedPort
	)
	if cfg.Database.URL != "" {
		pgAdapter, err := postgres.NewPostgresAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.postgres.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer pgAdapter.Close()

		queuePort = pgAdapter
		enrolleePort = pgAdapter
		dialoguePort = pgAdapter
		feedPort = postgres.NewQueueListener(cfg, pgAdapter, mainLogger)
	} else {
		log.Warn("app.storage.in_memory", out.LogFields{
			"message": "DATABASE_URL is empty, state will not survive restart",
		})

		memAdapter := memory.NewMemoryAdapter()
		queuePort = memAdapter
		enrolleePort = memAdapter
		dialoguePort = memAdapter
		feedPort = memAdapter
	}

	var rosterCache out.RosterCachePort
	if cfg.Cache.Enabled {
		cacheAdapter, err := cache.NewLRUCacheAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		rosterCache = cacheAdapter
	}

	captchaAdapter := captcha.NewCaptchaAdapter(mainLogger)

	// Телеграм-клиент нужен и входному, и исходящему адаптеру
	botApi, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("app.telegram.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	replyAdapter := outtelegram.NewReplyAdapter(botApi, mainLogger)

	// Инициализация сервисов
	captchaService := services.NewCaptchaService(captchaAdapter, mainLogger)
	allocatorService := slot_allocator_service.NewSlotAllocatorService(schedule, queuePort, mainLogger)
	statusService := services.NewQueueStatusService(queuePort, mainLogger)
	dialogueService := dialogue_service.NewDialogueService(
		queuePort,
		enrolleePort,
		dialoguePort,
		replyAdapter,
		rosterCache,
		captchaService,
		allocatorService,
		schedule,
		scheduleFile.Post,
		mainLogger,
	)
	notifierService := services.NewNotifierService(
		feedPort,
		enrolleePort,
		replyAdapter,
		cfg.Notifier.MaxAttempts,
		mainLogger,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Уведомления о продвижении очереди
	go func() {
		if err := notifierService.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("app.notifier.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewQueueEventListener(notifierService, cfg, mainLogger)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	// Служебный HTTP API
	if cfg.HTTP.Enabled {
		if cfg.IsNotLocal() {
			gin.SetMode(gin.ReleaseMode)
		}

		router := gin.Default()
		controller := inhttp.NewQueueController(allocatorService, statusService, cfg)
		controller.RegisterRoutes(router)

		go func() {
			log.Info("app.http.starting", out.LogFields{
				"host": cfg.HTTP.Host,
				"port": cfg.HTTP.Port,
			})

			if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
				log.Error("app.http.failed", out.LogFields{
					"error": err.Error(),
				})
				sigChan <- syscall.SIGTERM
			}
		}()
	}

	// Основной цикл бота
	bot := intelegram.NewTelegramBot(cfg, botApi, dialogueService, mainLogger)
	go func() {
		if err := bot.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("app.telegram.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
	cancel()
}
