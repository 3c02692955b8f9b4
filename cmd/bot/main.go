package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/dkazarau/histbot/internal/config"
	"github.com/dkazarau/histbot/internal/delivery/telegram"
	"github.com/dkazarau/histbot/internal/infra/postgres"
	"github.com/dkazarau/histbot/internal/logger"
	"github.com/dkazarau/histbot/internal/repository"
	"github.com/dkazarau/histbot/internal/service"
	"github.com/dkazarau/histbot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		log.Panic(err)
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Запустить бота",
		},
		{
			Command:     "test",
			Description: "Пройти тест",
		},
		{
			Command:     "marathon",
			Description: "Начать марафон",
		},
		{
			Command:     "stats",
			Description: "Показать статистику",
		},
		{
			Command:     "addevent",
			Description: "Добавить событие (дата | описание)",
		},
		{
			Command:     "addfigure",
			Description: "Добавить деятеля (имя | достижение)",
		},
		{
			Command:     "reminders",
			Description: "Настроить напоминания",
		},
		{
			Command:     "help",
			Description: "Помощь",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		log.Printf("Failed to set bot commands: %v", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories.
	factRepo, err := repository.NewFactRepository(cfg.FactsJSONPath)
	if err != nil {
		log.Fatal(err)
	}
	if err = factRepo.SeedSampleData(ctx); err != nil {
		log.Fatal(err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	statsRepo := repository.NewStatsRepository(pool)
	reminderRepo := repository.NewReminderRepository(pool)

	// Initialize services.
	sessions := storage.NewSessionStorage()
	selector := service.NewSelector(factRepo)
	grader := service.NewGrader()

	quizService := service.NewQuizService(selector, grader, statsRepo, sessions, zlog)
	marathonService := service.NewMarathonService(quizService, sessions, zlog)
	factService := service.NewFactService(factRepo)
	statsService := service.NewStatsService(statsRepo)
	reminderService := service.NewReminderService(reminderRepo, factRepo, zlog)

	handler := telegram.NewHandler(
		bot,
		zlog,
		quizService,
		marathonService,
		factService,
		statsService,
		reminderService,
		sessions,
		cfg.MarathonQuestions,
	)
	reminderService.SetNotifier(handler)

	go reminderService.Start(ctx)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		log.Panic(err)
	}

	<-ctx.Done()
	log.Println("shutdown signal received")
}
