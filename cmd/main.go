package main

import (
	"context"
	"log"

	_ "gw-fraud-scoring/docs"
	"gw-fraud-scoring/internal/app"
)

// @title           Fraud Scoring API
// @version         1.0
// @description     Сервис оценки риска мошенничества по транзакциям клиентов: правила, поведенческие сигналы, объяснения
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app, err := app.NewApp()
	if err != nil {
		log.Fatalf("Ошибка создания приложения: %v", err)
	}

	if err := app.BuildAuthLayer(context.Background()); err != nil {
		log.Fatalf("Ошибка сборки слоя auth: %v", err)
	}
	if err := app.BuildScoringLayer(); err != nil {
		log.Fatalf("Ошибка сборки слоя scoring: %v", err)
	}
	if err := app.StartBehaviorConsumer(); err != nil {
		log.Fatalf("Ошибка запуска kafka consumer: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Ошибка при работе приложения: %v", err)
	}
}
