package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	amqp "github.com/streadway/amqp"

	"gudang/internal/database"
	"gudang/internal/server"
	"gudang/internal/services"
	"gudang/pkg/rabbitmq"
)

func main() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "gudang.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	sqlitePath := viper.GetString("SQLITE_PATH")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	db, err := database.Connect(databaseURL, sqlitePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Event publishing is optional: without a broker URL the service runs
	// with publishing disabled.
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		// Drain the inventory events queue in the background so published
		// lifecycle events are acknowledged even without a downstream
		// consumer deployed.
		go func() {
			log.Println("Starting inventory events consumer...")
			consumerErr := mqClient.Consume(func(msg amqp.Delivery) error {
				log.Printf("Inventory event %s (tag %d): %s", msg.Type, msg.DeliveryTag, msg.Body)
				return nil
			})
			if consumerErr != nil {
				log.Printf("Inventory events consumer stopped: %v", consumerErr)
			}
		}()
	} else {
		log.Println("RABBITMQ_URL not set, inventory event publishing disabled")
	}

	app := server.New(db, publisher)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", appPort)
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
