package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio-site/api"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/site"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogging(c)
	log.Info().Msg("Initializing app...")

	// Generation modes only make sense against a SQL store and exit when done
	if config.GetBool(c, "GENERATE_MODELS", false) || config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		if err := runGenerators(c); err != nil {
			log.Fatal().Err(err).Msg("generation failed")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	currentDB, err := database.Open(ctx, c)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening store")
	}
	defer currentDB.Close()

	state, err := site.NewState(context.Background(), currentDB.ProjectRepo(), currentDB.CredentialRepo(),
		config.GetString(c, "ADMIN_DEFAULT_PASSWORD", "admin123"))
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading site state")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(state, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// setupLogging applies LOG_LEVEL and switches to console output in development.
func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(config.GetString(c, "LOG_LEVEL", "info"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetBool(c, "DEVELOPMENT", false) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func runGenerators(c map[string]string) error {
	db, err := database.OpenGorm(c)
	if err != nil {
		return err
	}

	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		return models.GenerateModels(db)
	}

	log.Info().Msg("Generating column mismatch report...")
	mismatched, err := models.GenerateColumnMismatchReport(db)
	if err != nil {
		return err
	}
	log.Info().Int("mismatched", mismatched).Msg("column report complete")
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-ch)
}
