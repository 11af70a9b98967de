package main

import (
	"context"
	"log"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/bistro_backend/internal/config"
	"github.com/Skotchmaster/bistro_backend/internal/es"
	"github.com/Skotchmaster/bistro_backend/internal/handlers"
	"github.com/Skotchmaster/bistro_backend/internal/logging"
	"github.com/Skotchmaster/bistro_backend/internal/middleware/auth"
	loggingmw "github.com/Skotchmaster/bistro_backend/internal/middleware/logging"
	"github.com/Skotchmaster/bistro_backend/internal/mongodb"
	"github.com/Skotchmaster/bistro_backend/internal/mykafka"
	"github.com/Skotchmaster/bistro_backend/internal/repository"
	"github.com/Skotchmaster/bistro_backend/internal/service"
	"github.com/Skotchmaster/bistro_backend/internal/stripegw"
	httpserver "github.com/Skotchmaster/bistro_backend/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	ctx := context.Background()
	_, db, err := mongodb.Open(ctx, cfg.MONGO_URI, cfg.MONGO_DB)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	logger.Info("mongo connected", "db", cfg.MONGO_DB)

	repos := repository.New(db)

	var producer *mykafka.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer(strings.Split(cfg.KAFKA_ADDRESS, ","))
	} else {
		logger.Warn("KAFKA_ADDRESS not set, event publishing disabled")
	}

	var esClient *elasticsearch.Client
	if cfg.ES_URL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, menu search disabled")
	}

	tokens := &service.TokenService{JWTSecret: []byte(cfg.JWT_SECRET)}
	guard := &auth.Guard{Tokens: tokens, Users: repos.Users}

	deps := &httpserver.Deps{
		Guard:         guard,
		JWTHandler:    &handlers.JWTHandler{Tokens: tokens},
		MenuHandler:   &handlers.MenuHandler{Menu: repos.Menu, Producer: producer, ES: esClient, ESIndex: cfg.ES_MENU_INDEX},
		ReviewHandler: &handlers.ReviewHandler{Reviews: repos.Reviews},
		CartHandler:   &handlers.CartHandler{Carts: repos.Carts, Producer: producer},
		UserHandler:   &handlers.UserHandler{Users: repos.Users},
		PaymentHandler: &handlers.PaymentHandler{
			Payments: repos.Payments,
			Carts:    repos.Carts,
			Gateway:  stripegw.New(cfg.STRIPE_SECRET_KEY),
			Producer: producer,
		},
		StatsHandler:  &handlers.StatsHandler{Users: repos.Users, Menu: repos.Menu, Payments: repos.Payments},
		SearchHandler: handlers.NewSearchHandler(esClient, cfg.ES_MENU_INDEX),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, deps)

	logger.Info("server starting", "port", cfg.PORT)
	if err := e.Start(":" + cfg.PORT); err != nil {
		log.Fatalf("server: %v", err)
	}
}
