package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"quickmenu/config"
	httpapi "quickmenu/internal/api/http"
	"quickmenu/internal/logger"
	"quickmenu/internal/service"
	"quickmenu/internal/storage"
)

const orderEventsTopic = "order-events"

func main() {
	cfg := config.Load()
	logger.Init(cfg.Env)
	defer logger.Sync()
	log := logger.L()

	cafeRepo, orderRepo := initStores(cfg, log)

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		publisher = storage.NewKafkaPublisher(cfg.NewKafkaWriter(orderEventsTopic))
		log.Info("order events enabled", zap.String("topic", orderEventsTopic))
	}

	var cartStore service.CartStore
	var analytics service.Analytics
	if rdb, err := cfg.InitRedis(); err != nil {
		log.Warn("redis unavailable, carts and analytics disabled", zap.Error(err))
	} else {
		cartStore = storage.NewRedisCartStore(rdb, 24*time.Hour)
		analytics = storage.NewRedisAnalytics(rdb)
	}

	cafeSvc := service.NewCafeService(cafeRepo)
	orderSvc := service.NewOrderService(orderRepo, cafeRepo, publisher, analytics)

	var cartSvc service.CartServiceInterface
	if cartStore != nil {
		cartSvc = service.NewCartService(cartStore, cafeRepo, orderSvc)
	}

	qr := service.MenuQRGenerator{DefaultBaseURL: cfg.MenuBaseURL}

	handler := httpapi.NewHandler(cafeSvc, orderSvc, cartSvc, qr)
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}

// initStores selects the configured backend. When Postgres is unreachable the
// service degrades to the in-memory store instead of refusing every request.
func initStores(cfg config.Config, log *zap.Logger) (service.CafeRepository, service.OrderRepository) {
	if cfg.StorageBackend == "postgres" {
		db, err := cfg.InitPostgres()
		if err == nil {
			pg := storage.NewPostgresRepository(db)
			if err := pg.EnsureSchema(context.Background()); err != nil {
				log.Fatal("failed to ensure schema", zap.Error(err))
			}
			log.Info("using postgres storage")
			return pg, pg
		}
		log.Warn("postgres unavailable, falling back to in-memory store", zap.Error(err))
	} else {
		log.Info("using in-memory storage")
	}

	mem := storage.NewMemoryRepository()
	return mem, mem
}
