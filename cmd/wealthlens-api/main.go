// README: Entry point; loads config, wires holdings, caches and responders, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wealthlens/internal/config"
	httptransport "wealthlens/internal/http"
	"wealthlens/internal/infra"
	"wealthlens/internal/intent"
	"wealthlens/internal/modules/chat"
	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/modules/pricing"
	"wealthlens/internal/modules/session"
	"wealthlens/internal/responders"
	"wealthlens/internal/routing"
	"wealthlens/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var src portfolio.Source = portfolio.NewStaticSource()
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		if err := infra.Migrate(ctx, dbPool, migrations.FS); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		store := portfolio.NewStore(dbPool)
		if err := seedIfEmpty(ctx, store); err != nil {
			log.Fatalf("seed holdings: %v", err)
		}
		src = store
		log.Printf("holdings: postgres")
	}

	var (
		quoteCache   pricing.Cache = pricing.NewMemoryCache()
		sessionStore session.Store = session.NewMemoryStore()
	)
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		defer redisClient.Close()
		quoteCache = pricing.NewRedisCache(redisClient)
		sessionStore = session.NewRedisStore(redisClient)
		log.Printf("caches: redis %s", cfg.Redis.Addr)
	}

	portfolioSvc := portfolio.NewService(src, nil)
	pricingSvc := pricing.NewService(quoteCache, portfolioSvc, cfg.Pricing.TTL)
	portfolioSvc.SetLivePricer(pricingSvc)

	registry, err := responders.NewRegistry(portfolioSvc)
	if err != nil {
		log.Fatalf("responders: %v", err)
	}
	classifier := intent.NewClassifier(intent.MustDefaultLexicon(), intent.WithSecondaryFloor(cfg.Routing.SecondaryFloor))
	engine := routing.NewEngine(classifier, registry, routingConfig(cfg.Routing))
	sessionSvc := session.NewService(sessionStore, cfg.Session.TTL)

	gin.SetMode(gin.ReleaseMode)
	handler := httptransport.NewServer(httptransport.ServerDeps{
		Chat:           chat.NewService(engine, sessionSvc),
		Portfolio:      portfolioSvc,
		Pricing:        pricingSvc,
		Sessions:       sessionSvc,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func routingConfig(rc config.RoutingConfig) routing.Config {
	cfg := routing.DefaultConfig()
	cfg.PrimaryFloor = rc.PrimaryFloor
	cfg.SecondaryDispatchFloor = rc.SecondaryDispatchFloor
	cfg.HighConfidence = rc.HighConfidence
	cfg.ComplexQueryTokens = rc.ComplexQueryTokens
	return cfg
}

func seedIfEmpty(ctx context.Context, store *portfolio.Store) error {
	_, err := store.Holdings(ctx)
	if !errors.Is(err, portfolio.ErrNoHoldings) {
		return err
	}
	h, err := portfolio.NewStaticSource().Holdings(ctx)
	if err != nil {
		return err
	}
	log.Printf("holdings: seeding %d stocks, %d funds", len(h.Stocks), len(h.Funds))
	return store.Seed(ctx, h)
}
