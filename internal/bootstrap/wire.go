package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/unifiedcommerce/shop-service/internal/application/auth"
	"github.com/unifiedcommerce/shop-service/internal/application/catalog"
	"github.com/unifiedcommerce/shop-service/internal/application/shopping"
	"github.com/unifiedcommerce/shop-service/internal/audit"
	"github.com/unifiedcommerce/shop-service/internal/config"
	"github.com/unifiedcommerce/shop-service/internal/infrastructure/db/postgres"
	"github.com/unifiedcommerce/shop-service/internal/infrastructure/jsonfile"
	"github.com/unifiedcommerce/shop-service/internal/infrastructure/memory"
	rabbitmq_pub "github.com/unifiedcommerce/shop-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/unifiedcommerce/shop-service/internal/infrastructure/redis"
	"github.com/unifiedcommerce/shop-service/internal/infrastructure/security"
	"github.com/unifiedcommerce/shop-service/internal/logger"
	http_handlers "github.com/unifiedcommerce/shop-service/internal/transport/http/handlers"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/middleware"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/response"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (DBCloser, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(rabbitURL string) (Publisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

type Publisher interface{}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	if cfg.UsingDefaultSecret {
		logger.Logger.Warn().Msg("JWT_SECRET not set; using insecure development default")
	}

	var cleanupFns []func()

	// 1) storage backend
	var (
		userRepo    auth.UserRepo
		productRepo catalog.ProductRepo
		listRepo    shopping.ListRepo
		sqlDB       *sql.DB // nil for the flat-file backend
	)

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := deps.NewDB(cfg.DBAddr, cfg.Env == "dev")
		if err != nil {
			return nil, nil, err
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		var ok bool
		sqlDB, ok = db.(*sql.DB)
		if !ok {
			runCleanup(cleanupFns)
			return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
		}

		if err := postgres.Migrate(context.Background(), sqlDB); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}

		userRepo = postgres.NewUserRepo(sqlDB)
		productRepo = postgres.NewProductRepo(sqlDB)
		listRepo = postgres.NewShoppingListRepo(sqlDB)

	case config.BackendJSONFile:
		store, err := jsonfile.Open(cfg.JSONDBPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Logger.Info().Str("path", cfg.JSONDBPath).Msg("using flat-file store")

		userRepo = jsonfile.NewUserRepo(store)
		productRepo = jsonfile.NewProductRepo(store)
		listRepo = jsonfile.NewShoppingListRepo(store)

	default:
		return nil, nil, errors.New("bootstrap: unknown store backend " + cfg.StoreBackend)
	}

	// 2) redis (best-effort; only login rate limiting depends on it)
	var redisCli RedisClient
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, "", 0)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; login rate limiting disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 3) publisher
	var pub Publisher
	if cfg.RabbitURL != "" {
		pub, err = deps.NewPublisher(cfg.RabbitURL)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; lifecycle events disabled")
			pub = memory.NewNoopPublisher()
		}
	} else {
		pub = memory.NewNoopPublisher()
	}

	if c, ok := pub.(interface{ Close() error }); ok {
		cleanupFns = append(cleanupFns, func() { _ = c.Close() })
	}

	eventPub, ok := pub.(auth.EventPublisher)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: publisher does not implement auth.EventPublisher")
	}

	// 4) security
	hasher := security.NewBcryptHasher(0)
	signer := security.NewJWTSigner(cfg.JWTSecret, "shop-service")

	// 5) services
	authSvc := auth.NewService(userRepo, hasher, signer, eventPub, auth.Config{
		TokenTTL:            cfg.TokenTTL,
		AllowSelfServeAdmin: cfg.AllowSelfServeAdmin,
	})

	auditLog := audit.New(logger.Logger)
	authSvc = authSvc.WithAudit(auditLog.Event)

	catalogSvc := catalog.NewService(productRepo)
	shoppingSvc := shopping.NewService(listRepo)

	// 6) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	productH := http_handlers.NewProductHandler(catalogSvc)
	listH := http_handlers.NewShoppingListHandler(shoppingSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB, cfg.StoreBackend)

	authMW := middleware.Auth(signer, response.WriteError)

	var loginRL func(http.Handler) http.Handler
	if redisCli != nil {
		if c, ok := redisCli.(*redis.Client); ok {
			loginRL = middleware.RateLimitFixedWindow(
				redis.NewFixedWindowLimiter(c),
				middleware.FixedWindowConfig{
					RouteKey: "auth.login",
					Limit:    cfg.LoginRateLimit,
					Window:   cfg.LoginRateWindow,
				},
				response.WriteError,
			)
		}
	}

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Health:       healthH,
		Auth:         authH,
		Products:     productH,
		ShoppingList: listH,
		AuthMW:       authMW,
		LoginRL:      loginRL,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return config.NewDB(addr, debug)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(url string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
