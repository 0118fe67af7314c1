package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"libraryapi/internal/api/graphql/middleware"
	"libraryapi/internal/api/graphql/reqctx"
	"libraryapi/internal/api/graphql/resolver"
	"libraryapi/internal/api/graphql/schema"
	"libraryapi/internal/config"
	"libraryapi/internal/logger"
	"libraryapi/internal/model"
	"libraryapi/internal/repository/postgres"
	"libraryapi/internal/server"
	"libraryapi/internal/service"
	"libraryapi/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	authorRepo := postgres.NewAuthorRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	authService := service.NewAuth(userRepo, tokenManager, logger.WithComponent("auth"))
	catalogService := service.NewCatalog(bookRepo, authorRepo, logger.WithComponent("catalog"))
	ctxMgr := reqctx.NewManager()

	httpServer, err := registerHTTPServer(logger, authService, catalogService, ctxMgr, fmt.Sprintf(":%s", cfg.HTTP.Port))
	if err != nil {
		logger.Fatal("failed to build GraphQL server", "error", err)
	}

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	authService *service.Auth,
	catalogService *service.Catalog,
	ctxMgr model.ContextManager,
	addr string,
) (*server.HTTPServer, error) {
	root := resolver.NewRoot(authService, catalogService, ctxMgr, logger)
	parsed, err := graphql.ParseSchema(schema.String(), root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	authenticate := middleware.NewAuthenticate(authService, ctxMgr, logger)
	logging := middleware.NewLogging(logger)

	var handler http.Handler = &relay.Handler{Schema: parsed}
	handler = authenticate.Handle(handler)
	handler = logging.Handle(handler)
	handler = middleware.CORS(handler)

	mux := http.NewServeMux()
	mux.Handle("/", handler)

	return server.NewHTTPServer(mux, addr), nil
}
