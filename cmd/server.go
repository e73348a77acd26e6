package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"todoer/internal/config"
	"todoer/internal/core"
	"todoer/internal/db"
	"todoer/internal/http/handler"
	"todoer/internal/http/handler/middleware"
	"todoer/internal/http/payload"
	"todoer/internal/http/server"
	"todoer/internal/repository"
	"todoer/pkg/hash"
	"todoer/pkg/jwt"
	"todoer/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("todoer", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewUserRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// todoer
	todoer := core.NewTodoer(
		logger,
		repo,
		jwtService,
		hash.NewBcryptHasher())

	// handler
	todoHlr := handler.NewTodoHandler(
		logger,
		payload.DecodeValidator{},
		todoer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	auth := middleware.NewAuthMiddleware(logger, jwtService)

	// register routes
	mux.HandleFunc(handler.SignUp, todoHlr.HandleSignUp)
	mux.HandleFunc(handler.SignIn, todoHlr.HandleSignIn)
	mux.Handle(handler.Refresh, auth.Authenticate(http.HandlerFunc(todoHlr.HandleRefresh)))
	mux.Handle(handler.GetTodos, auth.Authenticate(http.HandlerFunc(todoHlr.HandleGetTodos)))
	mux.Handle(handler.AddTodo, auth.Authenticate(http.HandlerFunc(todoHlr.HandleAddTodo)))
	mux.Handle(handler.DeleteTodo, auth.Authenticate(http.HandlerFunc(todoHlr.HandleDeleteTodo)))
	mux.Handle(handler.EditTodo, auth.Authenticate(http.HandlerFunc(todoHlr.HandleEditTodo)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
