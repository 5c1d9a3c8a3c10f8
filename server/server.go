// Package server contains host API of served locks.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/systems/lock"
	"github.com/gobwas/glob"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "server"
)

// ILockRegistry defines served locks source.
type ILockRegistry interface {
	Accessories() []*lock.Accessory
	Accessory(id string) (*lock.Accessory, bool)
}

// GlueServer describes host API server.
type GlueServer struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	registry   ILockRegistry
	outcomes   *cache.Cache
	wsSettings websocket.Upgrader
	anonymous  *providers.AuthenticatedUser
	srv        *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer constructs a new host API server.
func NewServer(settings providers.ISettingsProvider, registry ILockRegistry) *GlueServer {
	ttl := settings.Settings().Server.IdempotencyTTL
	s := &GlueServer{
		Logger:   settings.SystemLogger(),
		Settings: settings,
		registry: registry,
		outcomes: cache.New(ttl, 2*ttl),
		wsSettings: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		anonymous: &providers.AuthenticatedUser{
			Username: "anonymous",
			Rules: []*providers.BakedRule{{
				Role:  "anonymous",
				Locks: []glob.Glob{glob.MustCompile("*")},
				Verbs: []providers.SecVerb{providers.SecVerbAll},
			}},
		},
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", settings.Settings().Server.Port),
		Handler:           s.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start launches host API server.
func (s *GlueServer) Start() {
	go func() {
		err := s.srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal("Failed to start server", err, common.LogSystemToken, logSystem)
		}
	}()

	s.Logger.Info(fmt.Sprintf("Started server on port %d", s.Settings.Settings().Server.Port),
		common.LogSystemToken, logSystem)
}

// Stop gracefully shuts down the server.
// WS connections and commands issued through them are cancelled.
func (s *GlueServer) Stop(ctx context.Context) error {
	s.cancel()
	return s.srv.Shutdown(ctx)
}

// Root handler with CORS and panic recovery.
func (s *GlueServer) handler() http.Handler {
	router := mux.NewRouter()
	s.registerAPI(router)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", headerIdempotencyKey}),
	)

	return handlers.RecoveryHandler(handlers.RecoveryLogger(&recoveryLogger{s.Logger}))(cors(router))
}

// All API registration.
func (s *GlueServer) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix("/pub").Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)
	publicRouter.Handle("/metrics", s.Settings.Metrics().Handler()).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/lock", s.getLocks).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/lock/{%s}", urlLockID), s.getLock).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/lock/{%s}/{%s}", urlLockID, urlState),
		s.lockCommand).Methods(http.MethodPost)
	apiRouter.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	apiRouter.Use(s.authMiddleware)
	apiRouter.Use(s.logMiddleware)
}

// Adapts system logger to the recovery handler.
type recoveryLogger struct {
	logger common.ILoggerProvider
}

// Println logs recovered panic.
func (r *recoveryLogger) Println(v ...interface{}) {
	r.logger.Error("Recovered from panic", errors.New(fmt.Sprint(v...)), common.LogSystemToken, logSystem)
}
