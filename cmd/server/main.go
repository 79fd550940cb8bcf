package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/planora/planora/backend-go/internal/asset"
	"github.com/planora/planora/backend-go/internal/auth"
	"github.com/planora/planora/backend-go/internal/catalog"
	"github.com/planora/planora/backend-go/internal/collab"
	"github.com/planora/planora/backend-go/internal/config"
	"github.com/planora/planora/backend-go/internal/db"
	"github.com/planora/planora/backend-go/internal/db/dbgen"
	"github.com/planora/planora/backend-go/internal/design"
	mw "github.com/planora/planora/backend-go/internal/middleware"
	"github.com/planora/planora/backend-go/internal/placement"
	"github.com/planora/planora/backend-go/internal/scene"
)

// playgroundDesignID is a throwaway in-memory room with a sample kitchen.
// Anyone can connect without an account; nothing is persisted.
const playgroundDesignID = "dsgn_playground"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	queries := dbgen.New(pool)

	if err := catalog.Seed(ctx, queries); err != nil {
		slog.Error("seed catalog", "error", err)
		os.Exit(1)
	}

	authService := auth.NewService(queries, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	designService := design.NewService(queries)
	designHandler := design.NewHandler(designService)

	catalogService := catalog.NewService(queries)
	catalogHandler := catalog.NewHandler(catalogService)

	// Loaders run in the hub goroutine, so they use a background context.
	docLoader := func(designID string) (*scene.Design, error) {
		if designID == playgroundDesignID {
			return scene.NewSampleDesign(designID), nil
		}
		return designService.LoadDocument(context.Background(), designID)
	}

	docSaver := func(designID string, doc *scene.Design) error {
		if designID == playgroundDesignID {
			return nil
		}
		return designService.SaveDocument(context.Background(), designID, doc)
	}

	// One engine shared by every room; all snapping state lives in the
	// per-call arguments.
	engine := placement.NewEngine(placement.DefaultSnapConfig())
	hub := collab.NewHub(docLoader, docSaver, func(doc *scene.Design) *collab.DesignState {
		return collab.NewDesignState(doc, engine)
	})
	go hub.Run()

	assetHandler := asset.NewHandler(cfg.AssetDir)

	origins := strings.Split(cfg.AllowedOrigins, ",")

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	// Auth routes (public)
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Catalog is public so the playground can place products too
	r.HandleFunc("/catalog", catalogHandler.List).Methods("GET")
	r.HandleFunc("/catalog/{itemId}", catalogHandler.Get).Methods("GET")

	// Thumbnail endpoints (public)
	r.HandleFunc("/assets/upload", assetHandler.Upload).Methods("POST", "OPTIONS")
	r.PathPrefix("/assets/").Handler(assetHandler.Serve()).Methods("GET")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authService.AuthMiddleware)

	api.HandleFunc("/me", authHandler.Me).Methods("GET")
	api.HandleFunc("/catalog", catalogHandler.Create).Methods("POST")
	api.HandleFunc("/designs", designHandler.List).Methods("GET")
	api.HandleFunc("/designs", designHandler.Create).Methods("POST")
	api.HandleFunc("/designs/{designId}", designHandler.Get).Methods("GET")
	api.HandleFunc("/designs/{designId}", designHandler.Delete).Methods("DELETE")
	api.HandleFunc("/designs/{designId}/invite", designHandler.Invite).Methods("POST")
	api.HandleFunc("/designs/{designId}/members", designHandler.ListMembers).Methods("GET")
	api.HandleFunc("/designs/{designId}/members/{userId}", designHandler.RemoveMember).Methods("DELETE")
	api.HandleFunc("/designs/{designId}/snapshots/latest", designHandler.GetLatestSnapshot).Methods("GET")

	// WebSocket endpoint
	r.HandleFunc("/ws/design/{designId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, authService, designService, origins)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Stop hub first to save all dirty designs
		slog.Info("saving all designs...")
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *collab.Hub, authSvc *auth.Service, designSvc *design.Service, origins []string) {
	vars := mux.Vars(r)
	designID := vars["designId"]

	var userID string
	var displayName string

	if designID == playgroundDesignID {
		userID = "anon-" + uuid.New().String()[:8]
		displayName = "Guest"
	} else {
		// Browsers cannot set headers on websocket requests, so the token
		// rides a query param
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		var err error
		userID, err = authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if err := designSvc.CheckAccess(r.Context(), designID, userID); err != nil {
			http.Error(w, "not a design member", http.StatusForbidden)
			return
		}

		user, err := authSvc.GetUser(r.Context(), userID)
		if err != nil {
			http.Error(w, "user not found", http.StatusInternalServerError)
			return
		}
		displayName = user.DisplayName
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := collab.NewClient(hub, conn, userID, displayName, designID, clientID)

	hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
