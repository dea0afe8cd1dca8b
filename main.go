package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillahandlers "github.com/gorilla/handlers"

	"github.com/animekoon434-afk/SyncTask/config"
	"github.com/animekoon434-afk/SyncTask/handlers"
	"github.com/animekoon434-afk/SyncTask/logging"
	"github.com/animekoon434-afk/SyncTask/repositories"
	"github.com/animekoon434-afk/SyncTask/services"
	"github.com/animekoon434-afk/SyncTask/utils"
)

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting SyncTask backend...")

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := repositories.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	cancel()
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: %v", err)
	}
	defer store.Disconnect(context.Background())
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Connected to MongoDB database %s", cfg.MongoDBName)

	var email services.EmailSender
	if cfg.EmailFrom != "" && cfg.EmailPassword != "" {
		email = utils.NewEmailSender(cfg.EmailFrom, cfg.EmailPassword, cfg.SMTPHost, cfg.SMTPPort)
	}

	projectService := services.NewProjectService(store.Projects, store.Todos)
	taskService := services.NewTaskService(store.Todos, store.Projects)
	inviteService := services.NewInviteService(store.Invites, store.InviteLinks, store.Projects, email)
	collaborationService := services.NewCollaborationService(store.Collaborations, store.Todos)
	identityService := services.NewIdentityService(cfg.IdentityAPIURL, cfg.IdentitySecretKey, cfg.FrontendURL)

	router := newRouter(routerDeps{
		verifier:      utils.NewTokenVerifier(cfg.JWTSecret),
		project:       handlers.NewProjectHandler(projectService),
		task:          handlers.NewTaskHandler(taskService),
		invite:        handlers.NewInviteHandler(inviteService, cfg.FrontendURL),
		collaboration: handlers.NewCollaborationHandler(collaborationService),
		user:          handlers.NewUserHandler(identityService),
	})

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{cfg.CORSAllowedOrigin}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      cors(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logging.Logger.Infof("Event ID: SERVER_LISTENING, Description: HTTP server listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatalf("Event ID: SERVER_FAILED, Description: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logging.Logger.Info("Event ID: SERVICE_STOPPING, Description: Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Errorf("Event ID: SERVER_SHUTDOWN_FAILED, Description: %v", err)
	}
}
