package main

import (
	"context"
	"log"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/classboard/classboard-be/config"
	"github.com/classboard/classboard-be/controllers"
	appDb "github.com/classboard/classboard-be/db"
	fsDb "github.com/classboard/classboard-be/db/firestore"
	"github.com/classboard/classboard-be/db/memory"
	"github.com/classboard/classboard-be/logger"
	"github.com/classboard/classboard-be/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("error loading config", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("error initializing logger", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	database, err := getDatabase(ctx, cfg)
	if err != nil {
		zlog.Fatal("error connecting to store", zap.Error(err))
	}
	defer database.Close()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.GCPProject}, opts...)
	if err != nil {
		zlog.Fatal("error initializing firebase", zap.Error(err))
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		zlog.Fatal("error initializing auth client", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)
	routes.RegisterValidators()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	postController := controllers.NewPostController(database)
	commentController := controllers.NewCommentController(database)
	voteController := controllers.NewVoteController(database)
	reportController := controllers.NewReportController(database)

	routes.AddHealthCheckRoutes(&r.RouterGroup, zlog)
	routes.AddPostRoutes(&r.RouterGroup, postController, commentController, voteController, authClient, zlog)
	routes.AddCommentRoutes(&r.RouterGroup, commentController, voteController, authClient, zlog)
	routes.AddReportRoutes(&r.RouterGroup, reportController, authClient, zlog)

	zlog.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("store", cfg.Store))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("error running web server", zap.Error(err))
	}
}

func getDatabase(ctx context.Context, cfg *config.Config) (appDb.Database, error) {
	if cfg.Store == config.StoreFirestore {
		var opts []option.ClientOption
		if cfg.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
		return fsDb.GetDatabase(ctx, cfg.GCPProject, opts...)
	}
	return memory.GetDatabase(), nil
}
