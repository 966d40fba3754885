package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zarjin/FaceBook-Clone/auth"
	"github.com/zarjin/FaceBook-Clone/config"
	"github.com/zarjin/FaceBook-Clone/controllers"
	"github.com/zarjin/FaceBook-Clone/database"
	"github.com/zarjin/FaceBook-Clone/log"
	"github.com/zarjin/FaceBook-Clone/media"
	"github.com/zarjin/FaceBook-Clone/middlewares"
	"github.com/zarjin/FaceBook-Clone/routes"
	"github.com/zarjin/FaceBook-Clone/services"
	"github.com/zarjin/FaceBook-Clone/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error.Fatal(err)
	}

	client, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Error.Fatal(err)
	}
	db := client.Database(cfg.DBName)

	users := store.NewMongoIdentityStore(db)
	posts := store.NewMongoContentStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = users.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		log.Error.Fatal(err)
	}

	files, err := media.NewGridFSStorage(db, cfg.PublicBaseURL)
	if err != nil {
		log.Error.Fatal(err)
	}

	codec := auth.NewPasswordCodec()
	tokens := auth.NewTokenService(cfg.JWTSecret)
	requireAuth := middlewares.RequireAuth(tokens)

	authService := services.NewAuthService(users, codec, tokens)
	postService := services.NewPostService(posts, users)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRouter(router, controllers.NewAuthController(authService), requireAuth)
	routes.UserRouter(router, controllers.NewUserController(users, files), requireAuth)
	routes.PostRouter(router, controllers.NewPostController(postService, files), requireAuth)
	routes.MediaRouter(router, controllers.NewMediaController(files))

	log.Info.Println("Listening on port " + cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error.Fatal(err)
	}
}
