package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
)

func newRouter(resolver *database.Resolver, cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/", handlers.Home())
	r.GET("/images/*file", handlers.ServeImage(cfg.ImageDir))

	r.GET("/lessons", middleware.BindCollection(resolver, "lessons"), handlers.GetLessons())
	r.PUT("/lessons/:id", middleware.BindCollection(resolver, "lessons"), handlers.UpdateByID())
	r.PUT("/programs/:id", middleware.BindCollection(resolver, "programs"), handlers.UpdateByID())

	r.GET("/orders", middleware.BindCollection(resolver, "orders"), handlers.GetOrders())
	r.POST("/order", middleware.BindCollection(resolver, "orders"), handlers.CreateOrder())
	r.PUT("/order/:orderNo", middleware.BindCollection(resolver, "orders"), handlers.UpdateOrderByNumber())

	return r
}

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Println("order index warning:", err)
	}

	r := newRouter(database.NewResolver(db), config.AppEnv)

	srv := &http.Server{
		Addr:    ":" + config.AppEnv.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()
	log.Println("listening on :" + config.AppEnv.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	database.Disconnect(client)
}
