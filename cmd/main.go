package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/vuongphamdev/migration-project/internal/api"
	"github.com/vuongphamdev/migration-project/internal/config"
	"github.com/vuongphamdev/migration-project/internal/ratelimit"
	"github.com/vuongphamdev/migration-project/internal/repository"
	"github.com/vuongphamdev/migration-project/internal/service"
	"github.com/vuongphamdev/migration-project/migrations"
)

func connectDBEnv(host, port, user, pass, dbname string) (*sql.DB, error) {
	// clientFoundRows makes UPDATE report matched rows, so updating an
	// existing row with identical values still counts as updated.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&clientFoundRows=true", user, pass, host, port, dbname)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("✅ Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("❌ Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, dbname, host, port, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", dbname, host, port, err)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	db, err := connectDBEnv(
		os.Getenv("DB_HOST"),
		envOr("DB_PORT", "3306"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_NAME"),
	)
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	if err := migrations.AutoMigrateUsers(3, db); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}
	if err := migrations.AutoMigratePosts(3, db); err != nil {
		log.Fatalf("Failed to migrate posts table: %v", err)
	}

	// nil when KAFKA_BROKERS is unset; services then skip publishing
	kafkaWriter := config.NewKafkaWriter("blog-events")

	var stats ratelimit.StatsStore = ratelimit.NewMemoryStats()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		stats = ratelimit.NewRedisStats(rdb)
	}

	// 10 requests per client per minute on the post-update route
	limiter := ratelimit.NewStore(rate.Limit(10.0/60.0), 10)
	limiter.StartJanitor(context.Background())

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	healthRepo := repository.NewHealthRepository(db)

	userService := service.NewUserService(userRepo, kafkaWriter)
	postService := service.NewPostService(postRepo, kafkaWriter)

	userHandler := api.NewUserHandler(userService)
	postHandler := api.NewPostHandler(postService)
	healthHandler := api.NewHealthHandler(healthRepo)

	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Routes
	e.GET("/users", userHandler.GetUsers)
	e.GET("/users/:id", userHandler.GetUserByID)
	e.POST("/users", userHandler.CreateUser)
	e.PUT("/users/:id", userHandler.UpdateUser)
	e.DELETE("/users/:id", userHandler.DeleteUser)

	e.GET("/posts", postHandler.GetPosts)
	e.GET("/posts/:id", postHandler.GetPostByID)
	e.POST("/posts", postHandler.CreatePost)
	e.PUT("/posts/:id", postHandler.UpdatePost, ratelimit.Middleware(limiter, stats))
	e.DELETE("/posts/:id", postHandler.DeletePost)

	e.GET("/ping", healthHandler.Ping)

	// Start server
	e.Logger.Fatal(e.Start(":" + envOr("PORT", "3000")))
}
