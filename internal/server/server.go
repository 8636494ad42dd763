package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"proyectos-backend/internal/database"
	"proyectos-backend/internal/handlers"
	"proyectos-backend/internal/middlewares"
	"proyectos-backend/internal/models"
	"proyectos-backend/internal/repositories"
	"proyectos-backend/internal/routes"
	"proyectos-backend/internal/services"
	"proyectos-backend/internal/utils"
)

// NewServer wires the whole application and returns the HTTP server plus a
// cleanup function releasing the pool.
func NewServer() (*http.Server, func(), error) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := database.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	proyectoRepo := repositories.NewProyectoRepository(pool)
	authService := services.NewAuthService(userRepo)
	proyectoService := services.NewProyectoService(proyectoRepo)
	authHandler := handlers.NewAuthHandler(authService)
	proyectoHandler := handlers.NewProyectoHandler(proyectoService)
	adminHandler := handlers.NewAdminHandler(proyectoService)

	if err := seedAdminUser(ctx, userRepo); err != nil {
		pool.Close()
		return nil, nil, err
	}

	router := gin.New()
	router.Use(gin.Logger(), middlewares.ErrorHandling())
	router.Use(cors.New(corsConfig()))

	routes.RegisterRoutes(router,
		routes.NewAuthRoutes(authHandler),
		routes.NewProyectoRoutes(proyectoHandler),
		routes.NewAdminRoutes(adminHandler),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, pool.Close, nil
}

func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		config.AllowOrigins = strings.Split(origins, ",")
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	return config
}

// seedAdminUser provisions the reviewer account on first boot. There is no
// register endpoint; accounts are created out of band.
func seedAdminUser(ctx context.Context, userRepo *repositories.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.User{
		Name:         "Administrador",
		Email:        email,
		Rol:          models.RolAdmin,
		PasswordHash: hash,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	logrus.WithField("email", email).Info("seeded admin user")
	return nil
}
