package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "khatabook/docs"
)

var (
	dbPool *pgxpool.Pool
	store  *Store
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// @title Khatabook API
// @version 1.0
// @description Ledger backend for small-shop khata bookkeeping: customers, credit/payment transactions, statements, cash book, products and analytics.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment")
	}

	dbHost := getEnvOrDefault("DB_HOST", "localhost")
	dbPort := getEnvOrDefault("DB_PORT", "5432")
	dbUser := getEnvOrDefault("DB_USER", "postgres")
	dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
	dbName := getEnvOrDefault("DB_NAME", "khatabook")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database with retry logic
	maxRetries := 30
	retryInterval := time.Second * 2

	var err error
	for i := 0; i < maxRetries; i++ {
		dbPool, err = pgxpool.New(context.Background(), connStr)
		if err != nil {
			log.Errorf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		if err = dbPool.Ping(context.Background()); err != nil {
			log.Errorf("Attempt %d: Error connecting to database: %v", i+1, err)
			dbPool.Close()
			time.Sleep(retryInterval)
			continue
		}

		log.Info("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer dbPool.Close()

	// Run database migrations
	migrationsPath := filepath.Join(".", "db", "migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Warnf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		log.Info("Running database migrations...")

		migrationDB, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Fatal("Error opening migration connection: ", err)
		}

		if err := runMigrations(migrationDB, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}

		if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
			if dirty {
				log.Warnf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Infof("Current migration version: %d", version)
			}
		}
		migrationDB.Close()
		log.Info("Database migrations completed successfully")
	}

	store = NewStore(dbPool)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnvOrDefault("CORS_ORIGIN", "http://localhost:3001")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	registerRoutes(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := getEnvOrDefault("PORT", "8080")
	log.Infof("Server starting on port %s", port)
	r.Run(":" + port)
}

// registerRoutes wires the API surface; the test harness mounts the same
// table on its own engine.
func registerRoutes(r *gin.Engine) {
	r.GET("/api/customers", getCustomers)
	r.POST("/api/customers", createCustomer)
	r.GET("/api/customers/:id", getCustomer)
	r.PUT("/api/customers/:id", updateCustomer)
	r.DELETE("/api/customers/:id", deleteCustomer)
	r.GET("/api/customers/:id/transactions", getCustomerTransactions)
	r.GET("/api/customers/:id/statement", getStatement)
	r.GET("/api/customers/:id/statement/message", getStatementMessage)
	r.POST("/api/transactions", createTransaction)
	r.DELETE("/api/transactions/:id", deleteTransaction)
	r.GET("/api/cashbook", getCashEntries)
	r.POST("/api/cashbook", createCashEntry)
	r.DELETE("/api/cashbook/:id", deleteCashEntry)
	r.GET("/api/products", getProducts)
	r.POST("/api/products", createProduct)
	r.PUT("/api/products/:id", updateProduct)
	r.DELETE("/api/products/:id", deleteProduct)
	r.GET("/api/analytics", getAnalytics)
	r.GET("/api/dashboard", getDashboard)
}
