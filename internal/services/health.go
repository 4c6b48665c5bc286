package services

import (
	"fmt"
	"log"

	"github.com/030106mia/Roadmap-Feedback/internal/config"
	"github.com/030106mia/Roadmap-Feedback/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	BlobStore    string            `json:"blobStore,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check blob store connectivity when one is configured; uploads fall
	// back to local disk otherwise, so absence is not unhealthy.
	if cfg.BlobEndpoint != "" {
		if err := utils.PingBlobStore(cfg.BlobEndpoint, cfg.BlobUseSSL); err != nil {
			result.Status = "unhealthy"
			result.BlobStore = "unreachable"
			result.Details["blob_store_error"] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Blob store ping failed: %v", err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; Blob store ping failed: %v", err)
			}
			log.Printf("Health check failed - blob store ping: %v", err)
		} else {
			result.BlobStore = "ok"
			result.Details["blob_store_endpoint"] = cfg.BlobEndpoint
		}
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
