package cron

import (
	"log"
	"time"

	"github.com/farmart-ke/farmart-backend/internal/application"
)

// Audit rows older than this are purged.
const auditRetentionDays = 30

// StartCleanupTask purges expired audit logs once at startup and then
// every 24 hours.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Printf("Starting audit cleanup task (retention: %d days)", auditRetentionDays)

		runCleanup(auditService)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			runCleanup(auditService)
		}
	}()
}

func runCleanup(auditService *application.AuditService) {
	if err := auditService.CleanupOldLogs(auditRetentionDays); err != nil {
		log.Printf("Failed to cleanup old audit logs: %v", err)
	}
}
