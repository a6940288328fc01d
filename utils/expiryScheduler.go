package utils

import (
	"log"

	"skillcert/database"
	"skillcert/models"
	"skillcert/progression"

	"github.com/robfig/cron/v3"
)

// InitializeExpiryScheduler sets up the enrollment deadline sweep
func InitializeExpiryScheduler() {
	log.Println("[EXPIRY-SCHEDULER] Initializing enrollment expiry scheduler...")

	c := cron.New()

	// Run daily at 1 AM to expire overdue enrollments
	c.AddFunc("0 1 * * *", func() {
		log.Println("[EXPIRY-SCHEDULER] Running daily enrollment expiry sweep...")
		SweepExpiredEnrollments()
	})

	c.Start()
	log.Println("[EXPIRY-SCHEDULER] Expiry scheduler started - runs daily at 1 AM")
}

// SweepExpiredEnrollments expires every active enrollment past its
// deadline and notifies the affected workers
func SweepExpiredEnrollments() {
	db := database.Database.Db

	// ExpireOverdue returns the exact set it transitioned, so every
	// expired worker gets a notification and nobody else does.
	expired, err := progression.ExpireOverdue(db)
	if err != nil {
		log.Printf("[EXPIRY-SCHEDULER] Error expiring enrollments: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}
	log.Printf("[EXPIRY-SCHEDULER] Expired %d enrollments", len(expired))

	for _, enrollment := range expired {
		var user models.User
		if err := db.Where("id = ?", enrollment.UserID).First(&user).Error; err != nil {
			log.Printf("[EXPIRY-SCHEDULER] Error fetching user %d: %v", enrollment.UserID, err)
			continue
		}
		SendEnrollmentExpiredEmail(user.Email, user.Name)
	}
}
