package orderController

import (
	"errors"
	"log"
	"time"

	"skillcert/database"
	"skillcert/middleware"
	"skillcert/models"
	courseModels "skillcert/models/course"
	"skillcert/progression"
	"skillcert/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateOrder places an order for one course level
func CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedOrder").(*struct {
		CourseLevelID uint   `json:"course_level_id"`
		PaymentRef    string `json:"payment_ref"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var level courseModels.CourseLevel
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?",
		reqData.CourseLevelID, false, true).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course level not found!", nil)
	}

	// One pending order per (user, level) at a time
	var existing models.Order
	if err := db.Where("user_id = ? AND course_level_id = ? AND status = ? AND is_deleted = ?",
		userID, level.ID, "PENDING", false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "An order for this level is already pending!", nil)
	}

	order := models.Order{
		UserID:        userID,
		CourseLevelID: level.ID,
		Amount:        level.Price,
		PaymentRef:    reqData.PaymentRef,
		Status:        "PENDING",
	}

	if err := db.Create(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully!", order)
}

// GetMyOrders lists the current worker's orders
func GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var orders []models.Order
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", orders)
}

// AdminGetPendingOrders lists orders awaiting payment approval
func AdminGetPendingOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", "PENDING", false).
		Order("created_at asc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending orders fetched successfully!", orders)
}

// AdminApproveOrder approves an order's payment and creates the
// enrollment with its progress ledger
func AdminApproveOrder(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID := c.Locals("orderID").(int)

	db := database.Database.Db

	var order models.Order
	if err := db.Where("id = ? AND is_deleted = ?", orderID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order already processed!", nil)
	}

	// Verify the payment reference with the gateway before approving
	if err := utils.VerifyPayment(order.PaymentRef, order.Amount); err != nil {
		log.Printf("Payment verification failed for order %d: %v", order.ID, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment verification failed!", nil)
	}

	var enrollment *courseModels.Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		created, err := progression.CreateEnrollment(tx, order.UserID, order.CourseLevelID)
		if err != nil {
			return err
		}
		enrollment = created

		now := time.Now()
		return tx.Model(&order).Updates(map[string]interface{}{
			"status":        "APPROVED",
			"approved_at":   now,
			"approved_by":   adminID,
			"enrollment_id": created.ID,
		}).Error
	})
	if err != nil {
		if errors.Is(err, progression.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already has an active enrollment for this level!", nil)
		}
		if errors.Is(err, progression.ErrContentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Level has no published content yet!", nil)
		}
		log.Printf("Error approving order %d: %v", order.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve order!", nil)
	}

	var user models.User
	if err := db.First(&user, order.UserID).Error; err == nil {
		utils.SendEnrollmentCreatedEmail(user.Email, user.Name, enrollment.DeadlineAt)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order approved and enrollment created!", fiber.Map{
		"order":      order,
		"enrollment": enrollment,
	})
}

// AdminRejectOrder rejects an order's payment
func AdminRejectOrder(c *fiber.Ctx) error {
	orderID := c.Locals("orderID").(int)

	reqData := new(struct {
		Reason string `json:"reason"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var order models.Order
	if err := db.Where("id = ? AND is_deleted = ?", orderID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order already processed!", nil)
	}

	if err := db.Model(&order).Updates(map[string]interface{}{
		"status":        "REJECTED",
		"reject_reason": reqData.Reason,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order rejected!", order)
}
