package companyController

import (
	"skillcert/database"
	"skillcert/middleware"
	"skillcert/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCompany registers a new employer company (admin only)
func CreateCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompany").(*struct {
		Name           string `json:"name"`
		RegistrationNo string `json:"registration_no"`
		ContactEmail   string `json:"contact_email"`
		ContactPhone   string `json:"contact_phone"`
		Address        string `json:"address"`
		City           string `json:"city"`
		State          string `json:"state"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&models.Company{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Company already exists!", nil)
	}

	company := models.Company{
		Name:           reqData.Name,
		RegistrationNo: reqData.RegistrationNo,
		ContactEmail:   reqData.ContactEmail,
		ContactPhone:   reqData.ContactPhone,
		Address:        reqData.Address,
		City:           reqData.City,
		State:          reqData.State,
		IsActive:       true,
	}

	if err := db.Create(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully!", company)
}

// UpdateCompany updates company details (admin only)
func UpdateCompany(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	reqData := new(struct {
		Name         *string `json:"name"`
		ContactEmail *string `json:"contact_email"`
		ContactPhone *string `json:"contact_phone"`
		Address      *string `json:"address"`
		City         *string `json:"city"`
		State        *string `json:"state"`
		IsActive     *bool   `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.ContactEmail != nil {
		updates["contact_email"] = *reqData.ContactEmail
	}
	if reqData.ContactPhone != nil {
		updates["contact_phone"] = *reqData.ContactPhone
	}
	if reqData.Address != nil {
		updates["address"] = *reqData.Address
	}
	if reqData.City != nil {
		updates["city"] = *reqData.City
	}
	if reqData.State != nil {
		updates["state"] = *reqData.State
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&company).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully!", company)
}

// GetCompanies lists companies with pagination (admin only)
func GetCompanies(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	db := database.Database.Db.Model(&models.Company{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var companies []models.Company
	query := db.Order("created_at desc")
	page, limit := 1, int(total)
	if ok {
		page = *reqData.Page
		limit = *reqData.Limit
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	if err := query.Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully!", fiber.Map{
		"companies": companies,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
