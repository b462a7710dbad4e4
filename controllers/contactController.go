package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/models"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

type ContactData struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (c *ContactController) CreateContact(ctx *gin.Context) {
	var contactData ContactData
	if err := ctx.ShouldBindJSON(&contactData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	contact := models.Contact{
		Name:    contactData.Name,
		Email:   contactData.Email,
		Subject: contactData.Subject,
		Message: contactData.Message,
	}

	if err := c.DB.Create(&contact).Error; err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, contact)
}

// GetContacts lists submissions newest first. Ordering is by id rather
// than createdAt so rows created in the same second keep a stable order.
func (c *ContactController) GetContacts(ctx *gin.Context) {
	var contacts []models.Contact
	if err := c.DB.Order("id DESC").Find(&contacts).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, contacts)
}
