package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/models"
	"github.com/laibaafzal969/Bakery-BE/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default cost for bcrypt password hashing
const bcryptCost = 10

type AuthController struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthController(db *gorm.DB, jwtSecret string) *AuthController {
	return &AuthController{DB: db, JWTSecret: jwtSecret}
}

type RegisterData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	UserType string `json:"userType" binding:"omitempty,oneof=Admin Customer"`
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Register handles user registration
func (a *AuthController) Register(ctx *gin.Context) {
	var registerData RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	if result := a.DB.Where("email = ?", registerData.Email).Find(&existing); result.Error != nil {
		log.Println("Database error during user check:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, result.Error.Error())
		return
	} else if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(registerData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	// Accounts default to Admin when no type is given
	if registerData.UserType == "" {
		registerData.UserType = models.UserTypeAdmin
	}

	user := models.User{
		Email:    registerData.Email,
		Password: hashedPassword,
		Name:     registerData.Name,
		UserType: registerData.UserType,
	}

	// The unique index on email is the real guard: two concurrent
	// registrations with the same address race at the insert and
	// exactly one wins.
	if result := a.DB.Create(&user); result.Error != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, result.Error.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, user)
}

// Login handles user authentication
func (a *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", loginData.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, a.JWTSecret)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token})
}

// ListUsers returns every registered user. The serialized rows include
// the bcrypt password hashes; see the security note in DESIGN.md.
func (a *AuthController) ListUsers(ctx *gin.Context) {
	var users []models.User
	if err := a.DB.Find(&users).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, users)
}
