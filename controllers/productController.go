package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/models"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// ProductData is the body for both create and update; updates are a
// full replacement of these fields, never a merge.
type ProductData struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description"`
	ImageUrl    string  `json:"imageUrl"`
}

func (p *ProductController) CreateProduct(ctx *gin.Context) {
	var productData ProductData
	if err := ctx.ShouldBindJSON(&productData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	product := models.Product{
		Name:        productData.Name,
		Price:       productData.Price,
		Description: productData.Description,
		ImageUrl:    productData.ImageUrl,
	}

	if err := p.DB.Create(&product).Error; err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, product)
}

func (p *ProductController) GetProducts(ctx *gin.Context) {
	var products []models.Product
	if err := p.DB.Find(&products).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, products)
}

func (p *ProductController) UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var productData ProductData
	if err := ctx.ShouldBindJSON(&productData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var product models.Product
	if err := p.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		}
		return
	}

	product.Name = productData.Name
	product.Price = productData.Price
	product.Description = productData.Description
	product.ImageUrl = productData.ImageUrl

	if err := p.DB.Save(&product).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, product)
}

func (p *ProductController) DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	if err := p.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := p.DB.Delete(&product).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgProductDeleted})
}
