package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/models"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type OrderData struct {
	CustomerName string  `json:"customerName" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	TotalPrice   float64 `json:"totalPrice" binding:"required"`
	Address      string  `json:"address"`
	ProductIds   []uint  `json:"productIds"`
}

type OrderStatusData struct {
	Status string `json:"status" binding:"required,oneof=Pending Preparing Delivered Rejected OnWay"`
}

// dedupeIds keeps the first occurrence of each id. Repeating a product
// id in an order payload links the product once.
func dedupeIds(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	deduped := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}
	return deduped
}

// CreateOrder creates the order and links every product whose id exists.
// Ids that match no product are silently dropped.
func (o *OrderController) CreateOrder(ctx *gin.Context) {
	var orderData OrderData
	if err := ctx.ShouldBindJSON(&orderData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	order := models.Order{
		CustomerName: orderData.CustomerName,
		Email:        orderData.Email,
		TotalPrice:   orderData.TotalPrice,
		Address:      orderData.Address,
		Status:       models.OrderStatusPending,
	}

	tx := o.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	products := []models.Product{}
	if len(orderData.ProductIds) > 0 {
		if err := tx.Where("id IN ?", dedupeIds(orderData.ProductIds)).Find(&products).Error; err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if len(products) > 0 {
		if err := tx.Model(&order).Association("Products").Append(products); err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	order.Products = products
	sendJSONResponse(ctx, http.StatusOK, order)
}

func (o *OrderController) GetOrders(ctx *gin.Context) {
	var orders []models.Order
	if err := o.DB.Preload("Products").Find(&orders).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, orders)
}

// UpdateOrderStatus mutates status and nothing else; orders are
// otherwise append-only.
func (o *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var statusData OrderStatusData
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var order models.Order
	if err := o.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		}
		return
	}

	order.Status = statusData.Status
	if err := o.DB.Save(&order).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, order)
}
