package models

import "time"

const (
	OrderStatusPending   = "Pending"
	OrderStatusPreparing = "Preparing"
	OrderStatusDelivered = "Delivered"
	OrderStatusRejected  = "Rejected"
	OrderStatusOnWay     = "OnWay"
)

type Order struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	CustomerName string    `gorm:"not null" json:"customerName"`
	Email        string    `gorm:"not null" json:"email"`
	TotalPrice   float64   `gorm:"not null" json:"totalPrice"`
	Address      string    `gorm:"type:text" json:"address"`
	Status       string    `gorm:"default:Pending" json:"status"`
	Products     []Product `gorm:"many2many:order_products;" json:"products"`
}
