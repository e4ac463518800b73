package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"       json:"id"`
	Name       string    `gorm:"not null"                   json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	IsActive   bool      `gorm:"default:true"               json:"is_active"`
	CreateDate time.Time `gorm:"autoCreateTime"             json:"create_date"`
	UpdateDate time.Time `gorm:"autoUpdateTime"             json:"update_date"`
	Orders     []Order   `gorm:"foreignKey:CustomerID"      json:"-"`
}

type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"       json:"id"`
	Name       string    `gorm:"not null"                   json:"name"`
	Price      float64   `gorm:"not null"                   json:"price"`
	IsActive   bool      `gorm:"default:true"               json:"is_active"`
	CreateDate time.Time `gorm:"autoCreateTime"             json:"create_date"`
	UpdateDate time.Time `gorm:"autoUpdateTime"             json:"update_date"`
	Orders     []Order   `gorm:"many2many:order_products;constraint:OnDelete:CASCADE" json:"-"`
}

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"      json:"id"`
	OrderNumber string    `gorm:"uniqueIndex;not null"      json:"order_number"`
	OrderDate   time.Time `gorm:"not null"                  json:"order_date"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null"  json:"customer_id"`
	Customer    Customer  `gorm:"foreignKey:CustomerID"     json:"customer"`
	Products    []Product `gorm:"many2many:order_products;constraint:OnDelete:CASCADE" json:"products"`
	IsActive    bool      `gorm:"default:true"              json:"is_active"`
	CreateDate  time.Time `gorm:"autoCreateTime"            json:"create_date"`
	UpdateDate  time.Time `gorm:"autoUpdateTime"            json:"update_date"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Username     string    `gorm:"unique;not null"          json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null"                 json:"role"`
}
