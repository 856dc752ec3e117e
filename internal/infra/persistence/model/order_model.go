package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. All tier columns are copies taken at
// purchase time; there is deliberately no foreign key to offer_details, so
// deleting an offer never touches its orders.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerUserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BusinessUserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title              string          `gorm:"type:varchar(200);not null"`
	Revisions          int             `gorm:"not null"`
	DeliveryTimeInDays int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Features           []string        `gorm:"type:jsonb;serializer:json"`
	OfferType          string          `gorm:"type:varchar(20);not null"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
