package model

import "time"

// ItemStatus is the lifecycle state of a reported item.
type ItemStatus string

const (
	ItemStatusLost  ItemStatus = "lost"
	ItemStatusFound ItemStatus = "found"
)

// Valid reports whether s is a known status.
func (s ItemStatus) Valid() bool {
	return s == ItemStatusLost || s == ItemStatusFound
}

// Item is a reported lost or found object.
type Item struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Status       ItemStatus `json:"status" gorm:"type:varchar(10);not null;default:'lost';index"`
	Location     *string    `json:"location" gorm:"size:255"`
	DateReported time.Time  `json:"date_reported" gorm:"not null"`
}

// TableName keeps the table name used by the existing deployment.
func (Item) TableName() string { return "Objects" }

// ItemWithOwner is an item row left-joined with its owner. The owner columns
// are nil for unowned items and always serialized.
type ItemWithOwner struct {
	ID           uint       `json:"id" gorm:"column:id"`
	Name         string     `json:"name" gorm:"column:name"`
	Description  string     `json:"description" gorm:"column:description"`
	Status       ItemStatus `json:"status" gorm:"column:status"`
	Location     *string    `json:"location" gorm:"column:location"`
	DateReported time.Time  `json:"date_reported" gorm:"column:date_reported"`
	OwnerID      *uint      `json:"owner_id" gorm:"column:owner_id"`
	OwnerName    *string    `json:"owner_name" gorm:"column:owner_name"`
	OwnerEmail   *string    `json:"owner_email" gorm:"column:owner_email"`
}
