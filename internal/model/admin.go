package model

// Admin is a privileged account, authenticated separately from owners.
type Admin struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"column:password;size:255;not null"` // bcrypt, never exposed
}

func (Admin) TableName() string { return "Admins" }
