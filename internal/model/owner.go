package model

// Owner is an end user who reports or owns items. Email is the identity key.
type Owner struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:255;not null"`
	Email string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	DOB   string `json:"dob" gorm:"column:dob;size:10"` // YYYY-MM-DD
}

func (Owner) TableName() string { return "Owners" }

// Ownership links an item to its owner.
type Ownership struct {
	ObjectID uint `json:"object_id" gorm:"column:object_id;primaryKey;autoIncrement:false"`
	OwnerID  uint `json:"owner_id" gorm:"column:owner_id;primaryKey;autoIncrement:false;index"`

	// Relations
	Item  Item  `json:"-" gorm:"foreignKey:ObjectID;references:ID"`
	Owner Owner `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}

func (Ownership) TableName() string { return "Owned" }
