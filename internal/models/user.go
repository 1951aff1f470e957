package models

import "time"

// User is stored in the "usuarios" collection / table.
type User struct {
	ID uint `gorm:"primaryKey" json:"-" bson:"-"`

	Username string `gorm:"size:100;uniqueIndex;not null" json:"username" bson:"username"`
	Password string `gorm:"size:255;not null" json:"-" bson:"password"`

	Name     string `gorm:"size:100" json:"name" bson:"name"`
	Lastname string `gorm:"size:100" json:"lastname" bson:"lastname"`
	Email    string `gorm:"size:100" json:"email" bson:"email"`
	Phone    string `gorm:"size:20" json:"phone" bson:"phone"`
	Date     string `gorm:"size:10" json:"date" bson:"date"`

	CreatedAt time.Time `json:"-" bson:"-"`
	UpdatedAt time.Time `json:"-" bson:"-"`
}

func (User) TableName() string { return "usuarios" }
