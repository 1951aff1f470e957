package models

type Center struct {
	ID      uint   `gorm:"primaryKey" json:"-" bson:"-"`
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name" bson:"name"`
	Address string `gorm:"size:255" json:"address" bson:"address"`
}

func (Center) TableName() string { return "centros" }
