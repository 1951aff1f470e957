package models

import "time"

const (
	Active    = 0
	Cancelled = 1
)

// Appointment occupies one hour at one center. Among rows with Cancel == 0
// the (day, hour, center) triple is unique.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id" bson:"_id"`

	Username string `gorm:"size:100;index;not null" json:"username" bson:"username"`

	Day    string `gorm:"size:10;not null;uniqueIndex:uniq_day_hour_center,where:cancel = 0" json:"day" bson:"day"`
	Hour   string `gorm:"size:2;not null;uniqueIndex:uniq_day_hour_center,where:cancel = 0" json:"hour" bson:"hour"`
	Center string `gorm:"size:100;not null;uniqueIndex:uniq_day_hour_center,where:cancel = 0" json:"center" bson:"center"`

	Cancel      int        `gorm:"not null;default:0" json:"cancel" bson:"cancel"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" bson:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (Appointment) TableName() string { return "citas" }

func (a *Appointment) IsCancelled() bool {
	return a.Cancel == Cancelled
}
