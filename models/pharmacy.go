package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Pharmacy struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Role               string             `json:"role" bson:"role"`
	LabName            string             `json:"labName" bson:"labName"`
	Experience         int                `json:"experience" bson:"experience"`
	Email              string             `json:"email" bson:"email"`
	Phone              string             `json:"phone" bson:"phone"`
	Password           string             `json:"-" bson:"password"`
	Location           string             `json:"location" bson:"location"`
	Photo              string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Certificate        string             `json:"certificate,omitempty" bson:"certificate,omitempty"`
	Availability       Availability       `json:"availability" bson:"availability"`
	IsVerified         bool               `json:"isVerified" bson:"isVerified"`
	VerificationStatus string             `json:"verificationStatus" bson:"verificationStatus"`
	LastLogin          *time.Time         `json:"lastLogin" bson:"lastLogin"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsOpen reports whether the pharmacy's availability window covers the given
// HH:MM time string.
func (p *Pharmacy) IsOpen(hhmm string) bool {
	start := minutesOfDay(p.Availability.StartTime)
	end := minutesOfDay(p.Availability.EndTime)
	at := minutesOfDay(hhmm)
	if start < 0 || end < 0 || at < 0 {
		return false
	}
	return at >= start && at <= end
}

func minutesOfDay(hhmm string) int {
	var h, m int
	if n, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil || n != 2 {
		return -1
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}
