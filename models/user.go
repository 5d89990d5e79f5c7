package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Availability struct {
	Days      []string `json:"days" bson:"days"`
	StartTime string   `json:"startTime" bson:"startTime"`
	EndTime   string   `json:"endTime" bson:"endTime"`
}

type User struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Role               string             `json:"role" bson:"role"`
	Name               string             `json:"name,omitempty" bson:"name,omitempty"`
	LabName            string             `json:"labName,omitempty" bson:"labName,omitempty"`
	Experience         int                `json:"experience,omitempty" bson:"experience,omitempty"`
	DOB                string             `json:"dob,omitempty" bson:"dob,omitempty"`
	Email              string             `json:"email" bson:"email"`
	Phone              string             `json:"phone" bson:"phone"`
	Password           string             `json:"-" bson:"password"`
	Location           string             `json:"location,omitempty" bson:"location,omitempty"`
	Photo              string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Certificate        string             `json:"certificate,omitempty" bson:"certificate,omitempty"`
	Specialities       []string           `json:"specialities" bson:"specialities"`
	Qualifications     []string           `json:"qualifications" bson:"qualifications"`
	LanguagesSpoken    []string           `json:"languagesSpoken" bson:"languagesSpoken"`
	Availability       Availability       `json:"availability" bson:"availability"`
	IsVerified         bool               `json:"isVerified" bson:"isVerified"`
	VerificationStatus string             `json:"verificationStatus" bson:"verificationStatus"`
	LastLogin          *time.Time         `json:"lastLogin" bson:"lastLogin"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}
