package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Prescription struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID       string             `json:"patientId" bson:"patientId"`
	PatientName     string             `json:"patientName" bson:"patientName"`
	PatientEmail    string             `json:"patientEmail" bson:"patientEmail"`
	DoctorID        string             `json:"doctorId" bson:"doctorId"`
	DoctorName      string             `json:"doctorName" bson:"doctorName"`
	Medications     []string           `json:"medications" bson:"medications"`
	Recommendations string             `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	Weight          float64            `json:"weight,omitempty" bson:"weight,omitempty"`
	BloodPressure   string             `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	HeartRate       string             `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	Date            time.Time          `json:"date" bson:"date"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// HealthMetrics is the projection returned by the patient metrics endpoint.
type HealthMetrics struct {
	Date          time.Time `json:"date" bson:"date"`
	Weight        float64   `json:"weight,omitempty" bson:"weight,omitempty"`
	BloodPressure string    `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	HeartRate     string    `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	PatientName   string    `json:"patientName" bson:"patientName"`
}
