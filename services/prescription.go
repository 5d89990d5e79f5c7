package services

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	db "HealisPortal/config/db"
	"HealisPortal/models"
	"HealisPortal/util"
)

var (
	bloodPressurePattern = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)
	heartRatePattern     = regexp.MustCompile(`^\d{2,3}bpm$`)
)

/*
* Validate required fields and the optional health metric formats
* Persist with status active and the creation date
* Mail the patient a summary, fire and forget
 */
func CreatePrescription(ctx context.Context, p models.Prescription) (*models.Prescription, error) {
	p.PatientID = strings.TrimSpace(p.PatientID)
	p.PatientName = strings.TrimSpace(p.PatientName)
	p.PatientEmail = strings.ToLower(strings.TrimSpace(p.PatientEmail))
	p.DoctorID = strings.TrimSpace(p.DoctorID)
	p.DoctorName = strings.TrimSpace(p.DoctorName)

	if p.PatientID == "" || p.PatientName == "" || p.PatientEmail == "" ||
		p.DoctorID == "" || p.DoctorName == "" || len(p.Medications) == 0 {
		return nil, util.NewValidationError(util.PRESCRIPTION_REQUIRED_FIELDS)
	}
	if p.BloodPressure != "" && !bloodPressurePattern.MatchString(p.BloodPressure) {
		return nil, util.NewValidationError(util.INVALID_BLOOD_PRESSURE_FORMAT)
	}
	if p.HeartRate != "" && !heartRatePattern.MatchString(p.HeartRate) {
		return nil, util.NewValidationError(util.INVALID_HEART_RATE_FORMAT)
	}

	now := time.Now()
	p.Date = now
	p.Status = "active"
	p.CreatedAt = now
	p.UpdatedAt = now

	collection := db.OpenCollections(util.PrescriptionCollection)
	result, err := db.CreateOne(ctx, collection, &p)
	if err != nil {
		log.Println("Error from createOne: ", err)
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}

	SendPrescriptionEmail(&p)
	return &p, nil
}

func FetchPrescriptionsByDoctor(ctx context.Context, doctorId string) ([]models.Prescription, error) {
	return fetchPrescriptions(ctx, bson.M{"doctorId": doctorId})
}

func FetchPrescriptionsByPatient(ctx context.Context, patientId string) ([]models.Prescription, error) {
	return fetchPrescriptions(ctx, bson.M{"patientId": patientId})
}

func fetchPrescriptions(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	collection := db.OpenCollections(util.PrescriptionCollection)
	var prescriptions []models.Prescription
	opts := options.Find().SetSort(bson.M{"date": -1})
	if err := db.FindAll(ctx, collection, filter, &prescriptions, opts); err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return prescriptions, nil
}

/*
* Prescriptions that carry at least one health metric, oldest first, projected
* down to the metric fields
 */
func FetchPatientHealthMetrics(ctx context.Context, patientId string) ([]models.HealthMetrics, error) {
	collection := db.OpenCollections(util.PrescriptionCollection)
	filter := bson.M{
		"patientId": patientId,
		"$or": []bson.M{
			{"weight": bson.M{"$exists": true}},
			{"bloodPressure": bson.M{"$exists": true}},
			{"heartRate": bson.M{"$exists": true}},
		},
	}
	opts := options.Find().
		SetSort(bson.M{"date": 1}).
		SetProjection(bson.M{"date": 1, "weight": 1, "bloodPressure": 1, "heartRate": 1, "patientName": 1})

	var metrics []models.HealthMetrics
	if err := db.FindAll(ctx, collection, filter, &metrics, opts); err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return metrics, nil
}
