package services

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"HealisPortal/config/authorization"
	db "HealisPortal/config/db"
	"HealisPortal/models"
	"HealisPortal/util"
)

/*
* Pharmacies register through their own collection with the same
* pending-verification lifecycle as users
* startTime and endTime are mandatory for the availability window
 */
func RegisterPharmacy(c *gin.Context) (*models.Pharmacy, error) {
	labName := strings.TrimSpace(c.PostForm("labName"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	phone := strings.TrimSpace(c.PostForm("phone"))
	password := c.PostForm("password")
	location := strings.TrimSpace(c.PostForm("location"))
	startTime := c.PostForm("startTime")
	endTime := c.PostForm("endTime")

	if labName == "" || email == "" || phone == "" || password == "" || location == "" {
		return nil, util.NewValidationError("labName, email, phone, password and location are required")
	}
	if startTime == "" || endTime == "" {
		return nil, util.NewValidationError(util.START_AND_END_TIME_REQUIRED)
	}

	photo, err := SaveUpload(c, "photo")
	if err != nil {
		return nil, util.NewValidationError(err.Error())
	}
	certificate, err := SaveUpload(c, "certificate")
	if err != nil {
		return nil, util.NewValidationError(err.Error())
	}

	experience, _ := strconv.Atoi(c.PostForm("experience"))
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pharmacy := models.Pharmacy{
		Role:        util.RolePharmacy,
		LabName:     labName,
		Experience:  experience,
		Email:       email,
		Phone:       phone,
		Password:    string(hashed),
		Location:    location,
		Photo:       photo,
		Certificate: certificate,
		Availability: models.Availability{
			Days:      parseJSONList(c.PostForm("availableDays")),
			StartTime: startTime,
			EndTime:   endTime,
		},
		IsVerified:         false,
		VerificationStatus: util.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	collection := db.OpenCollections(util.PharmacyCollection)
	result, err := db.CreateOne(c, collection, &pharmacy)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, util.NewValidationError(util.EMAIL_ALREADY_REGISTERED)
		}
		log.Println("Error from createOne: ", err)
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		pharmacy.ID = oid
	}
	return &pharmacy, nil
}

func LoginPharmacy(c *gin.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	collection := db.OpenCollections(util.PharmacyCollection)
	var pharmacy models.Pharmacy
	err := db.FindOne(c, collection, bson.M{"email": email, "role": util.RolePharmacy}, &pharmacy)
	if err != nil {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}

	if pharmacy.VerificationStatus != util.StatusVerified {
		return nil, errors.New(util.ACCOUNT_PENDING_VERIFICATION)
	}
	if bcrypt.CompareHashAndPassword([]byte(pharmacy.Password), []byte(password)) != nil {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}

	now := time.Now()
	_, err = db.UpdateOne(c, collection, bson.M{"_id": pharmacy.ID}, bson.M{"$set": bson.M{"lastLogin": now}})
	if err != nil {
		log.Println("Error updating lastLogin: ", err)
	}

	token, err := authorization.SignToken(pharmacy.ID.Hex(), util.RolePharmacy)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token: token,
		User: gin.H{
			"id":      pharmacy.ID.Hex(),
			"role":    util.RolePharmacy,
			"labName": pharmacy.LabName,
			"email":   pharmacy.Email,
		},
	}, nil
}

func FetchAllPharmacies(c *gin.Context) ([]models.Pharmacy, error) {
	collection := db.OpenCollections(util.PharmacyCollection)
	var pharmacies []models.Pharmacy
	if err := db.FindAll(c, collection, bson.M{}, &pharmacies); err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return pharmacies, nil
}

func FetchPharmacyProfile(c *gin.Context) (*models.Pharmacy, error) {
	userId := c.GetString("userId")
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, errors.New(util.PHARMACY_NOT_FOUND)
	}
	collection := db.OpenCollections(util.PharmacyCollection)
	var pharmacy models.Pharmacy
	if err := db.FindOne(c, collection, bson.M{"_id": oid}, &pharmacy); err != nil {
		return nil, errors.New(util.PHARMACY_NOT_FOUND)
	}
	return &pharmacy, nil
}

/*
* Partial profile update from a multipart form
* Missing form fields keep their stored values; fresh uploads replace paths
 */
func UpdatePharmacyProfile(c *gin.Context) (*models.Pharmacy, error) {
	pharmacy, err := FetchPharmacyProfile(c)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if v := strings.TrimSpace(c.PostForm("labName")); v != "" {
		set["labName"] = v
	}
	if v := strings.TrimSpace(c.PostForm("phone")); v != "" {
		set["phone"] = v
	}
	if v := strings.TrimSpace(c.PostForm("location")); v != "" {
		set["location"] = v
	}
	if v := c.PostForm("experience"); v != "" {
		experience, _ := strconv.Atoi(v)
		set["experience"] = experience
	}
	if v := c.PostForm("availableDays"); v != "" {
		set["availability.days"] = parseJSONList(v)
	}
	if v := c.PostForm("startTime"); v != "" {
		set["availability.startTime"] = v
	}
	if v := c.PostForm("endTime"); v != "" {
		set["availability.endTime"] = v
	}
	if photo, err := SaveUpload(c, "photo"); err != nil {
		return nil, util.NewValidationError(err.Error())
	} else if photo != "" {
		set["photo"] = photo
	}
	if certificate, err := SaveUpload(c, "certificate"); err != nil {
		return nil, util.NewValidationError(err.Error())
	} else if certificate != "" {
		set["certificate"] = certificate
	}

	collection := db.OpenCollections(util.PharmacyCollection)
	if _, err := db.UpdateOne(c, collection, bson.M{"_id": pharmacy.ID}, bson.M{"$set": set}); err != nil {
		log.Println("Error from updateOne: ", err)
		return nil, err
	}

	var updated models.Pharmacy
	if err := db.FindOne(c, collection, bson.M{"_id": pharmacy.ID}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

/*
* Same verification flow as user accounts, against the pharmacy collection
 */
func VerifyPharmacy(c *gin.Context, pharmacyId, status string) (gin.H, error) {
	if status != util.StatusVerified && status != util.StatusRejected {
		return nil, util.NewValidationError("status must be verified or rejected")
	}
	oid, err := primitive.ObjectIDFromHex(pharmacyId)
	if err != nil {
		return nil, errors.New(util.PHARMACY_NOT_FOUND)
	}

	collection := db.OpenCollections(util.PharmacyCollection)
	var pharmacy models.Pharmacy
	if err := db.FindOne(c, collection, bson.M{"_id": oid}, &pharmacy); err != nil {
		return nil, errors.New(util.PHARMACY_NOT_FOUND)
	}

	update := bson.M{"$set": bson.M{
		"isVerified":         status == util.StatusVerified,
		"verificationStatus": status,
	}}
	if _, err := db.UpdateOne(c, collection, bson.M{"_id": oid}, update); err != nil {
		log.Println("Error from updateOne: ", err)
		return nil, err
	}

	SendVerificationEmail(pharmacy.Email, status)

	return gin.H{
		"id":     pharmacy.ID.Hex(),
		"status": status,
	}, nil
}
