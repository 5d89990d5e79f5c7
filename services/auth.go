package services

import (
	"context"
	"encoding/json"
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

// Hardcoded system administrator account, kept from the original deployment.
const (
	adminEmail    = "care.healis@gmail.com"
	adminPassword = "Admin@123"
	adminUserId   = "admin-1"
	adminName     = "System Administrator"
)

// AuthResult is the login response payload.
type AuthResult struct {
	Token string `json:"token"`
	User  gin.H  `json:"user"`
}

func parseJSONList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Println("Error parsing list field: ", err)
		return []string{}
	}
	return out
}

/*
* Read the multipart registration form
* Save photo/certificate uploads to disk
* Doctors must declare at least one speciality
* Hash the password and store the account as pending verification
 */
func RegisterUser(c *gin.Context) (*models.User, error) {
	role := strings.TrimSpace(c.PostForm("role"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	phone := strings.TrimSpace(c.PostForm("phone"))
	password := c.PostForm("password")

	if role == "" || email == "" || phone == "" || password == "" {
		return nil, util.NewValidationError("role, email, phone and password are required")
	}
	switch role {
	case util.RoleDoctor, util.RoleLab, util.RolePharmacy:
	default:
		return nil, util.NewValidationError("role must be doctor, lab or pharmacy")
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
	now := time.Now()
	user := models.User{
		Role:               role,
		Email:              email,
		Phone:              phone,
		Location:           strings.TrimSpace(c.PostForm("location")),
		Experience:         experience,
		Photo:              photo,
		Specialities:       []string{},
		Qualifications:     []string{},
		LanguagesSpoken:    []string{},
		IsVerified:         false,
		VerificationStatus: util.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if role == util.RoleDoctor {
		user.Name = strings.TrimSpace(c.PostForm("name"))
		user.DOB = strings.TrimSpace(c.PostForm("dob"))
		user.Certificate = certificate
		user.Specialities = parseJSONList(c.PostForm("specialities"))
		user.Qualifications = parseJSONList(c.PostForm("qualifications"))
		user.LanguagesSpoken = parseJSONList(c.PostForm("languagesSpoken"))
		user.Availability = models.Availability{
			Days:      parseJSONList(c.PostForm("availableDays")),
			StartTime: c.PostForm("startTime"),
			EndTime:   c.PostForm("endTime"),
		}
		if len(user.Specialities) == 0 {
			return nil, util.NewValidationError(util.DOCTOR_NEEDS_SPECIALITY)
		}
	} else {
		user.LabName = strings.TrimSpace(c.PostForm("labName"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	collection := db.OpenCollections(util.UserCollection)
	result, err := db.CreateOne(c, collection, &user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, util.NewValidationError(util.EMAIL_ALREADY_REGISTERED)
		}
		log.Println("Error from createOne: ", err)
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return &user, nil
}

/*
* The hardcoded admin bypasses the user collection entirely
* Everyone else is looked up by email and role, must be verified, and must
* present the right password
* lastLogin is updated on success
 */
func Login(c *gin.Context, email, password, role string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if role == util.RoleAdmin {
		if email != adminEmail || password != adminPassword {
			return nil, errors.New(util.INVALID_CREDENTIALS)
		}
		token, err := authorization.SignToken(adminUserId, util.RoleAdmin)
		if err != nil {
			return nil, err
		}
		return &AuthResult{
			Token: token,
			User: gin.H{
				"id":    adminUserId,
				"role":  util.RoleAdmin,
				"name":  adminName,
				"email": adminEmail,
			},
		}, nil
	}

	collection := db.OpenCollections(util.UserCollection)
	var user models.User
	err := db.FindOne(c, collection, bson.M{"email": email, "role": role}, &user)
	if err != nil {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}

	if user.VerificationStatus != util.StatusVerified {
		return nil, errors.New(util.ACCOUNT_PENDING_VERIFICATION)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}

	now := time.Now()
	_, err = db.UpdateOne(c, collection, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"lastLogin": now}})
	if err != nil {
		log.Println("Error updating lastLogin: ", err)
	}

	token, err := authorization.SignToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token: token,
		User: gin.H{
			"id":    user.ID.Hex(),
			"role":  user.Role,
			"name":  displayName(&user),
			"email": user.Email,
		},
	}, nil
}

func displayName(u *models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.LabName
}

/*
* Shape the profile the way each role expects it
* The hardcoded admin has a static profile
 */
func FetchProfile(c *gin.Context) (gin.H, error) {
	role := c.GetString("role")
	if role == util.RoleAdmin {
		return gin.H{
			"id":    adminUserId,
			"role":  util.RoleAdmin,
			"name":  adminName,
			"email": adminEmail,
		}, nil
	}

	userId := c.GetString("userId")
	user, err := fetchUserById(c, userId)
	if err != nil {
		return nil, err
	}

	profile := gin.H{
		"id":         user.ID.Hex(),
		"role":       user.Role,
		"name":       displayName(user),
		"email":      user.Email,
		"phone":      user.Phone,
		"location":   user.Location,
		"experience": user.Experience,
		"photo":      user.Photo,
		"status":     user.VerificationStatus,
	}
	switch user.Role {
	case util.RoleDoctor:
		profile["dob"] = user.DOB
		profile["certificate"] = user.Certificate
		profile["qualifications"] = user.Qualifications
		profile["languagesSpoken"] = user.LanguagesSpoken
		profile["availability"] = user.Availability
	case util.RoleLab, util.RolePharmacy:
		profile["labName"] = user.LabName
	}
	return profile, nil
}

func fetchUserById(ctx context.Context, userId string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, errors.New(util.USER_NOT_FOUND)
	}
	collection := db.OpenCollections(util.UserCollection)
	var user models.User
	if err := db.FindOne(ctx, collection, bson.M{"_id": oid}, &user); err != nil {
		return nil, errors.New(util.USER_NOT_FOUND)
	}
	return &user, nil
}

// FetchVerifiedDoctors returns all fully verified doctor accounts. Passwords
// never serialize (json "-").
func FetchVerifiedDoctors(ctx context.Context) ([]models.User, error) {
	collection := db.OpenCollections(util.UserCollection)
	var doctors []models.User
	filter := bson.M{
		"role":               util.RoleDoctor,
		"isVerified":         true,
		"verificationStatus": util.StatusVerified,
	}
	if err := db.FindAll(ctx, collection, filter, &doctors); err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return doctors, nil
}
