package services

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	db "HealisPortal/config/db"
	"HealisPortal/models"
	"HealisPortal/util"
)

/*
* List every account for the admin dashboard
* Each entry carries the common fields plus the role-specific extras
 */
func FetchAllUsers(c *gin.Context) ([]gin.H, error) {
	collection := db.OpenCollections(util.UserCollection)
	var users []models.User
	if err := db.FindAll(c, collection, bson.M{}, &users); err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		user := &users[i]
		entry := gin.H{
			"id":         user.ID.Hex(),
			"name":       displayName(user),
			"email":      user.Email,
			"role":       user.Role,
			"status":     user.VerificationStatus,
			"photo":      user.Photo,
			"experience": user.Experience,
			"location":   user.Location,
			"lastLogin":  user.LastLogin,
			"createdAt":  user.CreatedAt,
		}
		switch user.Role {
		case util.RoleDoctor:
			entry["qualifications"] = user.Qualifications
			entry["languagesSpoken"] = user.LanguagesSpoken
			entry["dob"] = user.DOB
			entry["certificate"] = user.Certificate
			entry["availability"] = user.Availability
		case util.RoleLab, util.RolePharmacy:
			entry["labName"] = user.LabName
		}
		out = append(out, entry)
	}
	return out, nil
}

/*
* Flip the verification flags for the given account
* Notify the owner by email, fire and forget
 */
func VerifyUser(c *gin.Context, userId, status string) (gin.H, error) {
	if status != util.StatusVerified && status != util.StatusRejected {
		return nil, util.NewValidationError("status must be verified or rejected")
	}

	user, err := fetchUserById(c, userId)
	if err != nil {
		return nil, errors.New(util.USER_NOT_FOUND)
	}

	collection := db.OpenCollections(util.UserCollection)
	update := bson.M{"$set": bson.M{
		"isVerified":         status == util.StatusVerified,
		"verificationStatus": status,
	}}
	if _, err := db.UpdateOne(c, collection, bson.M{"_id": user.ID}, update); err != nil {
		log.Println("Error from updateOne: ", err)
		return nil, err
	}

	SendVerificationEmail(user.Email, status)

	return gin.H{
		"id":     user.ID.Hex(),
		"status": status,
	}, nil
}
