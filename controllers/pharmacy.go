package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HealisPortal/config/authorization"
	"HealisPortal/services"
	"HealisPortal/util"
)

// Pharmacy registers the public pharmacy routes.
func Pharmacy(router *gin.Engine) {
	router.POST("/api/pharmacy/register", RegisterPharmacy)
	router.POST("/api/pharmacy/login", LoginPharmacy)
}

// PharmacyProtected registers the token-guarded pharmacy routes.
func PharmacyProtected(router *gin.Engine) {
	router.GET("/api/pharmacy/all", authorization.RequireRole(util.RoleAdmin), FetchAllPharmacies)
	router.GET("/api/pharmacy/profile", authorization.RequireRole(util.RolePharmacy), FetchPharmacyProfile)
	router.PUT("/api/pharmacy/profile", authorization.RequireRole(util.RolePharmacy), UpdatePharmacyProfile)
	router.POST("/api/pharmacy/verify", authorization.RequireRole(util.RoleAdmin), VerifyPharmacy)
}

func RegisterPharmacy(c *gin.Context) {
	pharmacy, err := services.RegisterPharmacy(c)
	if err != nil {
		if util.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please wait for admin verification.",
		"pharmacy": gin.H{
			"id":      pharmacy.ID.Hex(),
			"labName": pharmacy.LabName,
			"email":   pharmacy.Email,
			"status":  util.StatusPending,
		},
	})
}

func LoginPharmacy(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed", "error": err.Error()})
		return
	}
	result, err := services.LoginPharmacy(c, body.Email, body.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": result.Token, "pharmacy": result.User})
}

func FetchAllPharmacies(c *gin.Context) {
	pharmacies, err := services.FetchAllPharmacies(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch pharmacies", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pharmacies)
}

func FetchPharmacyProfile(c *gin.Context) {
	pharmacy, err := services.FetchPharmacyProfile(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pharmacy)
}

func UpdatePharmacyProfile(c *gin.Context) {
	pharmacy, err := services.UpdatePharmacyProfile(c)
	if err != nil {
		if util.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"pharmacy": gin.H{
			"id":      pharmacy.ID.Hex(),
			"labName": pharmacy.LabName,
			"email":   pharmacy.Email,
			"status":  pharmacy.VerificationStatus,
		},
	})
}

func VerifyPharmacy(c *gin.Context) {
	var body struct {
		PharmacyID string `json:"pharmacyId"`
		Status     string `json:"status"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Verification failed", "error": err.Error()})
		return
	}

	result, err := services.VerifyPharmacy(c, body.PharmacyID, body.Status)
	if err != nil {
		if err.Error() == util.PHARMACY_NOT_FOUND {
			c.JSON(http.StatusNotFound, gin.H{"message": util.PHARMACY_NOT_FOUND})
			return
		}
		if util.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Verification failed", "error": err.Error()})
		return
	}

	verb := "verified"
	if body.Status != util.StatusVerified {
		verb = "rejected"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Pharmacy " + verb + " successfully",
		"pharmacy": result,
	})
}
