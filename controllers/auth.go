package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HealisPortal/services"
	"HealisPortal/util"
)

// Auth registers the public account routes.
func Auth(router *gin.Engine) {
	router.POST("/api/register", Register)
	router.POST("/api/login", Login)
	router.GET("/api/verified-doctors", FetchVerifiedDoctors)
}

// AuthProtected registers the routes that need a token.
func AuthProtected(router *gin.Engine) {
	router.GET("/api/profile", FetchProfile)
}

/*
* Multipart registration for doctor, lab and pharmacy staff accounts
* Accounts start pending; an admin has to verify before login works
 */
func Register(c *gin.Context) {
	user, err := services.RegisterUser(c)
	if err != nil {
		if util.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}
	name := user.Name
	if name == "" {
		name = user.LabName
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please wait for admin verification.",
		"user": gin.H{
			"id":     user.ID.Hex(),
			"role":   user.Role,
			"name":   name,
			"email":  user.Email,
			"status": util.StatusPending,
		},
	})
}

func Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed", "error": err.Error()})
		return
	}
	result, err := services.Login(c, body.Email, body.Password, body.Role)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": result.Token, "user": result.User})
}

func FetchProfile(c *gin.Context) {
	profile, err := services.FetchProfile(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func FetchVerifiedDoctors(c *gin.Context) {
	doctors, err := services.FetchVerifiedDoctors(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}
