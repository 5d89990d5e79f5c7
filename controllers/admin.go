package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HealisPortal/config/authorization"
	"HealisPortal/services"
	"HealisPortal/util"
)

// Admin registers the admin-only account management routes.
func Admin(router *gin.Engine) {
	router.GET("/api/users", authorization.RequireRole(util.RoleAdmin), FetchAllUsers)
	router.POST("/api/verify-user", authorization.RequireRole(util.RoleAdmin), VerifyUser)
}

func FetchAllUsers(c *gin.Context) {
	users, err := services.FetchAllUsers(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

/*
* Admin verdict on a pending registration
* A verification email goes out as a side effect
 */
func VerifyUser(c *gin.Context) {
	var body struct {
		UserID string `json:"userId"`
		Status string `json:"status"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Verification failed", "error": err.Error()})
		return
	}

	result, err := services.VerifyUser(c, body.UserID, body.Status)
	if err != nil {
		if err.Error() == util.USER_NOT_FOUND {
			c.JSON(http.StatusNotFound, gin.H{"message": util.USER_NOT_FOUND})
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
		"message": "User " + verb + " successfully",
		"user":    result,
	})
}
