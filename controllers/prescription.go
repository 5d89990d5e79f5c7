package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HealisPortal/models"
	"HealisPortal/services"
	"HealisPortal/util"
)

// Prescription registers the token-guarded prescription routes.
func Prescription(router *gin.Engine) {
	router.POST("/prescriptions", CreatePrescription)
	router.GET("/prescriptions/doctor/:doctorId", FetchPrescriptionsByDoctor)
	router.GET("/prescriptions/patient/:patientId", FetchPrescriptionsByPatient)
	router.GET("/api/patient-health-metrics/:patientId", FetchPatientHealthMetrics)
}

func CreatePrescription(c *gin.Context) {
	var p models.Prescription
	if err := c.BindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create prescription", "error": err.Error()})
		return
	}

	created, err := services.CreatePrescription(c, p)
	if err != nil {
		if util.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create prescription", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Prescription created successfully",
		"prescription": created,
	})
}

func FetchPrescriptionsByDoctor(c *gin.Context) {
	prescriptions, err := services.FetchPrescriptionsByDoctor(c, c.Param("doctorId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch prescriptions", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func FetchPrescriptionsByPatient(c *gin.Context) {
	prescriptions, err := services.FetchPrescriptionsByPatient(c, c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch prescriptions", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func FetchPatientHealthMetrics(c *gin.Context) {
	metrics, err := services.FetchPatientHealthMetrics(c, c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch health metrics", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
