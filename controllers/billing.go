package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"HealisPortal/models"
	"HealisPortal/services"
	"HealisPortal/util"
)

func Billing(router *gin.Engine) {
	billing := router.Group("/api/billing")
	{
		billing.POST("", CreateBilling)
		billing.GET("", FetchAllBillings)
		billing.GET("/:billNumber", FetchBillingByNumber)
	}
}

/*
* Bind the create-billing payload
* Validation and reconciliation failures are 400s with no record persisted
* Duplicate bill numbers (after the one retry) and other persistence
* failures are 500s with distinct messages
 */
func CreateBilling(c *gin.Context) {
	var req models.CreateBillingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	bill, err := services.CreateBilling(c, req)
	if err != nil {
		switch {
		case util.IsValidationError(err), errors.Is(err, util.ErrAmountMismatch):
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		case errors.Is(err, util.ErrDuplicateBillNumber):
			c.JSON(http.StatusInternalServerError, util.ErrorResponse(util.DUPLICATE_BILL_NUMBER, err))
		default:
			c.JSON(http.StatusInternalServerError, util.ErrorResponse("Error creating billing record", err))
		}
		return
	}

	c.JSON(http.StatusCreated, util.SuccessResponse(bill, "Billing record created successfully"))
}

func FetchBillingByNumber(c *gin.Context) {
	billNumber := c.Param("billNumber")
	bill, err := services.FetchBillingByNumber(c, billNumber)
	if err != nil {
		if err.Error() == util.RECORD_NOT_FOUND {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusInternalServerError, util.ErrorResponse("Error fetching billing record", err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(bill, "Billing record fetched successfully"))
}

func FetchAllBillings(c *gin.Context) {
	bills, err := services.FetchAllBillings(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.ErrorResponse("Error fetching billing records", err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(bills, "Billing records fetched successfully"))
}
