package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HealisPortal/models"
	"HealisPortal/services"
	"HealisPortal/util"
)

func Inventory(router *gin.Engine) {
	inventory := router.Group("/api/inventory")
	{
		inventory.POST("", CreateInventoryItem)
		inventory.GET("", FetchInventory)
		inventory.PUT("/:id", UpdateInventoryItem)
		inventory.DELETE("/:id", DeleteInventoryItem)
	}
}

func CreateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	created, err := services.CreateInventoryItem(c, item)
	if err != nil {
		if util.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func FetchInventory(c *gin.Context) {
	filters := services.InventoryFilters{
		CompanyName:   c.Query("companyName"),
		MedicineName:  c.Query("medicineName"),
		WarehouseName: c.Query("warehouseName"),
	}
	items, err := services.FetchInventory(c, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func UpdateInventoryItem(c *gin.Context) {
	var update map[string]interface{}
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	updated, err := services.UpdateInventoryItem(c, c.Param("id"), update)
	if err != nil {
		if err.Error() == util.RECORD_NOT_FOUND {
			c.JSON(http.StatusNotFound, gin.H{"message": util.RECORD_NOT_FOUND})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteInventoryItem(c *gin.Context) {
	if err := services.DeleteInventoryItem(c, c.Param("id")); err != nil {
		if err.Error() == util.RECORD_NOT_FOUND {
			c.JSON(http.StatusNotFound, gin.H{"message": util.RECORD_NOT_FOUND})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory deleted successfully"})
}
