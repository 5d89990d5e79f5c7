package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryItem struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CompanyName       string             `json:"companyName" bson:"companyName"`
	WarehouseName     string             `json:"warehouseName" bson:"warehouseName"`
	MedicineName      string             `json:"medicineName" bson:"medicineName"`
	MedicineUse       string             `json:"medicineUse" bson:"medicineUse"`
	Composition       string             `json:"composition,omitempty" bson:"composition,omitempty"`
	Stock             int                `json:"stock" bson:"stock"`
	Price             float64            `json:"price" bson:"price"`
	ExpiryDate        time.Time          `json:"expiryDate" bson:"expiryDate"`
	BatchNumber       string             `json:"batchNumber" bson:"batchNumber"`
	ManufacturingDate time.Time          `json:"manufacturingDate" bson:"manufacturingDate"`
	IsExpired         bool               `json:"isExpired" bson:"isExpired"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}
