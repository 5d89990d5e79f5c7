package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Bill statuses
const (
	BillActive    = "active"
	BillCancelled = "cancelled"
	BillRefunded  = "refunded"
)

type PatientDetails struct {
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
	PatientID string `json:"patientId,omitempty" bson:"patientId,omitempty"`
}

// MedicineLineItem is one medicine entry within a bill. TotalPrice is always
// recomputed server-side as Quantity * PricePerUnit; any client-submitted
// value is discarded.
type MedicineLineItem struct {
	MedicineID        string    `json:"medicineId" bson:"medicineId"`
	MedicineName      string    `json:"medicineName" bson:"medicineName"`
	CompanyName       string    `json:"companyName" bson:"companyName"`
	MedicineUse       string    `json:"medicineUse" bson:"medicineUse"`
	Composition       string    `json:"composition" bson:"composition"`
	BatchNumber       string    `json:"batchNumber" bson:"batchNumber"`
	ManufacturingDate time.Time `json:"manufacturingDate" bson:"manufacturingDate"`
	ExpiryDate        time.Time `json:"expiryDate" bson:"expiryDate"`
	WarehouseName     string    `json:"warehouseName" bson:"warehouseName"`
	Quantity          int       `json:"quantity" bson:"quantity"`
	PricePerUnit      float64   `json:"pricePerUnit" bson:"pricePerUnit"`
	TotalPrice        float64   `json:"totalPrice" bson:"totalPrice"`
}

type BillingAmounts struct {
	Subtotal    float64 `json:"subtotal" bson:"subtotal"`
	Tax         float64 `json:"tax" bson:"tax"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
}

type Billing struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BillNumber     string             `json:"billNumber" bson:"billNumber"`
	PatientDetails PatientDetails     `json:"patientDetails" bson:"patientDetails"`
	Medicines      []MedicineLineItem `json:"medicines" bson:"medicines"`
	Billing        BillingAmounts     `json:"billing" bson:"billing"`
	PaymentStatus  string             `json:"paymentStatus" bson:"paymentStatus"`
	PaymentMethod  string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	TransactionID  string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	BillDate       time.Time          `json:"billDate" bson:"billDate"`
	Status         string             `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateBillingRequest is the inbound payload for bill creation. The declared
// Billing totals are validated against server-side recomputation and then
// replaced by the computed values.
type CreateBillingRequest struct {
	PatientDetails PatientDetails     `json:"patientDetails"`
	Medicines      []MedicineLineItem `json:"medicines"`
	Billing        BillingAmounts     `json:"billing"`
	PaymentMethod  string             `json:"paymentMethod"`
}
