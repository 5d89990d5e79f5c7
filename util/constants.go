package util

// Collection names
const (
	UserCollection         = "USERS"
	PharmacyCollection     = "PHARMACIES"
	PrescriptionCollection = "PRESCRIPTIONS"
	InventoryCollection    = "INVENTORY"
	BillingCollection      = "BILLINGS"
)

// Cache key prefixes
const (
	BillingKey   = "BILLING_"
	ProfileKey   = "PROFILE_"
	InventoryKey = "INVENTORY_"
)

// Roles
const (
	RoleDoctor   = "doctor"
	RoleLab      = "lab"
	RolePharmacy = "pharmacy"
	RoleAdmin    = "admin"
)

// Verification statuses
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// Error messages
const (
	AMOUNTS_DO_NOT_MATCH           = "Billing amounts do not match calculated totals"
	DUPLICATE_BILL_NUMBER          = "Duplicate bill number detected. Please try again."
	MEDICINES_MUST_NOT_BE_EMPTY    = "at least one medicine line item is required"
	QUANTITY_MUST_BE_POSITIVE      = "medicine quantity must be at least 1"
	PRICE_MUST_NOT_BE_NEGATIVE     = "medicine pricePerUnit must not be negative"
	PATIENT_NAME_REQUIRED          = "patient name is required"
	PATIENT_EMAIL_REQUIRED         = "patient email is required"
	PATIENT_EMAIL_INVALID          = "please enter a valid email"
	PATIENT_PHONE_REQUIRED         = "patient phone is required"
	INVALID_CREDENTIALS            = "Invalid credentials"
	ACCOUNT_PENDING_VERIFICATION   = "Account pending verification. Please wait for admin approval."
	ADMIN_ACCESS_REQUIRED          = "Admin access required"
	PHARMACY_ACCESS_REQUIRED       = "Pharmacy access required"
	AUTH_TOKEN_REQUIRED            = "Authentication token required"
	INVALID_OR_EXPIRED_TOKEN       = "Invalid or expired token"
	USER_NOT_FOUND                 = "User not found"
	PHARMACY_NOT_FOUND             = "Pharmacy not found"
	DOCTOR_NEEDS_SPECIALITY        = "Doctor must have at least one speciality"
	START_AND_END_TIME_REQUIRED    = "Start time and end time are required"
	INVALID_FILE_TYPE              = "Invalid file type. Only JPEG, PNG and PDF files are allowed."
	FILE_TOO_LARGE                 = "File exceeds the 5MB size limit"
	EMAIL_ALREADY_REGISTERED       = "An account with this email already exists"
	RECORD_NOT_FOUND               = "record not found"
	UNABLE_TO_FETCH_USER_FROM_CTX  = "unable to fetch user from context"
	INVALID_BLOOD_PRESSURE_FORMAT  = "bloodPressure must look like 118/78"
	INVALID_HEART_RATE_FORMAT      = "heartRate must look like 71bpm"
	PRESCRIPTION_REQUIRED_FIELDS   = "patientId, patientName, patientEmail, doctorId, doctorName and medications are required"
	INVENTORY_REQUIRED_FIELDS      = "companyName, warehouseName, medicineName, medicineUse, batchNumber and dates are required"
	STOCK_MUST_NOT_BE_NEGATIVE     = "stock must not be negative"
	PRICE_REQUIRED_FOR_INVENTORY   = "price must not be negative"
)
