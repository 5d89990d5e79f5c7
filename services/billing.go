package services

import (
	"context"
	"errors"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	db "HealisPortal/config/db"
	redis "HealisPortal/config/redis"
	"HealisPortal/models"
	"HealisPortal/util"
)

// TaxRate is the fixed 10% tax applied to every bill's subtotal.
const TaxRate = 0.10

// amountTolerance absorbs floating-point rounding in client-submitted totals.
const amountTolerance = 0.01

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ErrDuplicateKey is what a BillingStore returns when the unique index on
// billNumber rejects an insert.
var ErrDuplicateKey = errors.New("duplicate key")

// BillingStore is the persistence boundary for the billing collection.
type BillingStore interface {
	LatestBillNumber(ctx context.Context, prefix string) (string, error)
	InsertBilling(ctx context.Context, bill *models.Billing) error
	FindByBillNumber(ctx context.Context, billNumber string) (*models.Billing, error)
	ListBillings(ctx context.Context) ([]models.Billing, error)
}

// Package seams, overridden in tests.
var (
	billingStore BillingStore = &mongoBillingStore{}
	billingNow                = time.Now
)

type mongoBillingStore struct{}

func (s *mongoBillingStore) LatestBillNumber(ctx context.Context, prefix string) (string, error) {
	collection := db.OpenCollections(util.BillingCollection)
	filter := bson.M{
		"billNumber": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix), Options: "i"},
	}
	opts := options.FindOne().SetSort(bson.M{"billNumber": -1})

	var bill models.Billing
	err := db.FindOne(ctx, collection, filter, &bill, opts)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return bill.BillNumber, nil
}

func (s *mongoBillingStore) InsertBilling(ctx context.Context, bill *models.Billing) error {
	collection := db.OpenCollections(util.BillingCollection)
	_, err := db.CreateOne(ctx, collection, bill)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (s *mongoBillingStore) FindByBillNumber(ctx context.Context, billNumber string) (*models.Billing, error) {
	collection := db.OpenCollections(util.BillingCollection)
	var bill models.Billing
	err := db.FindOne(ctx, collection, bson.M{"billNumber": billNumber}, &bill)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *mongoBillingStore) ListBillings(ctx context.Context) ([]models.Billing, error) {
	collection := db.OpenCollections(util.BillingCollection)
	var bills []models.Billing
	opts := options.Find().SetSort(bson.M{"billDate": -1})
	if err := db.FindAll(ctx, collection, bson.M{}, &bills, opts); err != nil {
		return nil, err
	}
	return bills, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

/*
* Recompute subtotal, tax and total from the line items
* Reject when any declared figure disagrees beyond one cent
* The computed values are authoritative; declared values are discarded even
* when they match
 */
func ReconcileAmounts(items []models.MedicineLineItem, declared models.BillingAmounts) (models.BillingAmounts, error) {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.PricePerUnit
	}
	tax := subtotal * TaxRate
	total := subtotal + tax

	if math.Abs(subtotal-declared.Subtotal) > amountTolerance ||
		math.Abs(tax-declared.Tax) > amountTolerance ||
		math.Abs(total-declared.TotalAmount) > amountTolerance {
		return models.BillingAmounts{}, util.ErrAmountMismatch
	}

	return models.BillingAmounts{
		Subtotal:    roundMoney(subtotal),
		Tax:         roundMoney(tax),
		TotalAmount: roundMoney(total),
	}, nil
}

func validateBillingRequest(req *models.CreateBillingRequest) error {
	req.PatientDetails.Name = strings.TrimSpace(req.PatientDetails.Name)
	req.PatientDetails.Email = strings.ToLower(strings.TrimSpace(req.PatientDetails.Email))
	req.PatientDetails.Phone = strings.TrimSpace(req.PatientDetails.Phone)
	req.PatientDetails.PatientID = strings.TrimSpace(req.PatientDetails.PatientID)

	if req.PatientDetails.Name == "" {
		return util.NewValidationError(util.PATIENT_NAME_REQUIRED)
	}
	if req.PatientDetails.Email == "" {
		return util.NewValidationError(util.PATIENT_EMAIL_REQUIRED)
	}
	if !emailPattern.MatchString(req.PatientDetails.Email) {
		return util.NewValidationError(util.PATIENT_EMAIL_INVALID)
	}
	if req.PatientDetails.Phone == "" {
		return util.NewValidationError(util.PATIENT_PHONE_REQUIRED)
	}
	if len(req.Medicines) == 0 {
		return util.NewValidationError(util.MEDICINES_MUST_NOT_BE_EMPTY)
	}
	for _, item := range req.Medicines {
		if item.Quantity < 1 {
			return util.NewValidationError(util.QUANTITY_MUST_BE_POSITIVE)
		}
		if item.PricePerUnit < 0 {
			return util.NewValidationError(util.PRICE_MUST_NOT_BE_NEGATIVE)
		}
	}
	return nil
}

/*
* Validate patient details and line items
* Overwrite every line item's totalPrice with quantity * pricePerUnit
* Reconcile declared totals against the recomputed ones
* Allocate the next bill number for the current month bucket
* Persist with paymentStatus pending, status active, billDate now
* On a duplicate bill number, regenerate once and retry the insert
 */
func CreateBilling(ctx context.Context, req models.CreateBillingRequest) (*models.Billing, error) {
	if err := validateBillingRequest(&req); err != nil {
		return nil, err
	}

	medicines := make([]models.MedicineLineItem, len(req.Medicines))
	for i, item := range req.Medicines {
		item.TotalPrice = roundMoney(float64(item.Quantity) * item.PricePerUnit)
		medicines[i] = item
	}

	amounts, err := ReconcileAmounts(medicines, req.Billing)
	if err != nil {
		return nil, err
	}

	now := billingNow()
	billNumber, err := NextBillNumber(ctx, billingStore, now)
	if err != nil {
		log.Println("Error from NextBillNumber: ", err)
		return nil, err
	}

	bill := &models.Billing{
		BillNumber:     billNumber,
		PatientDetails: req.PatientDetails,
		Medicines:      medicines,
		Billing:        amounts,
		PaymentStatus:  models.PaymentPending,
		PaymentMethod:  strings.TrimSpace(req.PaymentMethod),
		BillDate:       now,
		Status:         models.BillActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = billingStore.InsertBilling(ctx, bill)
	if errors.Is(err, ErrDuplicateKey) {
		// Lost a race for the counter. Re-read the latest number and retry once.
		bill.BillNumber, err = NextBillNumber(ctx, billingStore, now)
		if err != nil {
			log.Println("Error from NextBillNumber on retry: ", err)
			return nil, err
		}
		err = billingStore.InsertBilling(ctx, bill)
		if errors.Is(err, ErrDuplicateKey) {
			return nil, util.ErrDuplicateBillNumber
		}
	}
	if err != nil {
		log.Println("Error from InsertBilling: ", err)
		return nil, err
	}

	key := util.BillingKey + bill.BillNumber
	if err := redis.SetCache(ctx, key, bill); err != nil {
		log.Println("Error while setting cache: ", err)
	}
	return bill, nil
}

/*
* Check the cache for the given bill number
* On a miss fetch from the billing collection and refill the cache
 */
func FetchBillingByNumber(ctx context.Context, billNumber string) (*models.Billing, error) {
	key := util.BillingKey + billNumber

	var cached models.Billing
	if ok, err := redis.GetCache(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	}

	bill, err := billingStore.FindByBillNumber(ctx, billNumber)
	if err != nil {
		log.Println("Error from FindByBillNumber: ", err)
		return nil, err
	}
	if err := redis.SetCache(ctx, key, bill); err != nil {
		log.Println("Error while setting cache: ", err)
	}
	return bill, nil
}

func FetchAllBillings(ctx context.Context) ([]models.Billing, error) {
	return billingStore.ListBillings(ctx)
}
