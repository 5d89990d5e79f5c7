package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HealisPortal/models"
	"HealisPortal/util"
)

// fakeBillingStore is an in-memory BillingStore. dupOnInsert forces the next n
// inserts to fail with ErrDuplicateKey, simulating a racing writer.
type fakeBillingStore struct {
	bills       []models.Billing
	latestErr   error
	insertErr   error
	dupOnInsert int
	inserts     int
}

func (f *fakeBillingStore) seed(numbers ...string) {
	for _, n := range numbers {
		f.bills = append(f.bills, models.Billing{BillNumber: n})
	}
}

func (f *fakeBillingStore) LatestBillNumber(_ context.Context, prefix string) (string, error) {
	if f.latestErr != nil {
		return "", f.latestErr
	}
	latest := ""
	for _, b := range f.bills {
		if strings.HasPrefix(b.BillNumber, prefix) && b.BillNumber > latest {
			latest = b.BillNumber
		}
	}
	return latest, nil
}

func (f *fakeBillingStore) InsertBilling(_ context.Context, bill *models.Billing) error {
	f.inserts++
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.dupOnInsert > 0 {
		f.dupOnInsert--
		return ErrDuplicateKey
	}
	for _, b := range f.bills {
		if b.BillNumber == bill.BillNumber {
			return ErrDuplicateKey
		}
	}
	f.bills = append(f.bills, *bill)
	return nil
}

func (f *fakeBillingStore) FindByBillNumber(_ context.Context, billNumber string) (*models.Billing, error) {
	for i := range f.bills {
		if f.bills[i].BillNumber == billNumber {
			return &f.bills[i], nil
		}
	}
	return nil, errRecordNotFound
}

func (f *fakeBillingStore) ListBillings(_ context.Context) ([]models.Billing, error) {
	return f.bills, nil
}

var errRecordNotFound = errors.New(util.RECORD_NOT_FOUND)

func useFakeStore(t *testing.T, store *fakeBillingStore, now time.Time) {
	t.Helper()
	prevStore, prevNow := billingStore, billingNow
	billingStore = store
	billingNow = func() time.Time { return now }
	t.Cleanup(func() {
		billingStore = prevStore
		billingNow = prevNow
	})
}

func validRequest() models.CreateBillingRequest {
	return models.CreateBillingRequest{
		PatientDetails: models.PatientDetails{
			Name:  "  Asha Rao  ",
			Email: "Asha.Rao@Example.COM",
			Phone: "9876543210",
		},
		Medicines: []models.MedicineLineItem{
			{MedicineID: "m1", MedicineName: "Paracetamol", Quantity: 2, PricePerUnit: 50.0, TotalPrice: 999},
			{MedicineID: "m2", MedicineName: "Cetirizine", Quantity: 1, PricePerUnit: 20.0},
		},
		Billing: models.BillingAmounts{
			Subtotal:    120.00,
			Tax:         12.00,
			TotalAmount: 132.00,
		},
		PaymentMethod: "cash",
	}
}

func TestReconcileAmounts_ComputesTotals(t *testing.T) {
	items := []models.MedicineLineItem{
		{Quantity: 2, PricePerUnit: 50.0},
		{Quantity: 1, PricePerUnit: 20.0},
	}
	amounts, err := ReconcileAmounts(items, models.BillingAmounts{Subtotal: 120, Tax: 12, TotalAmount: 132})
	require.NoError(t, err)
	assert.Equal(t, 120.0, amounts.Subtotal)
	assert.Equal(t, 12.0, amounts.Tax)
	assert.Equal(t, 132.0, amounts.TotalAmount)
}

func TestReconcileAmounts_ToleratesCentLevelRounding(t *testing.T) {
	items := []models.MedicineLineItem{
		{Quantity: 3, PricePerUnit: 33.33},
	}
	// computed subtotal 99.99, tax 9.999, total 109.989
	declared := models.BillingAmounts{Subtotal: 99.99, Tax: 10.00, TotalAmount: 109.99}
	amounts, err := ReconcileAmounts(items, declared)
	require.NoError(t, err)
	assert.InDelta(t, 99.99, amounts.Subtotal, 0.001)
	assert.InDelta(t, 10.00, amounts.Tax, 0.005)
	assert.InDelta(t, 109.99, amounts.TotalAmount, 0.005)
}

func TestReconcileAmounts_RejectsMismatch(t *testing.T) {
	items := []models.MedicineLineItem{
		{Quantity: 2, PricePerUnit: 50.0},
		{Quantity: 1, PricePerUnit: 20.0},
	}
	_, err := ReconcileAmounts(items, models.BillingAmounts{Subtotal: 100, Tax: 10, TotalAmount: 110})
	assert.ErrorIs(t, err, util.ErrAmountMismatch)

	// each field is checked independently
	_, err = ReconcileAmounts(items, models.BillingAmounts{Subtotal: 120, Tax: 12.02, TotalAmount: 132})
	assert.ErrorIs(t, err, util.ErrAmountMismatch)

	_, err = ReconcileAmounts(items, models.BillingAmounts{Subtotal: 120, Tax: 12, TotalAmount: 132.02})
	assert.ErrorIs(t, err, util.ErrAmountMismatch)
}

func TestCreateBilling_PersistsValidatedRecord(t *testing.T) {
	store := &fakeBillingStore{}
	now := time.Date(2025, time.March, 14, 15, 30, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	bill, err := CreateBilling(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "BILL-2503-0001", bill.BillNumber)
	assert.Equal(t, "Asha Rao", bill.PatientDetails.Name)
	assert.Equal(t, "asha.rao@example.com", bill.PatientDetails.Email)
	assert.Equal(t, models.PaymentPending, bill.PaymentStatus)
	assert.Equal(t, models.BillActive, bill.Status)
	assert.Equal(t, now, bill.BillDate)
	assert.Equal(t, 120.0, bill.Billing.Subtotal)
	assert.Equal(t, 12.0, bill.Billing.Tax)
	assert.Equal(t, 132.0, bill.Billing.TotalAmount)
	require.Len(t, store.bills, 1)
}

func TestCreateBilling_OverwritesLineItemTotals(t *testing.T) {
	store := &fakeBillingStore{}
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	req := validRequest()
	req.Medicines[0].TotalPrice = 5.0 // client lies, server recomputes
	bill, err := CreateBilling(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 100.0, bill.Medicines[0].TotalPrice)
	assert.Equal(t, 20.0, bill.Medicines[1].TotalPrice)
}

func TestCreateBilling_SequentialNumbersWithinMonth(t *testing.T) {
	store := &fakeBillingStore{}
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	first, err := CreateBilling(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := CreateBilling(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "BILL-2503-0001", first.BillNumber)
	assert.Equal(t, "BILL-2503-0002", second.BillNumber)
}

func TestCreateBilling_MismatchPersistsNothing(t *testing.T) {
	store := &fakeBillingStore{}
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	req := validRequest()
	req.Billing = models.BillingAmounts{Subtotal: 100, Tax: 10, TotalAmount: 110}
	_, err := CreateBilling(context.Background(), req)

	assert.ErrorIs(t, err, util.ErrAmountMismatch)
	assert.Empty(t, store.bills)
	assert.Zero(t, store.inserts)
}

func TestCreateBilling_ValidationFailures(t *testing.T) {
	store := &fakeBillingStore{}
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	cases := []struct {
		name   string
		mutate func(*models.CreateBillingRequest)
	}{
		{"empty medicines", func(r *models.CreateBillingRequest) { r.Medicines = nil }},
		{"zero quantity", func(r *models.CreateBillingRequest) { r.Medicines[0].Quantity = 0 }},
		{"negative price", func(r *models.CreateBillingRequest) { r.Medicines[1].PricePerUnit = -1 }},
		{"missing name", func(r *models.CreateBillingRequest) { r.PatientDetails.Name = "   " }},
		{"missing email", func(r *models.CreateBillingRequest) { r.PatientDetails.Email = "" }},
		{"bad email", func(r *models.CreateBillingRequest) { r.PatientDetails.Email = "not-an-email" }},
		{"missing phone", func(r *models.CreateBillingRequest) { r.PatientDetails.Phone = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := CreateBilling(context.Background(), req)
			assert.True(t, util.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
	assert.Empty(t, store.bills)
}

func TestCreateBilling_RetriesOnceOnDuplicate(t *testing.T) {
	store := &fakeBillingStore{dupOnInsert: 1}
	store.seed("BILL-2503-0007")
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	bill, err := CreateBilling(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "BILL-2503-0008", bill.BillNumber)
	assert.Equal(t, 2, store.inserts)
}

func TestCreateBilling_SecondDuplicateSurfaces(t *testing.T) {
	store := &fakeBillingStore{dupOnInsert: 2}
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	_, err := CreateBilling(context.Background(), validRequest())
	assert.ErrorIs(t, err, util.ErrDuplicateBillNumber)
}

func TestCreateBilling_SequenceLookupFailureAborts(t *testing.T) {
	store := &fakeBillingStore{latestErr: context.DeadlineExceeded}
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	_, err := CreateBilling(context.Background(), validRequest())
	require.Error(t, err)

	var lookupErr *util.SequenceLookupError
	assert.ErrorAs(t, err, &lookupErr)
	assert.Zero(t, store.inserts)
}

func TestFetchBillingByNumber_UsesStore(t *testing.T) {
	store := &fakeBillingStore{}
	store.seed("BILL-2503-0001")
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	useFakeStore(t, store, now)

	bill, err := FetchBillingByNumber(context.Background(), "BILL-2503-0001")
	require.NoError(t, err)
	assert.Equal(t, "BILL-2503-0001", bill.BillNumber)

	_, err = FetchBillingByNumber(context.Background(), "BILL-2503-9999")
	assert.Error(t, err)
}
