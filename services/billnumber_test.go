package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HealisPortal/util"
)

func TestBillNumberPrefix(t *testing.T) {
	march := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "BILL-2503-", BillNumberPrefix(march))

	december := time.Date(2031, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "BILL-3112-", BillNumberPrefix(december))
}

func TestNextBillNumber_EmptyBucketStartsAtOne(t *testing.T) {
	store := &fakeBillingStore{}
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	number, err := NextBillNumber(context.Background(), store, now)
	require.NoError(t, err)
	assert.Equal(t, "BILL-2503-0001", number)
}

func TestNextBillNumber_IncrementsLatest(t *testing.T) {
	store := &fakeBillingStore{}
	store.seed("BILL-2503-0001", "BILL-2503-0007", "BILL-2503-0003")
	now := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	number, err := NextBillNumber(context.Background(), store, now)
	require.NoError(t, err)
	assert.Equal(t, "BILL-2503-0008", number)
}

func TestNextBillNumber_NewMonthRestartsCounter(t *testing.T) {
	store := &fakeBillingStore{}
	store.seed("BILL-2503-9832")
	april := time.Date(2025, time.April, 1, 0, 0, 1, 0, time.UTC)

	number, err := NextBillNumber(context.Background(), store, april)
	require.NoError(t, err)
	assert.Equal(t, "BILL-2504-0001", number)
}

func TestNextBillNumber_CounterWidensPast9999(t *testing.T) {
	store := &fakeBillingStore{}
	store.seed("BILL-2503-9999")
	now := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	number, err := NextBillNumber(context.Background(), store, now)
	require.NoError(t, err)
	assert.Equal(t, "BILL-2503-10000", number)
}

func TestNextBillNumber_StoreFailureIsSequenceLookupError(t *testing.T) {
	store := &fakeBillingStore{latestErr: errors.New("connection reset")}
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	_, err := NextBillNumber(context.Background(), store, now)
	require.Error(t, err)

	var lookupErr *util.SequenceLookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.EqualError(t, lookupErr.Cause, "connection reset")
}
