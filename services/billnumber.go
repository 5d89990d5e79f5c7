package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"HealisPortal/util"
)

// BillNumberPrefix returns the month bucket prefix ("BILL-YYMM-") for the
// given time.
func BillNumberPrefix(now time.Time) string {
	return fmt.Sprintf("BILL-%s-", now.Format("0601"))
}

/*
* Find the greatest existing bill number in the current month bucket
* Parse its trailing counter and increment; start at 1 when the bucket is empty
* Zero-pad to 4 digits (wider counters grow without bound)
 */
func NextBillNumber(ctx context.Context, store BillingStore, now time.Time) (string, error) {
	prefix := BillNumberPrefix(now)

	latest, err := store.LatestBillNumber(ctx, prefix)
	if err != nil {
		return "", &util.SequenceLookupError{Cause: err}
	}

	count := 1
	if latest != "" {
		parts := strings.Split(latest, "-")
		if n, perr := strconv.Atoi(parts[len(parts)-1]); perr == nil {
			count = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, count), nil
}
