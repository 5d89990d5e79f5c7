package migrations

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	db "HealisPortal/config/db"
	"HealisPortal/models"
	"HealisPortal/util"
)

// BackfillLineItemTotals recomputes every stored line item's totalPrice as
// quantity * pricePerUnit, fixing records written before the server started
// overwriting client-submitted values.
func BackfillLineItemTotals() {
	ctx := context.Background()
	collection := db.OpenCollections(util.BillingCollection)

	var bills []models.Billing
	if err := db.FindAll(ctx, collection, bson.M{}, &bills); err != nil {
		log.Fatal("Migration failed:", err)
	}

	updated := 0
	for i := range bills {
		bill := &bills[i]
		changed := false
		for j := range bill.Medicines {
			item := &bill.Medicines[j]
			want := float64(item.Quantity) * item.PricePerUnit
			if item.TotalPrice != want {
				item.TotalPrice = want
				changed = true
			}
		}
		if !changed {
			continue
		}
		_, err := db.UpdateOne(ctx, collection,
			bson.M{"_id": bill.ID},
			bson.M{"$set": bson.M{"medicines": bill.Medicines}},
		)
		if err != nil {
			log.Fatal("Migration failed:", err)
		}
		updated++
	}
	log.Printf("Migration applied: %d documents updated\n", updated)
}
