package migrations

import (
	"context"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	db "HealisPortal/config/db"
	"HealisPortal/models"
	"HealisPortal/util"
)

// LowercasePatientEmails normalizes billing patient emails written before
// lowercasing was enforced at creation time.
func LowercasePatientEmails() {
	ctx := context.Background()
	collection := db.OpenCollections(util.BillingCollection)

	var bills []models.Billing
	if err := db.FindAll(ctx, collection, bson.M{}, &bills); err != nil {
		log.Fatal("Migration failed:", err)
	}

	updated := 0
	for i := range bills {
		bill := &bills[i]
		lower := strings.ToLower(bill.PatientDetails.Email)
		if lower == bill.PatientDetails.Email {
			continue
		}
		_, err := db.UpdateOne(ctx, collection,
			bson.M{"_id": bill.ID},
			bson.M{"$set": bson.M{"patientDetails.email": lower}},
		)
		if err != nil {
			log.Fatal("Migration failed:", err)
		}
		updated++
	}
	log.Printf("Migration applied: %d documents updated\n", updated)
}
