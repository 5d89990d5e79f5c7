package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	db "HealisPortal/config/db"
	redis "HealisPortal/config/redis"
	"HealisPortal/models"
	"HealisPortal/util"
)

// InventoryFilters are the optional name filters on the listing endpoint.
type InventoryFilters struct {
	CompanyName   string
	MedicineName  string
	WarehouseName string
}

func CreateInventoryItem(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error) {
	if item.CompanyName == "" || item.WarehouseName == "" || item.MedicineName == "" ||
		item.MedicineUse == "" || item.BatchNumber == "" ||
		item.ExpiryDate.IsZero() || item.ManufacturingDate.IsZero() {
		return nil, util.NewValidationError(util.INVENTORY_REQUIRED_FIELDS)
	}
	if item.Stock < 0 {
		return nil, util.NewValidationError(util.STOCK_MUST_NOT_BE_NEGATIVE)
	}
	if item.Price < 0 {
		return nil, util.NewValidationError(util.PRICE_REQUIRED_FOR_INVENTORY)
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	collection := db.OpenCollections(util.InventoryCollection)
	result, err := db.CreateOne(ctx, collection, &item)
	if err != nil {
		log.Println("Error from createOne: ", err)
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return &item, nil
}

/*
* Optional case-insensitive name filters, newest first
 */
func FetchInventory(ctx context.Context, filters InventoryFilters) ([]models.InventoryItem, error) {
	filter := bson.M{}
	if filters.CompanyName != "" {
		filter["companyName"] = primitive.Regex{Pattern: regexp.QuoteMeta(filters.CompanyName), Options: "i"}
	}
	if filters.MedicineName != "" {
		filter["medicineName"] = primitive.Regex{Pattern: regexp.QuoteMeta(filters.MedicineName), Options: "i"}
	}
	if filters.WarehouseName != "" {
		filter["warehouseName"] = primitive.Regex{Pattern: regexp.QuoteMeta(filters.WarehouseName), Options: "i"}
	}

	collection := db.OpenCollections(util.InventoryCollection)
	var items []models.InventoryItem
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if err := db.FindAll(ctx, collection, filter, &items, opts); err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return items, nil
}

func UpdateInventoryItem(ctx context.Context, id string, update map[string]interface{}) (*models.InventoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}

	delete(update, "_id")
	delete(update, "id")
	update["updatedAt"] = time.Now()

	collection := db.OpenCollections(util.InventoryCollection)
	if _, err := db.UpdateOne(ctx, collection, bson.M{"_id": oid}, bson.M{"$set": bson.M(update)}); err != nil {
		log.Println("Error from updateOne: ", err)
		return nil, err
	}

	var updated models.InventoryItem
	if err := db.FindOne(ctx, collection, bson.M{"_id": oid}, &updated); err != nil {
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}

	key := util.InventoryKey + id
	if err := redis.DeleteCache(ctx, key); err != nil {
		log.Println("Error from deleteCache: ", err)
	}
	return &updated, nil
}

func DeleteInventoryItem(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New(util.RECORD_NOT_FOUND)
	}
	collection := db.OpenCollections(util.InventoryCollection)
	if _, err := db.DeleteOne(ctx, collection, bson.M{"_id": oid}); err != nil {
		log.Println("Error from deleteOne: ", err)
		return err
	}
	key := util.InventoryKey + id
	if err := redis.DeleteCache(ctx, key); err != nil {
		log.Println("Error from deleteCache: ", err)
	}
	return nil
}

// MarkExpiredInventory flags every batch whose expiry date has passed. The
// daily scheduler calls this; billing never touches stock levels.
func MarkExpiredInventory(ctx context.Context, now time.Time) (int64, error) {
	collection := db.OpenCollections(util.InventoryCollection)
	result, err := collection.UpdateMany(
		ctx,
		bson.M{"expiryDate": bson.M{"$lt": now}, "isExpired": false},
		bson.M{"$set": bson.M{"isExpired": true, "updatedAt": now}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
