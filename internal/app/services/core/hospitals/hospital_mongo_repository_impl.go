package hospitals

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) HospitalRepository {
	return &HospitalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitals),
	}
}

func (r *HospitalMongoRepository) CreateHospital(ctx context.Context, hospitalModel *models.Hospital) (hospitalID string, err error) {
	result, err := r.Collection.InsertOne(ctx, hospitalModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HospitalMongoRepository) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var hospital models.Hospital
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	hospital.ID = hospitalID
	return &hospital, nil
}

func (r *HospitalMongoRepository) FindByStatus(ctx context.Context, status string, page, pageSize int) ([]models.Hospital, int, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var hospitalModels []models.Hospital
	if err := cursor.All(ctx, &hospitalModels); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return hospitalModels, int(total), nil
}

func (r *HospitalMongoRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(total), nil
}

func (r *HospitalMongoRepository) UpdateHospital(ctx context.Context, hospital *models.Hospital) error {
	objectID, err := primitive.ObjectIDFromHex(hospital.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":            hospital.Name,
		"address":         hospital.Address,
		"phone":           hospital.Phone,
		"email":           hospital.Email,
		"status":          hospital.Status,
		"approvalMessage": hospital.ApprovalMessage,
		"rejectionReason": hospital.RejectionReason,
		"updatedAt":       hospital.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HospitalMongoRepository) DeleteByID(ctx context.Context, hospitalID string) error {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
