package referrals

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

type ReferralMongoRepository struct {
	Collection *mongo.Collection
}

func NewReferralMongoRepository(db *mongo.Client, dbName string) ReferralRepository {
	return &ReferralMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReferrals),
	}
}

func (r *ReferralMongoRepository) CreateReferral(ctx context.Context, referralModel *models.Referral) (referralID string, err error) {
	result, err := r.Collection.InsertOne(ctx, referralModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ReferralMongoRepository) FindByID(ctx context.Context, referralID string) (*models.Referral, error) {
	objectID, err := primitive.ObjectIDFromHex(referralID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var referral models.Referral
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&referral)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	referral.ID = referralID
	return &referral, nil
}

func (r *ReferralMongoRepository) FindByFilter(ctx context.Context, filter ReferralFilter, page, pageSize int) ([]models.Referral, int, error) {
	query := bson.M{}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.FromUserID != "" {
		query["fromUserId"] = filter.FromUserID
	}
	if filter.ToHospitalID != "" {
		query["toHospitalId"] = filter.ToHospitalID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var referralModels []models.Referral
	if err := cursor.All(ctx, &referralModels); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return referralModels, int(total), nil
}

func (r *ReferralMongoRepository) UpdateReferral(ctx context.Context, referral *models.Referral) error {
	objectID, err := primitive.ObjectIDFromHex(referral.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    referral.Status,
		"notes":     referral.Notes,
		"updatedAt": referral.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ReferralMongoRepository) DeleteByID(ctx context.Context, referralID string) error {
	objectID, err := primitive.ObjectIDFromHex(referralID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
