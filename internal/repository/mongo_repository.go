package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityasingal/vendordesk/internal/models"
)

// Repository interface defines the methods that any repository implementation must satisfy.
// Lookups return (nil, nil) on a miss; writes surface models.ErrConflict on
// unique-field collisions and models.ErrNotFound when the target id is gone.
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Vendor operations
	CreateVendor(ctx context.Context, vendor *models.Vendor) error
	GetVendorByVendorID(ctx context.Context, vendorID string) (*models.Vendor, error)
	GetVendorByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error)
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	ListVendorsByUser(ctx context.Context, userID string) ([]models.Vendor, error)
	ReplaceVendor(ctx context.Context, id primitive.ObjectID, vendor *models.Vendor) error
	DeleteVendor(ctx context.Context, id primitive.ObjectID) error

	// Campaign operations
	CreateCampaign(ctx context.Context, campaign *models.Campaign) error
	GetCampaignByCampaignID(ctx context.Context, campaignID string) (*models.Campaign, error)
	GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	ListCampaignsByUser(ctx context.Context, userID string) ([]models.Campaign, error)
	ListCampaignsByVendor(ctx context.Context, vendorID string) ([]models.Campaign, error)
	ReplaceCampaign(ctx context.Context, id primitive.ObjectID, campaign *models.Campaign) error
	DeleteCampaign(ctx context.Context, id primitive.ObjectID) error
}

// MongoRepository implements the Repository interface using MongoDB
type MongoRepository struct {
	users     *mongo.Collection
	vendors   *mongo.Collection
	campaigns *mongo.Collection
}

// NewMongoRepository creates a new MongoDB repository
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		users:     db.Collection("users"),
		vendors:   db.Collection("vendors"),
		campaigns: db.Collection("campaigns"),
	}
}

// User repository methods
func (r *MongoRepository) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrConflict
		}
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // User not found
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Vendor repository methods
func (r *MongoRepository) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	res, err := r.vendors.InsertOne(ctx, vendor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrConflict
		}
		return err
	}
	vendor.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoRepository) GetVendorByVendorID(ctx context.Context, vendorID string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.vendors.FindOne(ctx, bson.M{"vendorId": vendorID}).Decode(&vendor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *MongoRepository) GetVendorByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.vendors.FindOne(ctx, bson.M{"_id": id}).Decode(&vendor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *MongoRepository) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return r.findVendors(ctx, bson.M{})
}

func (r *MongoRepository) ListVendorsByUser(ctx context.Context, userID string) ([]models.Vendor, error) {
	return r.findVendors(ctx, bson.M{"userId": userID})
}

func (r *MongoRepository) findVendors(ctx context.Context, filter bson.M) ([]models.Vendor, error) {
	// Newest first, same ordering the listing screens expect
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.vendors.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	vendors := []models.Vendor{}
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *MongoRepository) ReplaceVendor(ctx context.Context, id primitive.ObjectID, vendor *models.Vendor) error {
	res, err := r.vendors.ReplaceOne(ctx, bson.M{"_id": id}, vendor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrConflict
		}
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteVendor(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.vendors.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Campaign repository methods
func (r *MongoRepository) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	now := time.Now().UTC()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	res, err := r.campaigns.InsertOne(ctx, campaign)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrConflict
		}
		return err
	}
	campaign.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoRepository) GetCampaignByCampaignID(ctx context.Context, campaignID string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.campaigns.FindOne(ctx, bson.M{"campaignId": campaignID}).Decode(&campaign)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *MongoRepository) GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.campaigns.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *MongoRepository) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return r.findCampaigns(ctx, bson.M{})
}

func (r *MongoRepository) ListCampaignsByUser(ctx context.Context, userID string) ([]models.Campaign, error) {
	return r.findCampaigns(ctx, bson.M{"userId": userID})
}

func (r *MongoRepository) ListCampaignsByVendor(ctx context.Context, vendorID string) ([]models.Campaign, error) {
	return r.findCampaigns(ctx, bson.M{"vendorId": vendorID})
}

func (r *MongoRepository) findCampaigns(ctx context.Context, filter bson.M) ([]models.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.campaigns.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	campaigns := []models.Campaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *MongoRepository) ReplaceCampaign(ctx context.Context, id primitive.ObjectID, campaign *models.Campaign) error {
	res, err := r.campaigns.ReplaceOne(ctx, bson.M{"_id": id}, campaign)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrConflict
		}
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteCampaign(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.campaigns.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

var _ Repository = (*MongoRepository)(nil)
