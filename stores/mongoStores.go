package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vital-be/apperrors"
	"vital-be/models"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// translate maps driver errors onto store sentinels and backend kinds.
func translate(err error) error {
	var decodeErr *bsoncodec.DecodeError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err), errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.KindBackendUnavailable, "database unavailable")
	case errors.As(err, &decodeErr):
		return apperrors.Wrap(err, apperrors.KindDecode, "stored record is malformed")
	default:
		return err
	}
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var record T
	if err := coll.FindOne(ctx, filter).Decode(&record); err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, translate(err)
	}
	return records, nil
}

// execute reads, validates and mutates a record, then replaces it only if nobody else wrote
// it in between. updatedAt doubles as the concurrency token.
func execute[T any](ctx context.Context, coll *mongo.Collection, id string, validate func(*T) error, mutate func(*T), updatedAt func(*T) time.Time) (*T, error) {
	record, err := findOne[T](ctx, coll, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if validate != nil {
		if err := validate(record); err != nil {
			return nil, err
		}
	}
	previous := updatedAt(record)
	mutate(record)

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id, "updatedAt": previous}, record)
	if err != nil {
		return nil, translate(err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("record %s changed concurrently: %w", id, ErrConflict)
	}
	return record, nil
}

func jurisdiction(pairs ...string) bson.M {
	filter := bson.M{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			filter[pairs[i]] = pairs[i+1]
		}
	}
	return filter
}

type MongoAuthorityStore struct {
	coll *mongo.Collection
}

func NewMongoAuthorityStore(db *mongo.Database) *MongoAuthorityStore {
	return &MongoAuthorityStore{coll: db.Collection(AuthoritiesCollection)}
}

func (s *MongoAuthorityStore) Create(ctx context.Context, a *models.Authority) error {
	_, err := s.coll.InsertOne(ctx, a)
	return translate(err)
}

func (s *MongoAuthorityStore) FindByID(ctx context.Context, uid string) (*models.Authority, error) {
	return findOne[models.Authority](ctx, s.coll, bson.M{"_id": uid})
}

func (s *MongoAuthorityStore) FindByEmail(ctx context.Context, email string) (*models.Authority, error) {
	return findOne[models.Authority](ctx, s.coll, bson.M{"email": email})
}

func (s *MongoAuthorityStore) MarkVerified(ctx context.Context, uid string, now time.Time) (*models.Authority, error) {
	var a models.Authority
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{
			"verified":           true,
			"verificationStatus": models.VerificationVerified,
			"updatedAt":          now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *MongoAuthorityStore) IncrementStat(ctx context.Context, uid, stat string) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$inc": bson.M{"performanceStats." + stat: 1}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoIssueStore struct {
	coll *mongo.Collection
}

func NewMongoIssueStore(db *mongo.Database) *MongoIssueStore {
	return &MongoIssueStore{coll: db.Collection(IssuesCollection)}
}

func (s *MongoIssueStore) Create(ctx context.Context, issue *models.Issue) error {
	_, err := s.coll.InsertOne(ctx, issue)
	return translate(err)
}

func (s *MongoIssueStore) FindByID(ctx context.Context, id string) (*models.Issue, error) {
	return findOne[models.Issue](ctx, s.coll, bson.M{"_id": id})
}

func (s *MongoIssueStore) List(ctx context.Context, filter IssueFilter) ([]models.Issue, error) {
	return findMany[models.Issue](ctx, s.coll, jurisdiction(
		"panchayatId", filter.PanchayatID,
		"talukId", filter.TalukID,
		"districtId", filter.DistrictID,
	))
}

func (s *MongoIssueStore) Execute(ctx context.Context, id string, validate func(*models.Issue) error, mutate func(*models.Issue)) (*models.Issue, error) {
	return execute(ctx, s.coll, id, validate, mutate, func(i *models.Issue) time.Time { return i.UpdatedAt })
}

type MongoFundRequestStore struct {
	coll *mongo.Collection
}

func NewMongoFundRequestStore(db *mongo.Database) *MongoFundRequestStore {
	return &MongoFundRequestStore{coll: db.Collection(FundRequestsCollection)}
}

func (s *MongoFundRequestStore) Create(ctx context.Context, fr *models.FundRequest) error {
	_, err := s.coll.InsertOne(ctx, fr)
	return translate(err)
}

func (s *MongoFundRequestStore) FindByID(ctx context.Context, id string) (*models.FundRequest, error) {
	return findOne[models.FundRequest](ctx, s.coll, bson.M{"_id": id})
}

func (s *MongoFundRequestStore) List(ctx context.Context, filter FundRequestFilter) ([]models.FundRequest, error) {
	return findMany[models.FundRequest](ctx, s.coll, jurisdiction(
		"issueId", filter.IssueID,
		"panchayatId", filter.PanchayatID,
		"talukId", filter.TalukID,
		"districtId", filter.DistrictID,
	))
}

func (s *MongoFundRequestStore) Execute(ctx context.Context, id string, validate func(*models.FundRequest) error, mutate func(*models.FundRequest)) (*models.FundRequest, error) {
	return execute(ctx, s.coll, id, validate, mutate, func(fr *models.FundRequest) time.Time { return fr.UpdatedAt })
}

type MongoVillagerStore struct {
	coll *mongo.Collection
}

func NewMongoVillagerStore(db *mongo.Database) *MongoVillagerStore {
	return &MongoVillagerStore{coll: db.Collection(VillagersCollection)}
}

func (s *MongoVillagerStore) Create(ctx context.Context, v *models.Villager) error {
	_, err := s.coll.InsertOne(ctx, v)
	return translate(err)
}

func (s *MongoVillagerStore) FindByID(ctx context.Context, id string) (*models.Villager, error) {
	return findOne[models.Villager](ctx, s.coll, bson.M{"_id": id})
}

func (s *MongoVillagerStore) List(ctx context.Context, filter VillagerFilter) ([]models.Villager, error) {
	return findMany[models.Villager](ctx, s.coll, jurisdiction(
		"panchayatId", filter.PanchayatID,
		"village", filter.Village,
	))
}

func (s *MongoVillagerStore) Execute(ctx context.Context, id string, validate func(*models.Villager) error, mutate func(*models.Villager)) (*models.Villager, error) {
	return execute(ctx, s.coll, id, validate, mutate, func(v *models.Villager) time.Time { return v.UpdatedAt })
}
