package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

const (
	participantsCollection = "participants"
	messagesCollection     = "messages"
)

// messageDoc is the persisted shape of a room.Message. The domain type keeps
// a plain string id; translation to/from ObjectID stays inside this adapter.
type messageDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	From string             `bson:"from"`
	To   string             `bson:"to"`
	Text string             `bson:"text"`
	Type string             `bson:"type"`
	Time string             `bson:"time"`
}

func (d messageDoc) toDomain() room.Message {
	return room.Message{
		ID:   d.ID.Hex(),
		From: d.From,
		To:   d.To,
		Text: d.Text,
		Type: d.Type,
		Time: d.Time,
	}
}

// MongoRoomRepository implements the room repository port on top of two
// MongoDB collections. Join uniqueness comes from a unique index on
// participants.name; edit/delete ownership comes from filtered single-document
// writes, so no in-process locking is needed.
type MongoRoomRepository struct {
	participants *mongo.Collection
	messages     *mongo.Collection
}

func NewMongoRoomRepository(db *mongo.Database) *MongoRoomRepository {
	return &MongoRoomRepository{
		participants: db.Collection(participantsCollection),
		messages:     db.Collection(messagesCollection),
	}
}

// Ensure interface is satisfied
var _ repository.RoomRepository = (*MongoRoomRepository)(nil)

// EnsureIndexes creates the unique index backing the one-participant-per-name
// invariant. Call once at startup before serving requests.
func (r *MongoRoomRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.participants.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo: create participants index: %w", err)
	}
	return nil
}

func (r *MongoRoomRepository) AddParticipant(ctx context.Context, p room.Participant) error {
	_, err := r.participants.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return room.ErrNameTaken
	}
	return err
}

func (r *MongoRoomRepository) TouchParticipant(ctx context.Context, name string, at time.Time) error {
	res, err := r.participants.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"lastStatus": at.UnixMilli()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return room.ErrUnknownParticipant
	}
	return nil
}

func (r *MongoRoomRepository) HasParticipant(ctx context.Context, name string) (bool, error) {
	n, err := r.participants.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MongoRoomRepository) ListParticipants(ctx context.Context) ([]room.Participant, error) {
	cur, err := r.participants.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var ps []room.Participant
	if err := cur.All(ctx, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *MongoRoomRepository) ListIdleParticipants(ctx context.Context, cutoff time.Time) ([]room.Participant, error) {
	cur, err := r.participants.Find(ctx, bson.M{"lastStatus": bson.M{"$lt": cutoff.UnixMilli()}})
	if err != nil {
		return nil, err
	}
	var ps []room.Participant
	if err := cur.All(ctx, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *MongoRoomRepository) RemoveParticipant(ctx context.Context, name string) (bool, error) {
	res, err := r.participants.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func (r *MongoRoomRepository) SaveMessage(ctx context.Context, m room.Message) (string, error) {
	doc := messageDoc{From: m.From, To: m.To, Text: m.Text, Type: m.Type, Time: m.Time}
	res, err := r.messages.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("mongo: unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *MongoRoomRepository) ListMessagesVisibleTo(ctx context.Context, viewer string, limit int) ([]room.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"type": bson.M{"$ne": room.MessageTypePrivate}},
		bson.M{"from": viewer},
		bson.M{"to": viewer},
	}}

	// ObjectIDs are monotonic per insertion, so _id order is creation order.
	// For a limited listing, take the newest N descending and flip back.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts = options.Find().
			SetSort(bson.D{{Key: "_id", Value: -1}}).
			SetLimit(int64(limit))
	}

	cur, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []messageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if limit > 0 {
		docs = lo.Reverse(docs)
	}
	return lo.Map(docs, func(d messageDoc, _ int) room.Message { return d.toDomain() }), nil
}

func (r *MongoRoomRepository) UpdateMessage(ctx context.Context, id string, editor string, f room.MessageFields) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return room.ErrMessageNotFound
	}
	res, err := r.messages.UpdateOne(ctx,
		bson.M{"_id": oid, "from": editor},
		bson.M{"$set": bson.M{"to": f.To, "text": f.Text, "type": f.Type}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.disambiguateMiss(ctx, oid)
	}
	return nil
}

func (r *MongoRoomRepository) DeleteMessage(ctx context.Context, id string, requester string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return room.ErrMessageNotFound
	}
	res, err := r.messages.DeleteOne(ctx, bson.M{"_id": oid, "from": requester})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return r.disambiguateMiss(ctx, oid)
	}
	return nil
}

// disambiguateMiss decides why an ownership-filtered write matched nothing:
// the id is gone (NotFound) or it exists with another sender (NotMessageOwner).
// A concurrent delete between the write and this lookup resolves as NotFound,
// which is the accepted outcome for the losing side.
func (r *MongoRoomRepository) disambiguateMiss(ctx context.Context, oid primitive.ObjectID) error {
	n, err := r.messages.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if n == 0 {
		return room.ErrMessageNotFound
	}
	return room.ErrNotMessageOwner
}
