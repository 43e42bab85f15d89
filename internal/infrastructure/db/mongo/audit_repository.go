package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

const auditCollection = "auth_events"

// AuthAuditRepository stores sign-in activity events in MongoDB.
type AuthAuditRepository struct {
	coll *mongo.Collection
}

func NewAuthAuditRepository(db *mongo.Database) *AuthAuditRepository {
	return &AuthAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Kind      string             `bson:"kind"`
	SessionID string             `bson:"session_id"`
	Username  string             `bson:"username,omitempty"`
	IsAdmin   bool               `bson:"is_admin,omitempty"`
	Timestamp int64              `bson:"timestamp"`
}

func (r *AuthAuditRepository) Record(ctx context.Context, event domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Kind:      string(event.Kind),
		SessionID: event.SessionID,
		Username:  event.Username,
		IsAdmin:   event.IsAdmin,
		Timestamp: event.Timestamp.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

func (r *AuthAuditRepository) Recent(ctx context.Context, limit int64) ([]domain.AuthEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find auth events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAuthEvent
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode auth events: %w", err)
	}

	events := make([]domain.AuthEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.AuthEvent{
			ID:        d.ID.Hex(),
			Kind:      domain.AuthEventKind(d.Kind),
			SessionID: d.SessionID,
			Username:  d.Username,
			IsAdmin:   d.IsAdmin,
			Timestamp: unixToTime(d.Timestamp),
		})
	}
	return events, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
