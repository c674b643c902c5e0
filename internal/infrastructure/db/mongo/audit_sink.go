package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

const collectionAudit = "admin_audit"

// auditDocument is the stored shape of one admin event.
type auditDocument struct {
	EventID    string            `bson:"event_id"`
	Type       string            `bson:"type"`
	EntityID   string            `bson:"entity_id"`
	OccurredAt time.Time         `bson:"occurred_at"`
	Details    map[string]string `bson:"details,omitempty"`
	RecordedAt time.Time         `bson:"recorded_at"`
}

func newAuditDocument(e domain.AdminEvent, recordedAt time.Time) auditDocument {
	return auditDocument{
		EventID:    e.ID,
		Type:       string(e.Type),
		EntityID:   e.EntityID,
		OccurredAt: e.OccurredAt.UTC(),
		Details:    e.Details,
		RecordedAt: recordedAt.UTC(),
	}
}

// AuditSink appends admin events to the admin_audit collection.
// It implements ports.EventSink.
type AuditSink struct {
	col *mongo.Collection
}

func NewAuditSink(db *mongo.Database) *AuditSink {
	return &AuditSink{col: db.Collection(collectionAudit)}
}

func (s *AuditSink) Name() string { return "mongo_audit" }

// Deliver inserts the event. A redelivered event id is ignored by the unique index.
func (s *AuditSink) Deliver(ctx context.Context, event domain.AdminEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.InsertOne(ctx, newAuditDocument(event, time.Now()))
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("insert audit event %s: %w", event.ID, err)
	}
	return nil
}

// EnsureIndexes creates the indexes the audit trail is queried by.
func (s *AuditSink) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "entity_id", Value: 1}, {Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}

	_, err := s.col.Indexes().CreateMany(ctx, indexes)
	return err
}
