package transcriptRepo

import (
	"context"
	"time"

	"calendai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Append inserts one turn into the transcript collection.
func (r *mongoTranscriptRepo) Append(ctx context.Context, entry models.TranscriptEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

// BySession fetches all recorded turns for a session, oldest first.
func (r *mongoTranscriptRepo) BySession(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.TranscriptEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
