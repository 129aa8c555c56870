package transcriptRepo

import (
	"context"

	"calendai/database"
	"calendai/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the conversation log. Appends are best-effort: the dialogue
// never fails a turn because the log is down.
type Repository interface {
	Append(ctx context.Context, entry models.TranscriptEntry) error
	BySession(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error)
}

type mongoTranscriptRepo struct {
	coll *mongo.Collection
}

// NewMongoTranscriptRepo returns a Repository backed by MongoDB.
func NewMongoTranscriptRepo(dbName string) Repository {
	db := database.MongoClient.Database(dbName)
	return &mongoTranscriptRepo{
		coll: db.Collection("transcripts"),
	}
}
