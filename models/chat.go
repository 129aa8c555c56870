package models

import "time"

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the single reply returned for one turn.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// TranscriptEntry records one processed turn for the optional Mongo-backed
// conversation log.
type TranscriptEntry struct {
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Message   string    `bson:"message" json:"message"`
	Intent    string    `bson:"intent" json:"intent"`
	Reply     string    `bson:"reply" json:"reply"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
