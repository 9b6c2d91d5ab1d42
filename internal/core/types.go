package core

import "time"

const (
	AppName       = "pdfchat"
	AppVersion    = "0.1.0"
	AppUserAgent  = "pdfchat/0.1"
	RepositoryURL = "https://github.com/sandevgo/pdfchat"
)

// RetrievalToolName is the single entry in the tool registry. The name is
// part of the wire contract with the model and must stay stable.
const RetrievalToolName = "get_information_for_question_answering"

const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

const (
	TypeText  = "text"
	TypeImage = "image"
)

// Embedding input types understood by the serverless endpoint.
const (
	InputQuery    = "query"
	InputDocument = "document"
)

// PageHit is one vector search match: a stored page image plus its
// similarity score. Hits are query-scoped and never persisted.
type PageHit struct {
	Key        string  `bson:"key" json:"key"`
	Width      int     `bson:"width" json:"width"`
	Height     int     `bson:"height" json:"height"`
	PageNumber int     `bson:"page_number" json:"page_number"`
	Score      float64 `bson:"score" json:"score"`
}

// PageDoc is an ingested page image with its embedding, as stored in the
// vector search collection.
type PageDoc struct {
	Key        string    `bson:"key"`
	Width      int       `bson:"width"`
	Height     int       `bson:"height"`
	PageNumber int       `bson:"page_number"`
	Embedding  []float64 `bson:"embedding"`
}

// ChatMessage is one turn fragment in the session history log. Messages are
// append-only: they are never mutated after insert and are removed only by a
// bulk session clear.
type ChatMessage struct {
	SessionID string    `bson:"session_id"`
	Role      string    `bson:"role"`
	Type      string    `bson:"type"`
	Content   string    `bson:"content"`
	Timestamp time.Time `bson:"timestamp"`
}

// Part is one element of interleaved generation content: either text or raw
// image bytes.
type Part struct {
	Text string
	Data []byte
	MIME string
}

func TextPart(s string) Part {
	return Part{Text: s}
}

func ImagePart(mime string, data []byte) Part {
	return Part{Data: data, MIME: mime}
}

func (p Part) IsImage() bool {
	return len(p.Data) > 0
}
