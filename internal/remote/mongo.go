package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quizzine/engine/internal/question"
)

// Collection names.
const (
	sessionsCollection  = "sessions"
	answersCollection   = "answers"
	questionsCollection = "questions"
)

// opTimeout bounds every remote call so a partition surfaces as an error
// quickly instead of hanging the outbox.
const opTimeout = 10 * time.Second

// MongoStore implements Store over a MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a MongoStore over an already-connected database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// Dial connects to MongoDB and returns a MongoStore plus a close function.
func Dial(ctx context.Context, uri, database string) (*MongoStore, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return NewMongoStore(client.Database(database)), client.Disconnect, nil
}

func (s *MongoStore) UpsertSummary(ctx context.Context, sum SessionSummary) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.db.Collection(sessionsCollection).ReplaceOne(
		ctx,
		bson.M{"session_id": sum.SessionID},
		sum,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert session summary %s: %w", sum.SessionID, err)
	}
	return nil
}

func (s *MongoStore) InsertAnswer(ctx context.Context, a AnswerRecord) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Replace keyed by (session, question): a replayed write overwrites the
	// earlier row instead of duplicating it.
	_, err := s.db.Collection(answersCollection).ReplaceOne(
		ctx,
		bson.M{"session_id": a.SessionID, "question_id": a.QuestionID},
		a,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("insert answer %s/%s: %w", a.SessionID, a.QuestionID, err)
	}
	return nil
}

func (s *MongoStore) History(ctx context.Context, userID string) ([]SessionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := s.db.Collection(sessionsCollection).Find(
		ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}
	defer cur.Close(ctx)

	var summaries []SessionSummary
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode session history: %w", err)
	}
	return summaries, nil
}

// Questions fetches active question documents for the given sub-themes,
// validating each against the question schema. Documents that fail
// validation are dropped at the boundary.
func (s *MongoStore) Questions(ctx context.Context, subThemeIDs []string, kind question.Kind) ([]question.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"active": true}
	if len(subThemeIDs) > 0 {
		filter["sub_theme.id"] = bson.M{"$in": subThemeIDs}
	}
	if kind == question.KindSingle || kind == question.KindMulti {
		filter["kind"] = string(kind)
	}

	cur, err := s.db.Collection(questionsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	questions := make([]question.Question, 0, len(docs))
	for _, doc := range docs {
		delete(doc, "_id")
		raw, err := json.Marshal(doc)
		if err != nil {
			continue
		}
		q, err := decodeQuestion(raw)
		if err != nil {
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}
