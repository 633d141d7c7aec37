package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dsatrack/internal/models"
)

// ProblemRepo wraps the problems collection. Records are append-only;
// there is deliberately no update or delete method.
type ProblemRepo struct{ col *mongo.Collection }

// NewProblemRepo ensures the owner/createdAt index used by every read.
func NewProblemRepo(db *mongo.Database) *ProblemRepo {
	col := db.Collection("problems")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return &ProblemRepo{col: col}
}

// Create inserts a new record. ID and CreatedAt are assigned here and
// never change afterwards.
func (r *ProblemRepo) Create(ctx context.Context, p *models.Problem) (*models.Problem, error) {
	if p.Title == "" {
		return nil, errors.New("title required")
	}
	if !p.Difficulty.Valid() {
		return nil, errors.New("invalid difficulty")
	}
	if p.TimeSpentMinutes < 0 {
		p.TimeSpentMinutes = 0
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindByOwner returns every record logged by one user.
func (r *ProblemRepo) FindByOwner(ctx context.Context, ownerID string) ([]models.Problem, error) {
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Problem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindRecentByOwner returns the newest records first, up to limit.
func (r *ProblemRepo) FindRecentByOwner(ctx context.Context, ownerID string, limit int64) ([]models.Problem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Problem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
