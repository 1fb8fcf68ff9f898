// internal/app/store/groupprojects/store.go
package groupprojectstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LAULAUtonton/GLOBALISSUES/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultListLimit bounds how many group records List returns to callers
// that do not need everything (the API always passes this).
const DefaultListLimit = 100

var (
	ErrDuplicateGroupName = errors.New("a group with this name already exists")
	ErrInvalidDay         = errors.New("day number must be between 1 and 5")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

// Create inserts a new group project. The caller supplies GroupName,
// Members, and optionally ProjectType; everything else is assigned here.
// Name uniqueness is enforced by the unique index on group_name, so a
// concurrent creator of the same name loses cleanly at insert time.
func (s *Store) Create(ctx context.Context, p models.GroupProject) (models.GroupProject, error) {
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	if p.ProjectType == "" {
		p.ProjectType = models.ProjectTypePodcast
	}
	if p.Members == nil {
		p.Members = []string{}
	}
	p.Day1 = models.Day1Data{}
	p.Day2 = models.Day2Data{}
	p.Day3 = models.Day3Data{}
	p.Day4 = models.Day4Data{}
	p.Day5 = models.Day5Data{}
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.GroupProject{}, ErrDuplicateGroupName
		}
		return models.GroupProject{}, err
	}
	return p, nil
}

// List returns up to limit group records in store-native order. A limit
// of zero or less falls back to DefaultListLimit.
func (s *Store) List(ctx context.Context, limit int64) ([]models.GroupProject, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.GroupProject{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (models.GroupProject, error) {
	var p models.GroupProject
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.GroupProject{}, err
	}
	return p, nil
}

// UpdateDayStage replaces the sub-record at day{day} with data and bumps
// updated_at. The day range is checked before the id, so an out-of-range
// day fails with ErrInvalidDay even for an unknown group. data is expected
// to be one of the models.DayNData types; the stage is stored wholesale,
// discarding whatever the stage held before.
func (s *Store) UpdateDayStage(ctx context.Context, id string, day int, data any) error {
	if !models.ValidDay(day) {
		return ErrInvalidDay
	}
	set := bson.M{
		fmt.Sprintf("day%d", day): data,
		"updated_at":              time.Now().UTC(),
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a group by ID. Returns the number of documents deleted
// (0 or 1); a repeat delete of the same id reports 0.
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
