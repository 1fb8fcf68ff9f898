package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/LAULAUtonton/GLOBALISSUES/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateGroupProject inserts a group project with the given name and
// members, all five day-stages at their defaults. Returns the stored record.
func (f *Fixtures) CreateGroupProject(ctx context.Context, name string, members ...string) models.GroupProject {
	f.t.Helper()

	if members == nil {
		members = []string{}
	}
	now := time.Now().UTC()
	p := models.GroupProject{
		ID:          uuid.NewString(),
		GroupName:   name,
		Members:     members,
		ProjectType: models.ProjectTypePodcast,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := f.db.Collection("groups").InsertOne(ctx, p)
	if err != nil {
		f.t.Fatalf("failed to create test group project: %v", err)
	}

	return p
}

// CreateVlogProject is CreateGroupProject with the vlog project type.
func (f *Fixtures) CreateVlogProject(ctx context.Context, name string, members ...string) models.GroupProject {
	f.t.Helper()

	p := f.CreateGroupProject(ctx, name, members...)
	_, err := f.db.Collection("groups").UpdateByID(ctx, p.ID,
		map[string]any{"$set": map[string]any{"project_type": models.ProjectTypeVlog}})
	if err != nil {
		f.t.Fatalf("failed to set project type: %v", err)
	}
	p.ProjectType = models.ProjectTypeVlog
	return p
}
