// internal/domain/models/groupproject.go
package models

import (
	"time"
)

// Project types a group can work on.
const (
	ProjectTypePodcast = "podcast"
	ProjectTypeVlog    = "vlog"
)

// ValidProjectType reports whether s is one of the supported project types.
func ValidProjectType(s string) bool {
	return s == ProjectTypePodcast || s == ProjectTypeVlog
}

// GroupProject is the persisted record for one student group working
// through the five-day media production journal.
//
// NOTE:
//   - The ID is an opaque UUID string assigned at creation and is also the
//     Mongo document key, so lookups never need a separate index.
//   - GroupName is unique across all groups (case-sensitive exact match),
//     enforced by a unique index on the collection.
//   - Each DayNData sub-record is replaced wholesale by a day-stage update;
//     there is no field-level merge.
type GroupProject struct {
	ID          string   `bson:"_id" json:"id"`
	GroupName   string   `bson:"group_name" json:"group_name"`
	Members     []string `bson:"members" json:"members"`
	ProjectType string   `bson:"project_type" json:"project_type"`

	Day1 Day1Data `bson:"day1" json:"day1"`
	Day2 Day2Data `bson:"day2" json:"day2"`
	Day3 Day3Data `bson:"day3" json:"day3"`
	Day4 Day4Data `bson:"day4" json:"day4"`
	Day5 Day5Data `bson:"day5" json:"day5"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
