// internal/domain/models/daystages.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Number of day-stages every group progresses through.
const DayStageCount = 5

// Day1Data holds the ideation stage (topic planning).
type Day1Data struct {
	Topic             string `bson:"topic" json:"topic"`
	AlternativeTopics string `bson:"alternative_topics" json:"alternative_topics"`
	WhyThisTopic      string `bson:"why_this_topic" json:"why_this_topic"`
	WhatToCommunicate string `bson:"what_to_communicate" json:"what_to_communicate"`
	Completed         bool   `bson:"completed" json:"completed"`
}

// Day2Data holds the research stage.
type Day2Data struct {
	Sources        string `bson:"sources" json:"sources"`
	Learnings      string `bson:"learnings" json:"learnings"`
	TargetAudience string `bson:"target_audience" json:"target_audience"`
	Completed      bool   `bson:"completed" json:"completed"`
}

// Day3Data holds the scripting structure stage (three-part outline plus
// language notes).
type Day3Data struct {
	Part1         string `bson:"part1" json:"part1"`
	Part2         string `bson:"part2" json:"part2"`
	Part3         string `bson:"part3" json:"part3"`
	LanguageStyle string `bson:"language_style" json:"language_style"`
	KeyVocabulary string `bson:"key_vocabulary" json:"key_vocabulary"`
	Completed     bool   `bson:"completed" json:"completed"`
}

// Day4Data holds the drafting stage.
type Day4Data struct {
	DraftScript string `bson:"draft_script" json:"draft_script"`
	Completed   bool   `bson:"completed" json:"completed"`
}

// Day5Data holds the production stage.
type Day5Data struct {
	FinalScript string `bson:"final_script" json:"final_script"`
	MediaLink   string `bson:"media_link" json:"media_link"`
	Completed   bool   `bson:"completed" json:"completed"`
}

// ValidDay reports whether day is a valid day-stage number.
func ValidDay(day int) bool {
	return day >= 1 && day <= DayStageCount
}

// DecodeDayStage decodes a raw JSON day-stage payload into the typed
// sub-record for the given day. Unknown fields are rejected, so clients
// cannot silently store data outside the stage's schema. Absent fields
// keep their zero values (""/false), which gives full-replace semantics:
// a partial payload clears whatever the stage held before.
func DecodeDayStage(day int, raw json.RawMessage) (any, error) {
	if !ValidDay(day) {
		return nil, fmt.Errorf("day %d outside 1..%d", day, DayStageCount)
	}

	var dst any
	switch day {
	case 1:
		dst = &Day1Data{}
	case 2:
		dst = &Day2Data{}
	case 3:
		dst = &Day3Data{}
	case 4:
		dst = &Day4Data{}
	case 5:
		dst = &Day5Data{}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return nil, err
	}
	return dst, nil
}
