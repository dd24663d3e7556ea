package models

import (
	"time"
)

type Mood string

const (
	MoodVeryBad  Mood = "very_bad"
	MoodBad      Mood = "bad"
	MoodNeutral  Mood = "neutral"
	MoodGood     Mood = "good"
	MoodVeryGood Mood = "very_good"
)

var Moods = []Mood{MoodVeryBad, MoodBad, MoodNeutral, MoodGood, MoodVeryGood}

func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

type MoodEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Date      Date      `json:"date" db:"date"`
	Mood      Mood      `json:"mood" db:"mood"`
	Keyword   string    `json:"keyword" db:"keyword"`
	Reason    string    `json:"reason" db:"reason"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MoodPoint is the weekly chart projection of a MoodEntry.
type MoodPoint struct {
	Date Date `json:"date"`
	Mood Mood `json:"mood"`
}

// MoodRecord is the history projection of a MoodEntry.
type MoodRecord struct {
	Date    Date   `json:"date"`
	Mood    Mood   `json:"mood"`
	Keyword string `json:"keyword"`
	Reason  string `json:"reason"`
}

func (e MoodEntry) Point() MoodPoint {
	return MoodPoint{Date: e.Date, Mood: e.Mood}
}

func (e MoodEntry) Record() MoodRecord {
	return MoodRecord{Date: e.Date, Mood: e.Mood, Keyword: e.Keyword, Reason: e.Reason}
}
