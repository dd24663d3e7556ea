package models

import (
	"time"
)

const QuestionCount = 10

type ReflectionEntry struct {
	ID         int64     `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Category   string    `json:"category" db:"category"`
	Question1  string    `json:"question_1" db:"question_1"`
	Question2  string    `json:"question_2" db:"question_2"`
	Question3  string    `json:"question_3" db:"question_3"`
	Question4  string    `json:"question_4" db:"question_4"`
	Question5  string    `json:"question_5" db:"question_5"`
	Question6  string    `json:"question_6" db:"question_6"`
	Question7  string    `json:"question_7" db:"question_7"`
	Question8  string    `json:"question_8" db:"question_8"`
	Question9  string    `json:"question_9" db:"question_9"`
	Question10 string    `json:"question_10" db:"question_10"`
	Timestamp  time.Time `json:"timestamp" db:"created_at"`
}

// Answers returns the ten answers in question order.
func (r *ReflectionEntry) Answers() [QuestionCount]string {
	return [QuestionCount]string{
		r.Question1, r.Question2, r.Question3, r.Question4, r.Question5,
		r.Question6, r.Question7, r.Question8, r.Question9, r.Question10,
	}
}

// AnswerPtrs is used by row scanners that fill the answers in question order.
func (r *ReflectionEntry) AnswerPtrs() []any {
	return []any{
		&r.Question1, &r.Question2, &r.Question3, &r.Question4, &r.Question5,
		&r.Question6, &r.Question7, &r.Question8, &r.Question9, &r.Question10,
	}
}

// Day is the calendar day used for the once-per-day rule.
func (r *ReflectionEntry) Day() Date {
	return DateOf(r.Timestamp)
}
