package models

import "math"

// Answer is the stored boolean response of one user to one question.
type Answer struct {
	UserID     string `json:"userId"`
	QuestionID int64  `json:"questionId"`
	Answer     bool   `json:"answer"`
}

// UserAnswer is an answer as listed for its owner.
type UserAnswer struct {
	QuestionID int64 `json:"questionId"`
	Answer     bool  `json:"answer"`
}

// AnswerStat aggregates the answers of a single question.
type AnswerStat struct {
	QuestionID  int64  `json:"questionId"`
	Prompt      string `json:"prompt"`
	Total       int    `json:"total"`
	TrueCount   int    `json:"trueCount"`
	PercentTrue int    `json:"percentTrue"`
}

// PercentTrue returns round(100 * trueCount / total), rounding halves up.
// It is 0 when nobody answered yet.
func PercentTrue(trueCount, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(trueCount)/float64(total)*100 + 0.5))
}
