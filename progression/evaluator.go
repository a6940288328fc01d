package progression

import (
	"math"

	courseModels "skillcert/models/course"
)

// Answer is one selected option for one question of an ASSESSABLE item.
type Answer struct {
	QuestionID uint `json:"question_id"`
	OptionID   uint `json:"option_id"`
}

// Submission carries the learner's progress data for one content item:
// a watch percentage for WATCHABLE items, or answers for ASSESSABLE
// items. Exactly one of the two shapes is expected.
type Submission struct {
	WatchPercent *int     `json:"watch_percent,omitempty"`
	Answers      []Answer `json:"answers,omitempty"`
}

// Evaluate scores a submission against a content item's grading
// parameters. Pure function: no persistence, no side effects.
//
// WATCHABLE: achieved is the submitted watch percentage (0-100),
// passed when it reaches the item's minimum.
// ASSESSABLE: achieved is the earned share of question points scaled
// to 0-100 and rounded to the nearest integer, passed when it reaches
// the item's passing score. Every question must have exactly one
// answer whose option belongs to that question.
func Evaluate(item courseModels.ContentItem, questions []courseModels.Question, sub Submission) (int, bool, error) {
	switch item.Kind {
	case courseModels.KindWatchable:
		if sub.WatchPercent == nil {
			return 0, false, ErrMissingAnswer
		}
		achieved := *sub.WatchPercent
		if achieved < 0 || achieved > 100 {
			return 0, false, ErrMissingAnswer
		}
		return achieved, achieved >= item.MinWatchPercent, nil

	case courseModels.KindAssessable:
		if len(questions) == 0 {
			return 0, false, ErrContentNotFound
		}

		selected := make(map[uint]uint, len(sub.Answers))
		for _, ans := range sub.Answers {
			selected[ans.QuestionID] = ans.OptionID
		}

		totalPoints := 0
		earnedPoints := 0
		for _, q := range questions {
			optionID, ok := selected[q.ID]
			if !ok {
				return 0, false, ErrMissingAnswer
			}

			// The selected option must belong to this question.
			var picked *courseModels.QuestionOption
			for i := range q.Options {
				if q.Options[i].ID == optionID {
					picked = &q.Options[i]
					break
				}
			}
			if picked == nil {
				return 0, false, ErrMissingAnswer
			}

			totalPoints += q.Points
			if picked.IsCorrect {
				earnedPoints += q.Points
			}
		}
		if totalPoints == 0 {
			return 0, false, ErrContentNotFound
		}

		achieved := int(math.Round(100 * float64(earnedPoints) / float64(totalPoints)))
		return achieved, achieved >= item.PassingScore, nil

	default:
		return 0, false, ErrContentNotFound
	}
}
