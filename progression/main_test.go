package progression

import (
	"fmt"
	"strings"
	"testing"

	courseModels "skillcert/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database migrated with the course
// schema. One connection so the shared-cache memory DB behaves.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&courseModels.Course{},
		&courseModels.CourseLevel{},
		&courseModels.ContentItem{},
		&courseModels.Question{},
		&courseModels.QuestionOption{},
		&courseModels.Enrollment{},
		&courseModels.ProgressRecord{},
		&courseModels.SubmissionLog{},
		&courseModels.Certificate{},
	))

	return db
}

// seedLevel creates a published level with the given content items,
// positions assigned by slice order.
func seedLevel(t *testing.T, db *gorm.DB, items []*courseModels.ContentItem) courseModels.CourseLevel {
	t.Helper()

	level := courseModels.CourseLevel{
		CourseID:     1,
		Title:        "Forklift Safety - Level 1",
		LevelIndex:   1,
		DurationDays: 30,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&level).Error)

	for i, item := range items {
		item.CourseLevelID = level.ID
		item.Position = i + 1
		item.IsPublished = true
		require.NoError(t, db.Create(item).Error)
	}

	return level
}

func watchItem(minWatchPercent int) *courseModels.ContentItem {
	return &courseModels.ContentItem{
		Title:           "Intro video",
		Kind:            courseModels.KindWatchable,
		MinWatchPercent: minWatchPercent,
	}
}

func quizItem(passingScore, maxAttempts int) *courseModels.ContentItem {
	return &courseModels.ContentItem{
		Title:        "Knowledge check",
		Kind:         courseModels.KindAssessable,
		PassingScore: passingScore,
		MaxAttempts:  maxAttempts,
	}
}

// seedQuestions attaches n questions worth points each to an item. The
// first option of every question is the correct one.
func seedQuestions(t *testing.T, db *gorm.DB, item *courseModels.ContentItem, n, points int) []courseModels.Question {
	t.Helper()

	questions := make([]courseModels.Question, n)
	for i := 0; i < n; i++ {
		questions[i] = courseModels.Question{
			ContentItemID: item.ID,
			Text:          fmt.Sprintf("Question %d", i+1),
			Points:        points,
			OrderIndex:    i,
			Options: []courseModels.QuestionOption{
				{Text: "Right", IsCorrect: true, OrderIndex: 0},
				{Text: "Wrong", OrderIndex: 1},
			},
		}
		require.NoError(t, db.Create(&questions[i]).Error)
	}
	return questions
}

// answers selects the correct option for the first `correct` questions
// and the wrong option for the rest.
func answers(questions []courseModels.Question, correct int) []Answer {
	out := make([]Answer, len(questions))
	for i, q := range questions {
		opt := q.Options[1]
		if i < correct {
			opt = q.Options[0]
		}
		out[i] = Answer{QuestionID: q.ID, OptionID: opt.ID}
	}
	return out
}

func watchSubmission(percent int) Submission {
	return Submission{WatchPercent: &percent}
}
