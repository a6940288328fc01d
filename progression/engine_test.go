package progression

import (
	"testing"
	"time"

	courseModels "skillcert/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func getRecord(t *testing.T, db *gorm.DB, enrollmentID, itemID uint) courseModels.ProgressRecord {
	t.Helper()
	var record courseModels.ProgressRecord
	require.NoError(t, db.Where("enrollment_id = ? AND content_item_id = ?", enrollmentID, itemID).
		First(&record).Error)
	return record
}

func getEnrollment(t *testing.T, db *gorm.DB, id uint) courseModels.Enrollment {
	t.Helper()
	var enrollment courseModels.Enrollment
	require.NoError(t, db.First(&enrollment, id).Error)
	return enrollment
}

// assertPrefixInvariant checks that the non-LOCKED records form a
// prefix of the item ordering.
func assertPrefixInvariant(t *testing.T, db *gorm.DB, enrollmentID uint, items []*courseModels.ContentItem) {
	t.Helper()
	lockedSeen := false
	for _, item := range items {
		record := getRecord(t, db, enrollmentID, item.ID)
		if record.Status == courseModels.ProgressLocked {
			lockedSeen = true
		} else {
			assert.False(t, lockedSeen, "item at position %d is %s after a locked item", item.Position, record.Status)
		}
	}
}

func TestSubmitProgress_PassUnlocksNext(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(90), watchItem(90), watchItem(90)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	result, err := SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(95))
	require.NoError(t, err)

	assert.Equal(t, courseModels.ProgressCompleted, result.ItemStatus)
	assert.Equal(t, courseModels.EnrollmentActive, result.EnrollmentStatus)
	assert.Equal(t, 95, result.Achieved)
	assert.True(t, result.Passed)
	assert.Equal(t, 1, result.AttemptsUsed)

	assert.Equal(t, courseModels.ProgressUnlocked, getRecord(t, db, enrollment.ID, items[1].ID).Status)
	assert.Equal(t, courseModels.ProgressLocked, getRecord(t, db, enrollment.ID, items[2].ID).Status)
	assertPrefixInvariant(t, db, enrollment.ID, items)
}

func TestSubmitProgress_LockedItem(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(90), watchItem(90)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	_, err = SubmitProgress(db, enrollment.ID, items[1].ID, watchSubmission(100))
	assert.ErrorIs(t, err, ErrItemLocked)

	// Nothing moved.
	record := getRecord(t, db, enrollment.ID, items[1].ID)
	assert.Equal(t, courseModels.ProgressLocked, record.Status)
	assert.Equal(t, 0, record.AttemptsUsed)
	assert.Nil(t, record.LastScore)
}

func TestSubmitProgress_WatchFailRetries(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(90), watchItem(90)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	result, err := SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(85))
	require.NoError(t, err)

	assert.Equal(t, courseModels.ProgressInProgress, result.ItemStatus)
	assert.Equal(t, courseModels.EnrollmentActive, result.EnrollmentStatus)
	assert.False(t, result.Passed)
	assert.Equal(t, 1, result.AttemptsUsed)

	// Watch items never exhaust attempts.
	for i := 0; i < 5; i++ {
		result, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(85))
		require.NoError(t, err)
		assert.Equal(t, courseModels.ProgressInProgress, result.ItemStatus)
	}
	assert.Equal(t, 6, result.AttemptsUsed)

	assert.Equal(t, courseModels.ProgressLocked, getRecord(t, db, enrollment.ID, items[1].ID).Status)
}

func TestSubmitProgress_QuizAttemptsExhausted(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{quizItem(70, 2), watchItem(90)}
	level := seedLevel(t, db, items)
	questions := seedQuestions(t, db, items[0], 5, 10)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	// First failing attempt leaves the item retryable.
	result, err := SubmitProgress(db, enrollment.ID, items[0].ID, Submission{Answers: answers(questions, 1)})
	require.NoError(t, err)
	assert.Equal(t, courseModels.ProgressInProgress, result.ItemStatus)
	assert.Equal(t, courseModels.EnrollmentActive, result.EnrollmentStatus)
	assert.Equal(t, 20, result.Achieved)

	// Second failing attempt exhausts max_attempts=2.
	result, err = SubmitProgress(db, enrollment.ID, items[0].ID, Submission{Answers: answers(questions, 2)})
	require.NoError(t, err)
	assert.Equal(t, courseModels.ProgressFailed, result.ItemStatus)
	assert.Equal(t, courseModels.EnrollmentFailed, result.EnrollmentStatus)
	assert.Equal(t, 2, result.AttemptsUsed)

	enr := getEnrollment(t, db, enrollment.ID)
	assert.Equal(t, courseModels.EnrollmentFailed, enr.Status)
	assert.Equal(t, courseModels.FailReasonAttemptsExceeded, enr.FailReason)
	assert.NotNil(t, enr.CompletedAt)

	// The next item stayed locked and no certificate was minted.
	assert.Equal(t, courseModels.ProgressLocked, getRecord(t, db, enrollment.ID, items[1].ID).Status)
	var count int64
	db.Model(&courseModels.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.EqualValues(t, 0, count)

	// A terminal enrollment accepts no further submissions.
	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, Submission{Answers: answers(questions, 5)})
	assert.ErrorIs(t, err, ErrEnrollmentNotActive)
}

func TestSubmitProgress_QuizPassScenario(t *testing.T) {
	// passing_score=70, five 10-point questions, four correct: 80, pass,
	// next item unlocked.
	db := newTestDB(t)
	items := []*courseModels.ContentItem{quizItem(70, 3), watchItem(90)}
	level := seedLevel(t, db, items)
	questions := seedQuestions(t, db, items[0], 5, 10)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	result, err := SubmitProgress(db, enrollment.ID, items[0].ID, Submission{Answers: answers(questions, 4)})
	require.NoError(t, err)

	assert.Equal(t, 80, result.Achieved)
	assert.True(t, result.Passed)
	assert.Equal(t, courseModels.ProgressCompleted, result.ItemStatus)
	assert.Equal(t, courseModels.ProgressUnlocked, getRecord(t, db, enrollment.ID, items[1].ID).Status)
}

func TestSubmitProgress_LastItemCompletesEnrollment(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 7, level.ID)
	require.NoError(t, err)

	result, err := SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(100))
	require.NoError(t, err)

	assert.Equal(t, courseModels.EnrollmentCompleted, result.EnrollmentStatus)

	enr := getEnrollment(t, db, enrollment.ID)
	assert.Equal(t, courseModels.EnrollmentCompleted, enr.Status)
	assert.NotNil(t, enr.CompletedAt)

	var certificates []courseModels.Certificate
	require.NoError(t, db.Where("enrollment_id = ?", enrollment.ID).Find(&certificates).Error)
	require.Len(t, certificates, 1)
	assert.Equal(t, uint(7), certificates[0].UserID)
	assert.NotEmpty(t, certificates[0].Code)
}

func TestSubmitProgress_FinalExamFlagCompletesEarly(t *testing.T) {
	db := newTestDB(t)
	final := quizItem(70, 3)
	final.IsFinalExam = true
	items := []*courseModels.ContentItem{watchItem(80), final, watchItem(80)}
	level := seedLevel(t, db, items)
	questions := seedQuestions(t, db, final, 2, 10)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(100))
	require.NoError(t, err)

	result, err := SubmitProgress(db, enrollment.ID, final.ID, Submission{Answers: answers(questions, 2)})
	require.NoError(t, err)

	// Passing the final exam finishes the enrollment even though a
	// later item exists.
	assert.Equal(t, courseModels.EnrollmentCompleted, result.EnrollmentStatus)

	var count int64
	db.Model(&courseModels.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitProgress_AlreadyCompleted(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80), watchItem(80)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(100))
	require.NoError(t, err)

	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(100))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// The rejected resubmission did not count as an attempt.
	assert.Equal(t, 1, getRecord(t, db, enrollment.ID, items[0].ID).AttemptsUsed)
}

func TestSubmitProgress_ExpiredDeadline(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&courseModels.Enrollment{}).Where("id = ?", enrollment.ID).
		Update("deadline_at", time.Now().Add(-time.Hour)).Error)

	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(100))
	assert.ErrorIs(t, err, ErrEnrollmentExpired)
	assert.Equal(t, courseModels.EnrollmentExpired, getEnrollment(t, db, enrollment.ID).Status)

	// Repeated submissions keep reporting expiry without re-transitioning.
	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(100))
	assert.ErrorIs(t, err, ErrEnrollmentExpired)
	assert.Equal(t, courseModels.EnrollmentExpired, getEnrollment(t, db, enrollment.ID).Status)

	// Nothing was scored.
	assert.Equal(t, 0, getRecord(t, db, enrollment.ID, items[0].ID).AttemptsUsed)
}

func TestSubmitProgress_NotFound(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	_, err := SubmitProgress(db, 999, items[0].ID, watchSubmission(100))
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	_, err = SubmitProgress(db, enrollment.ID, 999, watchSubmission(100))
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestSubmitProgress_MalformedLeavesNoTrace(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{quizItem(70, 3)}
	level := seedLevel(t, db, items)
	questions := seedQuestions(t, db, items[0], 3, 10)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	// Answer only one of three questions.
	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, Submission{Answers: answers(questions, 3)[:1]})
	assert.ErrorIs(t, err, ErrMissingAnswer)

	record := getRecord(t, db, enrollment.ID, items[0].ID)
	assert.Equal(t, 0, record.AttemptsUsed)
	assert.Equal(t, courseModels.ProgressUnlocked, record.Status)

	var count int64
	db.Model(&courseModels.SubmissionLog{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSubmitProgress_RecordsSubmissionLog(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(90)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(50))
	require.NoError(t, err)
	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(95))
	require.NoError(t, err)

	var logs []courseModels.SubmissionLog
	require.NoError(t, db.Where("enrollment_id = ?", enrollment.ID).
		Order("attempt_number asc").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, 1, logs[0].AttemptNumber)
	assert.Equal(t, 50, logs[0].Achieved)
	assert.False(t, logs[0].Passed)
	assert.Equal(t, 2, logs[1].AttemptNumber)
	assert.Equal(t, 95, logs[1].Achieved)
	assert.True(t, logs[1].Passed)
}
