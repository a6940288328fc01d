package progression

import (
	"testing"
	"time"

	courseModels "skillcert/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_Idempotent(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	require.NoError(t, Complete(db, enrollment.ID))
	require.NoError(t, Complete(db, enrollment.ID))

	enr := getEnrollment(t, db, enrollment.ID)
	assert.Equal(t, courseModels.EnrollmentCompleted, enr.Status)
	require.NotNil(t, enr.CompletedAt)

	var count int64
	db.Model(&courseModels.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestFail_BlocksLaterComplete(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	require.NoError(t, Fail(db, enrollment.ID, courseModels.FailReasonAttemptsExceeded))

	// Terminal states never flip; a late Complete is a no-op.
	require.NoError(t, Complete(db, enrollment.ID))

	enr := getEnrollment(t, db, enrollment.ID)
	assert.Equal(t, courseModels.EnrollmentFailed, enr.Status)
	assert.Equal(t, courseModels.FailReasonAttemptsExceeded, enr.FailReason)

	var count int64
	db.Model(&courseModels.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestExpire_OnlyActive(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	require.NoError(t, Complete(db, enrollment.ID))
	require.NoError(t, Expire(db, enrollment.ID))

	assert.Equal(t, courseModels.EnrollmentCompleted, getEnrollment(t, db, enrollment.ID).Status)
}

func TestExpireOverdue(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	overdue, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&courseModels.Enrollment{}).Where("id = ?", overdue.ID).
		Update("deadline_at", time.Now().Add(-48*time.Hour)).Error)

	current, err := CreateEnrollment(db, 2, level.ID)
	require.NoError(t, err)

	expired, err := ExpireOverdue(db)
	require.NoError(t, err)

	// The returned set is exactly what the sweep transitioned, so the
	// caller can notify those workers and no others.
	require.Len(t, expired, 1)
	assert.Equal(t, overdue.ID, expired[0].ID)
	assert.Equal(t, uint(1), expired[0].UserID)

	assert.Equal(t, courseModels.EnrollmentExpired, getEnrollment(t, db, overdue.ID).Status)
	assert.Equal(t, courseModels.EnrollmentActive, getEnrollment(t, db, current.ID).Status)

	// Second sweep finds nothing left to expire.
	expired, err = ExpireOverdue(db)
	require.NoError(t, err)
	assert.Empty(t, expired)
}
