package progression

import (
	"testing"

	courseModels "skillcert/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTree(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(90), quizItem(70, 3), watchItem(90)}
	level := seedLevel(t, db, items)
	seedQuestions(t, db, items[1], 2, 10)

	enrollment, err := CreateEnrollment(db, 1, level.ID)
	require.NoError(t, err)

	_, err = SubmitProgress(db, enrollment.ID, items[0].ID, watchSubmission(95))
	require.NoError(t, err)

	enr, tree, err := ContentTree(db, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, enr.ID)
	require.Len(t, tree, 3)

	assert.Equal(t, courseModels.ProgressCompleted, tree[0].ProgressStatus)
	assert.Equal(t, 1, tree[0].AttemptsUsed)
	require.NotNil(t, tree[0].LastScore)
	assert.Equal(t, 95, *tree[0].LastScore)

	assert.Equal(t, courseModels.ProgressUnlocked, tree[1].ProgressStatus)
	assert.Equal(t, courseModels.ProgressLocked, tree[2].ProgressStatus)

	// Items come back in sequence order.
	assert.Equal(t, 1, tree[0].Position)
	assert.Equal(t, 2, tree[1].Position)
	assert.Equal(t, 3, tree[2].Position)

	// The quiz carries its questions, but never the answer key.
	require.Len(t, tree[1].Questions, 2)
	for _, q := range tree[1].Questions {
		require.Len(t, q.Options, 2)
		for _, opt := range q.Options {
			assert.False(t, opt.IsCorrect)
		}
	}

	// Watch items carry no questions.
	assert.Empty(t, tree[0].Questions)
}

func TestContentTree_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, _, err := ContentTree(db, 42)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}
