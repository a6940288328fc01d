package progression

import (
	"testing"

	courseModels "skillcert/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCertificate_AtMostOnce(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 3, level.ID)
	require.NoError(t, err)

	first, err := IssueCertificate(db, *enrollment)
	require.NoError(t, err)
	second, err := IssueCertificate(db, *enrollment)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Code, second.Code)

	var count int64
	db.Model(&courseModels.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCertificateByEnrollment(t *testing.T) {
	db := newTestDB(t)
	items := []*courseModels.ContentItem{watchItem(80)}
	level := seedLevel(t, db, items)

	enrollment, err := CreateEnrollment(db, 3, level.ID)
	require.NoError(t, err)

	_, err = CertificateByEnrollment(db, enrollment.ID)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	issued, err := IssueCertificate(db, *enrollment)
	require.NoError(t, err)

	found, err := CertificateByEnrollment(db, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, issued.Code, found.Code)
}

func TestCertificatesByUser(t *testing.T) {
	db := newTestDB(t)
	levelA := seedLevel(t, db, []*courseModels.ContentItem{watchItem(80)})
	levelB := seedLevel(t, db, []*courseModels.ContentItem{watchItem(80)})

	for _, levelID := range []uint{levelA.ID, levelB.ID} {
		enrollment, err := CreateEnrollment(db, 5, levelID)
		require.NoError(t, err)
		_, err = IssueCertificate(db, *enrollment)
		require.NoError(t, err)
	}

	certificates, err := CertificatesByUser(db, 5)
	require.NoError(t, err)
	assert.Len(t, certificates, 2)

	others, err := CertificatesByUser(db, 6)
	require.NoError(t, err)
	assert.Empty(t, others)
}
