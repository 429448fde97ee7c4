package database

import (
	"context"
	"testing"

	"github.com/example/ellinika/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsRepositoryGetSkillCounts(t *testing.T) {
	db := newTestDB(t)
	skills := NewSkillRepository(db)
	stats := NewStatisticsRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "u1")

	a := createTestItem(t, db, "ένα", 1)
	b := createTestItem(t, db, "δύο", 1)
	c := createTestItem(t, db, "τρία", 1)

	require.NoError(t, skills.Upsert(ctx, skillRecord(user.ID, a.ID, models.SkillRecognition, 21, testNow.AddDate(0, 0, 21))))
	require.NoError(t, skills.Upsert(ctx, skillRecord(user.ID, b.ID, models.SkillRecognition, 6, testNow.AddDate(0, 0, -1))))
	require.NoError(t, skills.Upsert(ctx, skillRecord(user.ID, c.ID, models.SkillProduction, 30, testNow.AddDate(0, 0, -1))))

	counts, err := stats.GetSkillCounts(ctx, user.ID, models.SkillRecognition, 21, testNow)
	require.NoError(t, err)
	assert.Equal(t, &SkillCounts{Learned: 2, Mastered: 1, Due: 1}, counts)

	counts, err = stats.GetSkillCounts(ctx, user.ID, models.SkillProduction, 21, testNow)
	require.NoError(t, err)
	assert.Equal(t, &SkillCounts{Learned: 1, Mastered: 1, Due: 1}, counts)
}

func TestStatisticsRepositoryDueCountsByUser(t *testing.T) {
	db := newTestDB(t)
	skills := NewSkillRepository(db)
	ctx := context.Background()
	first := createTestUser(t, db, "u1")
	second := createTestUser(t, db, "u2")
	createTestUser(t, db, "idle")

	a := createTestItem(t, db, "ένα", 1)
	b := createTestItem(t, db, "δύο", 1)
	require.NoError(t, skills.Upsert(ctx, skillRecord(first.ID, a.ID, models.SkillRecognition, 1, testNow)))
	require.NoError(t, skills.Upsert(ctx, skillRecord(first.ID, b.ID, models.SkillProduction, 1, testNow.AddDate(0, 0, -1))))
	require.NoError(t, skills.Upsert(ctx, skillRecord(second.ID, a.ID, models.SkillRecognition, 1, testNow.AddDate(0, 0, 1))))

	counts, err := NewStatisticsRepository(db).DueCountsByUser(ctx, testNow)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, first.ID, counts[0].UserID)
	assert.Equal(t, "u1", counts[0].Code)
	assert.Equal(t, 2, counts[0].DueCount)
}
