package practice

import (
	"context"
	"testing"
	"time"

	"github.com/example/ellinika/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "maria")
	item := env.item(t, "γάτα", 1)
	category := "animals"

	session, err := env.svc.StartSession(ctx, StartSessionRequest{UserID: user.ID, SessionType: "vocabulary", Category: &category})
	require.NoError(t, err)
	assert.True(t, session.IsOpen())
	require.NotNil(t, session.Category)
	assert.Equal(t, "animals", *session.Category)

	req := attemptFor(user.ID, item.ID, true, 2000)
	req.SessionID = &session.ID
	_, err = env.svc.RecordAttempt(ctx, req)
	require.NoError(t, err)

	env.clock.Advance(5 * time.Minute)
	closed, err := env.svc.CompleteSession(ctx, CompleteSessionRequest{SessionID: session.ID, TotalQuestions: 1, CorrectAnswers: 1})
	require.NoError(t, err)
	assert.False(t, closed.IsOpen())
	assert.True(t, env.clock.Now().Equal(*closed.CompletedAt))

	detail, err := env.svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Session.TotalQuestions)
	require.Len(t, detail.Attempts, 1)

	// Closed sessions are immutable
	_, err = env.svc.CompleteSession(ctx, CompleteSessionRequest{SessionID: session.ID, TotalQuestions: 2, CorrectAnswers: 2})
	assert.ErrorIs(t, err, ErrSessionClosed)

	_, err = env.svc.RecordAttempt(ctx, req)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, 1, env.count(t, "practice_attempts"))
}

func TestSessionErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.user(t, "maria")
	other := env.user(t, "nikos")

	_, err := env.svc.StartSession(ctx, StartSessionRequest{UserID: 9999, SessionType: "vocabulary"})
	assert.ErrorIs(t, err, database.ErrUserNotFound)

	_, err = env.svc.StartSession(ctx, StartSessionRequest{UserID: owner.ID})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.CompleteSession(ctx, CompleteSessionRequest{SessionID: "missing", TotalQuestions: 1})
	assert.ErrorIs(t, err, database.ErrSessionNotFound)

	session, err := env.svc.StartSession(ctx, StartSessionRequest{UserID: owner.ID, SessionType: "conjugation"})
	require.NoError(t, err)

	_, err = env.svc.CompleteSession(ctx, CompleteSessionRequest{SessionID: session.ID, TotalQuestions: 3, CorrectAnswers: 4})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "correct_answers")

	// Another user's session is not visible to attempts
	req := RecordAttemptRequest{
		UserID:        other.ID,
		SessionID:     &session.ID,
		QuestionText:  "q",
		CorrectAnswer: "a",
		SkillType:     "recognition",
	}
	_, err = env.svc.RecordAttempt(ctx, req)
	assert.ErrorIs(t, err, database.ErrSessionNotFound)
	assert.Equal(t, 0, env.count(t, "practice_attempts"))
}

func TestListSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "maria")

	var ids []string
	for i := 0; i < 3; i++ {
		s, err := env.svc.StartSession(ctx, StartSessionRequest{UserID: user.ID, SessionType: "vocabulary"})
		require.NoError(t, err)
		ids = append(ids, s.ID)
		env.clock.Advance(time.Hour)
	}

	sessions, err := env.svc.ListSessions(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, ids[2], sessions[0].ID)
	assert.Equal(t, ids[1], sessions[1].ID)

	_, err = env.svc.ListSessions(ctx, 0, 10)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, normalizeLimit(0))
	assert.Equal(t, DefaultLimit, normalizeLimit(-5))
	assert.Equal(t, 7, normalizeLimit(7))
	assert.Equal(t, MaxLimit, normalizeLimit(1000))
}
