package model_test

import (
	"agrirent/internal/domains/session/model"
	userModel "agrirent/internal/domains/user/model"
	"agrirent/shared/constant"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{name: "english", lang: "en", key: "rentNow", want: "Rent Now"},
		{name: "hindi", lang: "hi", key: "welcome", want: "नमस्ते"},
		{name: "marathi", lang: "mr", key: "welcome", want: "नमस्कार"},
		{name: "gap falls back to english", lang: "hi", key: "shareExperience", want: "Share your experience"},
		{name: "unknown key is echoed", lang: "mr", key: "tractorColour", want: "tractorColour"},
		{name: "unknown language", lang: "fr", key: "login", want: "Login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Translate(tt.lang, tt.key))
		})
	}
}

func TestMessages(t *testing.T) {
	english := model.Messages("en")
	hindi := model.Messages("hi")

	assert.Len(t, hindi, len(english))
	assert.Equal(t, "लॉगआउट", hindi["logout"])
}

func TestWithSession(t *testing.T) {
	session := &model.Session{
		ID:            "s1",
		User:          userModel.User{ID: "u1", Role: constant.RoleOwner},
		BackendCookie: "ABC123",
		Language:      "mr",
	}

	ctx := model.WithSession(context.Background(), session)

	got, ok := model.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, session, got)

	assert.Equal(t, "u1", ctx.Value(constant.ContextKeyUserID))
	assert.Equal(t, constant.RoleOwner, ctx.Value(constant.ContextKeyUserRole))
	assert.Equal(t, "ABC123", ctx.Value(constant.ContextKeyBackendCookie))
	assert.Equal(t, "mr", model.LanguageFromContext(ctx, "en"))

	_, ok = model.FromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "en", model.LanguageFromContext(context.Background(), "en"))
}

func TestSession_Remaining(t *testing.T) {
	created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	session := model.Session{CreatedAt: created}

	assert.Equal(t, 2*time.Hour, session.Remaining(created.Add(10*time.Hour), 12*time.Hour))
	assert.Negative(t, session.Remaining(created.Add(13*time.Hour), 12*time.Hour))
}
