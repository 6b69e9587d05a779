package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestForContextIncludesCorrelationAndSession(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	original := L
	L = &logger{entry: logrus.NewEntry(base)}
	defer func() { L = original }()

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithSession(ctx, "sessao-1")

	ForContext(ctx).WithField("user_agent", "curl").WithField("cache_hit", true).Info("ok")

	out := buf.String()
	assert.Contains(t, out, correlationID)
	assert.Contains(t, out, `"session":"sessao-1"`)
	assert.Contains(t, out, `"cache_hit":true`)
	assert.NotContains(t, out, "user_agent")
}

func TestWithSessionIgnoresEmptyID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithSession(ctx, ""))
	assert.Empty(t, GetCorrelationID(ctx))
}

func TestProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	l := &logger{entry: logrus.NewEntry(base)}
	l.WithFields(Fields{"user_agent": "curl"}).Info("ok")

	assert.Contains(t, buf.String(), "user_agent")
}
