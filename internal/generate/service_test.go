package generate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawmate/internal/template"
	derrors "lawmate/pkg/domain-errors"
)

func newTestService() *Service {
	clock := func() time.Time { return time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC) }
	return NewService(template.NewRegistry(), template.NewRenderer(template.WithClock(clock)), nil)
}

func TestRenderKnownTemplate(t *testing.T) {
	svc := newTestService()

	text, err := svc.Render(context.Background(), "ikrar", map[string]string{
		"partyName": "أحمد خليل",
		"idNumber":  "123456",
	})
	require.NoError(t, err)

	assert.Contains(t, text, "أحمد خليل")
	assert.NotContains(t, text, "{{partyName}}")
	assert.Contains(t, text, "{{statementContent}}") // missing fields stay visible
	assert.True(t, strings.HasSuffix(text, template.Watermark))
}

func TestRenderUnknownTemplateFailsHard(t *testing.T) {
	svc := newTestService()

	_, err := svc.Render(context.Background(), "divorce", nil)

	require.Error(t, err)
	assert.True(t, derrors.Is(err, derrors.CodeNotFound))
}

func TestTemplatesAndRequiredFields(t *testing.T) {
	svc := newTestService()

	assert.Len(t, svc.Templates(), 5)
	assert.NotEmpty(t, svc.RequiredFields("marriage"))
	assert.Empty(t, svc.RequiredFields("divorce"))
}
