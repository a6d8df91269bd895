package askai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawmate/pkg/domain"
	derrors "lawmate/pkg/domain-errors"
)

func TestAskForwardsQuestionAndLang(t *testing.T) {
	var received Question
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/askai", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(Answer{Answer: "الجواب القانوني"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	answer, err := client.Ask(context.Background(), Question{Question: "ما هي مدة الإيجار؟"})

	require.NoError(t, err)
	assert.Equal(t, "الجواب القانوني", answer.Text())
	assert.Equal(t, domain.LanguageArabic, received.Lang) // defaulted
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	client := NewClient("http://unused")

	_, err := client.Ask(context.Background(), Question{})

	require.Error(t, err)
	assert.True(t, derrors.Is(err, derrors.CodeInvalidInput))
}

func TestAskUpstreamFailuresReadAsUnavailable(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewClient(server.URL).Ask(context.Background(), Question{Question: "q"})
		assert.True(t, derrors.Is(err, derrors.CodeUnavailable))
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := NewClient("http://127.0.0.1:1").Ask(context.Background(), Question{Question: "q"})
		assert.True(t, derrors.Is(err, derrors.CodeUnavailable))
	})
}

func TestAnswerTextFallsBackToShortAnswer(t *testing.T) {
	answer := &Answer{ShortAnswer: "باختصار"}
	assert.Equal(t, "باختصار", answer.Text())
}
