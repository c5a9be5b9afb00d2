package summarize

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/leafecho/leafecho/internal/config"
	"github.com/leafecho/leafecho/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

var testPairs = []Pair{
	{Question: "今年最“违背直觉却正确”的选择是什么？", Answer: "辞职"},
	{Question: "哪一刻你感到“我被理解了”？", Answer: session.SkipSentinel},
}

const goodReply = `{"keywords": ["勇气", "转折", "自由"], "summary": "你在不确定中选择了自己。"}`

func TestParseResponse(t *testing.T) {
	r, err := ParseResponse("```json\n" + goodReply + "\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"勇气", "转折", "自由"}, r.Keywords)
	assert.Equal(t, "你在不确定中选择了自己。", r.Summary)
}

func TestParseResponseMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"no object":      "sorry, I cannot help",
		"bad json":       `{"keywords": [}`,
		"two keywords":   `{"keywords": ["a", "b"], "summary": "s"}`,
		"six keywords":   `{"keywords": ["a","b","c","d","e","f"], "summary": "s"}`,
		"blank keywords": `{"keywords": ["a", " ", "", "b"], "summary": "s"}`,
		"no summary":     `{"keywords": ["a","b","c"], "summary": "  "}`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResponse(text)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	_, err := BuildPrompt(nil)
	assert.ErrorIs(t, err, ErrNoAnswers)

	prompt, err := BuildPrompt(testPairs)
	require.NoError(t, err)
	assert.Contains(t, prompt, "1. Q: 今年最")
	assert.Contains(t, prompt, "2. Q: 哪一刻")
	assert.Contains(t, prompt, "A: 辞职")
}

func TestPairsFrom(t *testing.T) {
	answers := []session.UserAnswer{
		{QuestionText: "q1", Answer: "a1"},
		{QuestionText: "q2", Answer: session.SkipSentinel},
	}
	pairs := PairsFrom(answers)
	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{Question: "q2", Answer: session.SkipSentinel}, pairs[1])
}

func TestGeminiUsesGenerator(t *testing.T) {
	var gotModel, gotPrompt string
	g := &Gemini{
		model: "test-model",
		generate: func(_ context.Context, model, system, prompt string) (string, error) {
			gotModel, gotPrompt = model, prompt
			return goodReply, nil
		},
	}

	r, err := g.Summarize(context.Background(), testPairs)
	require.NoError(t, err)
	assert.Len(t, r.Keywords, 3)
	assert.Equal(t, "test-model", gotModel)
	assert.Contains(t, gotPrompt, "辞职")
	assert.Equal(t, "gemini:test-model", g.Name())
}

func TestGeminiGeneratorError(t *testing.T) {
	boom := errors.New("quota")
	g := &Gemini{generate: func(context.Context, string, string, string) (string, error) { return "", boom }}

	_, err := g.Summarize(context.Background(), testPairs)
	assert.ErrorIs(t, err, boom)
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "")
	assert.Error(t, err)
}

func TestDeepSeekSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, DefaultDeepSeekModel, req.Model)
		if assert.Len(t, req.Messages, 2) {
			assert.Contains(t, req.Messages[1].Content, "辞职")
		}

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: goodReply}})
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	d, err := NewDeepSeek("k", "", srv.URL, time.Second)
	require.NoError(t, err)

	r, err := d.Summarize(context.Background(), testPairs)
	require.NoError(t, err)
	assert.Equal(t, "你在不确定中选择了自己。", r.Summary)
	srv.Client().CloseIdleConnections()
	d.client.CloseIdleConnections()
}

func TestDeepSeekFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, "down", nil},
		{"no choices", http.StatusOK, `{"choices": []}`, ErrMalformed},
		{"not json", http.StatusOK, "<html>", ErrMalformed},
		{"bad content", http.StatusOK, `{"choices":[{"message":{"content":"hello"}}]}`, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			d, err := NewDeepSeek("k", "m", srv.URL, time.Second)
			require.NoError(t, err)
			defer d.client.CloseIdleConnections()

			_, err = d.Summarize(context.Background(), testPairs)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.True(t, strings.Contains(err.Error(), "status 500"), err.Error())
			}
		})
	}
}

func TestNewSelectsProvider(t *testing.T) {
	s, err := New(context.Background(), config.SummarizerConfig{Provider: "none"})
	require.NoError(t, err)
	assert.False(t, Enabled(s))

	_, err = s.Summarize(context.Background(), testPairs)
	assert.ErrorIs(t, err, ErrDisabled)

	t.Setenv("LEAFECHO_DS_KEY", "k")
	s, err = New(context.Background(), config.SummarizerConfig{Provider: "deepseek", APIKeyEnv: "LEAFECHO_DS_KEY", TimeoutSec: 5})
	require.NoError(t, err)
	assert.True(t, Enabled(s))
	assert.Equal(t, "deepseek:deepseek-chat", s.Name())

	_, err = New(context.Background(), config.SummarizerConfig{Provider: "oracle"})
	assert.Error(t, err)
}
