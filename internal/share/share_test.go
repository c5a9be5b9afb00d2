package share

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafecho/leafecho/internal/session"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func sample() session.UserAnswer {
	return session.UserAnswer{
		QuestionID:   12,
		QuestionText: "哪一刻你突然意识到自己已经悄悄改变？",
		TopicTitle:   "时间与记忆",
		Answer:       "在地铁上",
	}
}

func TestFormat(t *testing.T) {
	want := "【时间与记忆】\nQ: 哪一刻你突然意识到自己已经悄悄改变？\nA: 在地铁上\n\n#2024YearEndReflection"
	assert.Equal(t, want, Format(sample(), ""))
	assert.True(t, strings.HasSuffix(Format(sample(), "#mine"), "\n\n#mine"))
}

func TestFormatIsIdempotent(t *testing.T) {
	answers := []session.UserAnswer{sample(), {TopicTitle: "x", QuestionText: "y", Answer: session.SkipSentinel}}

	first := make([]string, len(answers))
	for i, a := range answers {
		first[i] = Format(a, DefaultTag)
	}
	for i, a := range answers {
		assert.Equal(t, first[i], Format(a, DefaultTag))
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", PreviewWidth))
	assert.Equal(t, "", Preview("anything", 0))

	long := strings.Repeat("字", 100)
	got := Preview(long, 20)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), 20)
}

func TestCopier(t *testing.T) {
	clip := &fakeClipboard{}
	c := NewCopier(clip, "#tag")

	text, err := c.Copy(sample())
	require.NoError(t, err)
	assert.Equal(t, text, clip.text)
	assert.Contains(t, text, "#tag")
}

func TestCopierError(t *testing.T) {
	boom := errors.New("no display")
	c := NewCopier(&fakeClipboard{err: boom}, "")

	_, err := c.Copy(sample())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
