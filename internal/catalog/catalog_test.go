package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if c.Len() != 12 {
		t.Errorf("Len() = %d, want 12", c.Len())
	}
	for _, topic := range c.Topics() {
		if len(topic.Questions) != 5 {
			t.Errorf("topic %s has %d questions, want 5", topic.ID, len(topic.Questions))
		}
	}
}

func TestTopicLookup(t *testing.T) {
	c := Default()

	topic, ok := c.Topic("t4")
	if !ok {
		t.Fatal("Topic(t4) not found")
	}
	if topic.TitleEn != "Connection & Intimacy" {
		t.Errorf("TitleEn = %q", topic.TitleEn)
	}
	if topic.Questions[0].ID != 16 {
		t.Errorf("first question id = %d, want 16", topic.Questions[0].ID)
	}

	if _, ok := c.Topic("t99"); ok {
		t.Error("Topic(t99) should not be found")
	}
	if qs := c.Questions("missing"); qs != nil {
		t.Errorf("Questions(missing) = %v, want nil", qs)
	}
}

func TestTopicByTitle(t *testing.T) {
	c := Default()

	topic, ok := c.TopicByTitle("价值与信念")
	if !ok || topic.ID != "t10" {
		t.Fatalf("TopicByTitle = %+v, %v; want t10", topic, ok)
	}
	if _, ok := c.TopicByTitle(""); ok {
		t.Error("empty title should not match")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	topic, _ := c.Topic("t1")
	topic.Questions[0].Text = "changed"
	topic.Questions = topic.Questions[:1]

	again, _ := c.Topic("t1")
	if again.Questions[0].Text == "changed" {
		t.Error("mutating a returned topic changed the catalog")
	}
	if len(again.Questions) != 5 {
		t.Errorf("len = %d, want 5", len(again.Questions))
	}

	all := c.Topics()
	all[0].ID = "x"
	if first, _ := c.At(0); first.ID != "t1" {
		t.Errorf("At(0).ID = %q, want t1", first.ID)
	}
}

func TestAtBounds(t *testing.T) {
	c := Default()
	if _, ok := c.At(-1); ok {
		t.Error("At(-1) should fail")
	}
	if _, ok := c.At(c.Len()); ok {
		t.Error("At(Len()) should fail")
	}
}

func TestValidateReportsProblems(t *testing.T) {
	c := New([]Topic{
		{ID: "a", Questions: []Question{{ID: 1, Text: "one"}}},
		{ID: "a", Questions: []Question{{ID: 1, Text: " "}}},
		{ID: ""},
	})

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	msg := err.Error()
	for _, want := range []string{"duplicate id", "used by a and a", "empty text", "empty id"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestHints(t *testing.T) {
	q := Question{ID: 1, Text: "x"}
	if got := q.HintOr(DefaultHint); got != DefaultHint {
		t.Errorf("HintOr = %q, want fallback", got)
	}
	q.Hint = "own"
	if got := q.HintOr(DefaultHint); got != "own" {
		t.Errorf("HintOr = %q, want own", got)
	}
}
