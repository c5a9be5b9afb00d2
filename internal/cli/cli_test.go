package cli

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/leafecho/leafecho/internal/catalog"
	"github.com/leafecho/leafecho/internal/config"
	"github.com/leafecho/leafecho/internal/log"
	"github.com/leafecho/leafecho/internal/session"
)

func TestPrintTopicsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printTopics(&buf, catalog.Default(), true); err != nil {
		t.Fatalf("printTopics failed: %v", err)
	}

	var topics []catalog.Topic
	if err := json.Unmarshal(buf.Bytes(), &topics); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(topics) != catalog.Default().Len() {
		t.Errorf("got %d topics, want %d", len(topics), catalog.Default().Len())
	}
}

func TestPrintTopicsText(t *testing.T) {
	var buf bytes.Buffer
	if err := printTopics(&buf, catalog.Default(), false); err != nil {
		t.Fatalf("printTopics failed: %v", err)
	}
	first := catalog.Default().Topics()[0]
	if !strings.Contains(buf.String(), first.TitleCn) {
		t.Errorf("output missing %q", first.TitleCn)
	}
}

func TestDrawValidatesFlags(t *testing.T) {
	m := session.NewMachineWithSource(catalog.Default(), rand.New(rand.NewPCG(1, 2)))
	first := catalog.Default().Topics()[0]

	tests := []struct {
		name    string
		mode    session.Mode
		topic   string
		wantLen int
		wantErr bool
	}{
		{"quick", session.ModeQuick, "", session.QuickDrawSize, false},
		{"deep", session.ModeDeep, first.ID, len(first.Questions), false},
		{"deep without topic", session.ModeDeep, "", 0, true},
		{"deep unknown topic", session.ModeDeep, "nope", 0, true},
		{"bad mode", session.Mode("slow"), "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := draw(m, tt.mode, tt.topic)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("draw failed: %v", err)
			}
			if len(items) != tt.wantLen {
				t.Errorf("drew %d, want %d", len(items), tt.wantLen)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := initConfig(dir, false)
	if err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	if path != config.Path(dir) {
		t.Errorf("path = %q", path)
	}
	if _, err := config.ReadConfig(dir); err != nil {
		t.Errorf("written config unreadable: %v", err)
	}

	if _, err := initConfig(dir, false); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := initConfig(dir, true); err != nil {
		t.Errorf("init with --force failed: %v", err)
	}
}

func TestPrintEvents(t *testing.T) {
	var buf bytes.Buffer
	printEvents(&buf, []log.LogEvent{
		{Time: time.Now(), Event: log.EventTransition, Run: "0123456789", From: "toc", View: "shake"},
		{Time: time.Now(), Event: log.EventDrawComplete, Mode: "deep", Topic: "03", Count: 5},
	})

	out := buf.String()
	for _, want := range []string{"01234567 ", "toc→shake", "mode=deep", "topic=03", "count=5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
