package guide

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGuidePlain(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Guide{Plain: true, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if buf.String() != Markdown {
		t.Fatal("plain guide should print the markdown source")
	}
}

func TestGuideRendered(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Guide{Width: 60, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "planner") {
		t.Fatalf("missing title in rendered guide:\n%s", buf.String())
	}
	if buf.String() == Markdown {
		t.Fatal("guide was not rendered")
	}
}
