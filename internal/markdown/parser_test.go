package markdown

import (
	"strings"
	"testing"
)

func TestParse_GFM(t *testing.T) {
	p := NewParser()

	html, err := p.Parse([]byte("A ~~strike~~ and a [link](https://example.com)."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<del>strike</del>") {
		t.Errorf("strikethrough not rendered: %q", out)
	}
	if !strings.Contains(out, `href="https://example.com"`) {
		t.Errorf("link not rendered: %q", out)
	}
}

func TestParseWithFrontmatter(t *testing.T) {
	p := NewParser()

	src := []byte(`---
title: Hello
tags:
  - go
---

Body text.
`)
	html, meta, err := p.ParseWithFrontmatter(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta["title"] != "Hello" {
		t.Errorf("unexpected title %v", meta["title"])
	}
	tags, ok := meta["tags"].([]any)
	if !ok || len(tags) != 1 || tags[0] != "go" {
		t.Errorf("unexpected tags %v", meta["tags"])
	}
	if strings.Contains(string(html), "title: Hello") {
		t.Error("frontmatter leaked into the rendered HTML")
	}
	if !strings.Contains(string(html), "Body text.") {
		t.Errorf("body not rendered: %q", html)
	}
}

func TestParseWithFrontmatter_NoFrontmatter(t *testing.T) {
	p := NewParser()

	html, meta, err := p.ParseWithFrontmatter([]byte("Just a paragraph."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meta) != 0 {
		t.Errorf("expected empty metadata, got %v", meta)
	}
	if !strings.Contains(string(html), "Just a paragraph.") {
		t.Errorf("body not rendered: %q", html)
	}
}
