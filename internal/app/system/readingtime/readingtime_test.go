package readingtime_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/folio/internal/app/system/readingtime"
	"github.com/dalemusser/folio/internal/domain/models"
)

func paragraph(text string) models.RichTextNode {
	return models.RichTextNode{
		Type:     "paragraph",
		Children: []models.RichTextNode{{Type: "text", Text: text}},
	}
}

func TestOf_Empty(t *testing.T) {
	got := readingtime.Of(models.RichText{})
	if got.Minutes != 0 || got.Words != 0 || got.Text != "0 min read" {
		t.Errorf("unexpected estimate for empty content: %+v", got)
	}
}

func TestOf_ShortContentIsOneMinute(t *testing.T) {
	rt := models.RichText{Root: &models.RichTextNode{
		Type:     "root",
		Children: []models.RichTextNode{paragraph("Hello"), paragraph("spatial   computing world")},
	}}

	got := readingtime.Of(rt)

	if got.Words != 4 {
		t.Errorf("words: got %d, want 4", got.Words)
	}
	if got.Minutes != 1 || got.Text != "1 min read" {
		t.Errorf("unexpected estimate: %+v", got)
	}
}

func TestOf_RoundsUp(t *testing.T) {
	text := strings.Repeat("word ", readingtime.WordsPerMinute+1)
	rt := models.RichText{Root: &models.RichTextNode{Type: "root", Children: []models.RichTextNode{paragraph(text)}}}

	got := readingtime.Of(rt)

	if got.Minutes != 2 {
		t.Errorf("minutes: got %d, want 2", got.Minutes)
	}
	if got.Text != "2 min read" {
		t.Errorf("text: got %q", got.Text)
	}
}

func TestOf_RootWithoutText(t *testing.T) {
	got := readingtime.Of(models.RichText{Root: &models.RichTextNode{Type: "root"}})
	if got.Minutes != 1 || got.Words != 0 {
		t.Errorf("unexpected estimate: %+v", got)
	}
}
