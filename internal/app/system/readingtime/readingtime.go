// Package readingtime estimates how long rich text takes to read.
package readingtime

import (
	"fmt"
	"strings"

	"github.com/dalemusser/folio/internal/domain/models"
)

// WordsPerMinute is the average adult silent reading speed.
const WordsPerMinute = 238

// Estimate is the reading time for a piece of content.
type Estimate struct {
	Minutes int    `json:"minutes"`
	Words   int    `json:"words"`
	Text    string `json:"text"`
}

// Of walks rt and counts its words. Content with a root always reads for at
// least one minute; missing content reads for zero.
func Of(rt models.RichText) Estimate {
	if rt.Root == nil {
		return Estimate{Text: "0 min read"}
	}

	var b strings.Builder
	collect(&b, *rt.Root)
	words := len(strings.Fields(b.String()))

	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return Estimate{
		Minutes: minutes,
		Words:   words,
		Text:    fmt.Sprintf("%d min read", minutes),
	}
}

func collect(b *strings.Builder, n models.RichTextNode) {
	if n.Text != "" {
		b.WriteString(n.Text)
		b.WriteByte(' ')
	}
	for _, c := range n.Children {
		collect(b, c)
	}
}
