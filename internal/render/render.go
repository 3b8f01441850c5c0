// Package render formats resolved metadata and transcript segments into the
// output Markdown document. It is pure formatting; every decision about what
// to render was made upstream.
package render

import (
	"fmt"
	"strings"

	"biliscribe/internal/transcript"
)

// Metadata is the immutable video description rendered into the document head.
type Metadata struct {
	Title     string
	Owner     string
	BVID      string
	SourceURL string
}

// Document renders the transcript document:
// a title heading, a metadata list, and one bullet per segment.
func Document(meta Metadata, segments []transcript.Segment, source transcript.Source) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", meta.Title)
	fmt.Fprintf(&b, "- 来源: %s\n", meta.SourceURL)
	fmt.Fprintf(&b, "- 作者: %s\n", meta.Owner)
	fmt.Fprintf(&b, "- BV号: %s\n", meta.BVID)
	fmt.Fprintf(&b, "- 字幕来源: %s\n\n", source.Tag())
	b.WriteString("## 正文\n")
	for _, seg := range segments {
		fmt.Fprintf(&b, "- `%s`–`%s` %s\n", FormatTimestamp(seg.Start), FormatTimestamp(seg.End), seg.Text)
	}
	return b.String()
}

// FormatTimestamp renders an offset in seconds as zero-padded HH:MM:SS,
// truncating fractional seconds. Offsets of a day or more use the extended
// form "Nd HH:MM:SS".
func FormatTimestamp(seconds float64) string {
	total := int64(seconds)
	if total < 0 {
		total = 0
	}
	days := total / 86400
	total %= 86400
	hours := total / 3600
	minutes := total % 3600 / 60
	secs := total % 60
	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
