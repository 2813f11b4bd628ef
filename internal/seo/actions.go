package seo

import "strings"

const timestampTemplate = `00:00 - Introduction
01:30 - Main topic begins
05:00 - Key takeaway #1
08:00 - Key takeaway #2
12:00 - Recap and next steps`

// lengthenedTitle pads a too-short title toward the 50-60 character sweet
// spot with a deterministic qualifier suffix.
func lengthenedTitle(title string) string {
	return title + " | Complete Step-by-Step Guide (2026)"
}

// truncateTitle cuts a too-long title down to 60 characters.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= titleTruncateLength {
		return title
	}
	return strings.TrimSpace(string(runes[:titleTruncateLength]))
}

// descriptionTemplate builds a full replacement description with the
// timestamp block, link placeholders, and generated hashtags.
func descriptionTemplate(title string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\nIn this video you'll learn everything you need to know, step by step.\n\n")
	b.WriteString("TIMESTAMPS:\n")
	b.WriteString(timestampTemplate)
	b.WriteString("\n\nLINKS & RESOURCES:\n")
	b.WriteString("Website: https://yourwebsite.com\n")
	b.WriteString("Free resource: https://yourwebsite.com/resource\n")
	b.WriteString("\nFOLLOW:\n")
	b.WriteString("Twitter: https://twitter.com/yourhandle\n")
	b.WriteString("Instagram: https://instagram.com/yourhandle\n\n")
	b.WriteString(strings.Join(SuggestHashtags(title), " "))
	return b.String()
}
