// Package seo implements the video scoring engine: a deterministic rule
// evaluator over title, description, tag, and engagement fields. Analyze is a
// pure function with no I/O; every rule is evaluated on every call and the
// final score is 100 minus the sum of fixed per-rule penalties, clamped to
// [0,100].
package seo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shadowmoulic/youtube-dashboard/internal/model"
)

// Per-rule score penalties. Rules never add points; the score only decays
// from its 100 starting point.
const (
	penaltyTitleShort     = 12
	penaltyTitleLong      = 8
	penaltyNoPowerWord    = 5
	penaltyNoNumber       = 4
	penaltyBadCase        = 5
	penaltyNoBrackets     = 3
	penaltyDescCritical   = 18
	penaltyDescShort      = 10
	penaltyNoTimestamps   = 8
	penaltyNoLinks        = 6
	penaltyFewHashtags    = 7
	penaltyManyHashtags   = 5
	penaltyFewTags        = 12
	penaltyManyTags       = 5
	penaltyLowLikeRatio   = 8
	penaltyLowCommentRate = 5
)

const (
	titleMinLength       = 30
	titleMaxLength       = 70
	titleTruncateLength  = 60
	descCriticalLength   = 150
	descShortLength      = 250
	minHashtags          = 3
	maxHashtags          = 15
	minTags              = 8
	maxTags              = 20
	goodLikeRatio        = 1.5
	excellentLikeRatio   = 3.0
	minCommentRatio      = 0.1
	commentRatioMinViews = 100
)

// powerWords is the fixed list of click-through boosters checked as
// case-insensitive substrings of the title.
var powerWords = []string{
	"best", "top", "ultimate", "complete", "guide",
	"how to", "tutorial", "review", "vs",
}

var (
	timestampRe = regexp.MustCompile(`\d{1,2}:\d{2}`)
	hashtagRe   = regexp.MustCompile(`#\w+`)
	bracketsRe  = regexp.MustCompile(`[\[(].*[\])]`)
)

// Count parses a wire-format statistics count, defaulting to 0 for absent,
// unparsable, or negative values.
func Count(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Analyze scores a single video against the full SEO rule set.
func Analyze(v model.VideoRecord) model.ScoreResult {
	a := &analysis{
		result: model.ScoreResult{
			Score:           100,
			Issues:          []string{},
			Strengths:       []string{},
			SpecificActions: []model.Action{},
		},
	}

	title := v.Snippet.Title
	a.checkTitleLength(title)
	a.checkPowerWords(title)
	a.checkNumbers(title)
	a.checkTitleCase(title)
	a.checkBrackets(title)

	desc := v.Snippet.Description
	a.checkDescriptionLength(title, desc)
	a.checkTimestamps(desc)
	a.checkLinks(desc)
	a.checkHashtags(title, desc)

	a.checkTags(title, v.Snippet.Tags)
	a.checkEngagement(v.Statistics)

	if v.Snippet.Thumbnails.Maxres != nil {
		a.strength("High-resolution thumbnail available.")
	}

	if a.result.Score < 0 {
		a.result.Score = 0
	} else if a.result.Score > 100 {
		a.result.Score = 100
	}
	return a.result
}

type analysis struct {
	result model.ScoreResult
}

func (a *analysis) fail(penalty int, issue string) {
	a.result.Score -= penalty
	a.result.Issues = append(a.result.Issues, issue)
}

func (a *analysis) strength(s string) {
	a.result.Strengths = append(a.result.Strengths, s)
}

func (a *analysis) act(action model.Action) {
	a.result.SpecificActions = append(a.result.SpecificActions, action)
}

func (a *analysis) checkTitleLength(title string) {
	length := len([]rune(title))
	switch {
	case length < titleMinLength:
		a.fail(penaltyTitleShort, "Title is too short. Aim for 50-60 characters to maximize visibility and CTR.")
		a.act(model.Action{
			Type:        model.ActionTitle,
			Issue:       "Title is too short",
			Current:     title,
			Recommended: lengthenedTitle(title),
			Why:         "Titles in the 50-60 character range earn more impressions in search and suggested feeds.",
		})
	case length > titleMaxLength:
		a.fail(penaltyTitleLong, "Title may be truncated on mobile devices. Keep it under 60 characters for best results.")
		a.act(model.Action{
			Type:        model.ActionTitle,
			Issue:       "Title is too long",
			Current:     title,
			Recommended: truncateTitle(title),
			Why:         "Search results and mobile feeds cut titles off around 60 characters.",
		})
	default:
		a.strength("Title length is optimal for search visibility.")
	}
}

func (a *analysis) checkPowerWords(title string) {
	lower := strings.ToLower(title)
	for _, w := range powerWords {
		if strings.Contains(lower, w) {
			a.strength("Title uses engaging power words.")
			return
		}
	}

	a.fail(penaltyNoPowerWord, "Consider adding power words like 'Best', 'Ultimate', 'Complete Guide' to improve CTR.")
	a.act(model.Action{
		Type:    model.ActionTitle,
		Issue:   "Title has no power words",
		Current: title,
		Why:     "Power words signal value and lift click-through rate.",
		Alternatives: []string{
			"How to " + title,
			title + " - Complete Guide",
			"The Ultimate " + title,
		},
	})
}

func (a *analysis) checkNumbers(title string) {
	if strings.ContainsFunc(title, unicode.IsDigit) {
		a.strength("Title contains numbers, which typically increases click-through rate by 20-30%.")
		return
	}

	a.fail(penaltyNoNumber, "Title has no numbers. Numbered titles typically lift click-through rate by 20-30%.")
	a.act(model.Action{
		Type:    model.ActionTitle,
		Issue:   "Title has no numbers",
		Current: title,
		Why:     "Concrete numbers set expectations and stand out in crowded feeds.",
		Suggestions: []string{
			title + " (5 Key Steps)",
			title + " in 2026",
			"Top 7: " + title,
		},
	})
}

func (a *analysis) checkTitleCase(title string) {
	lower := strings.ToLower(title)
	upper := strings.ToUpper(title)
	if lower == upper {
		// No cased letters to judge.
		return
	}
	if title != lower && title != upper {
		return
	}

	a.fail(penaltyBadCase, "Title lacks proper capitalization. Use Title Case for better readability.")
	a.act(model.Action{
		Type:        model.ActionTitle,
		Issue:       "Title is all-lowercase or all-uppercase",
		Current:     title,
		Recommended: ToTitleCase(title),
		Why:         "Title Case reads as more professional and is easier to scan.",
	})
}

func (a *analysis) checkBrackets(title string) {
	if bracketsRe.MatchString(title) {
		a.strength("Using brackets/parentheses in title - great for highlighting key info!")
		return
	}

	a.fail(penaltyNoBrackets, "No brackets or parentheses in title. Bracketed qualifiers are proven CTR boosters.")
	a.act(model.Action{
		Type:    model.ActionTitle,
		Issue:   "Title has no bracketed qualifier",
		Current: title,
		Why:     "A short bracketed qualifier highlights the video's angle without lengthening the main title.",
		Alternatives: []string{
			title + " [2026]",
			title + " (Step-by-Step)",
			title + " [Beginner Friendly]",
		},
	})
}

func (a *analysis) checkDescriptionLength(title, desc string) {
	length := len([]rune(desc))
	switch {
	case length < descCriticalLength:
		a.fail(penaltyDescCritical, "Description is critically short. Add at least 250-300 words with timestamps and keywords for better SEO.")
		a.act(model.Action{
			Type:     model.ActionDescription,
			Issue:    "Description is critically short",
			Current:  desc,
			Why:      "The description is a primary ranking signal; a near-empty one leaves search traffic on the table.",
			Template: descriptionTemplate(title),
		})
	case length < descShortLength:
		a.fail(penaltyDescShort, "Description could be longer. Aim for 250+ words to improve search rankings.")
		a.act(model.Action{
			Type:    model.ActionDescription,
			Issue:   "Description could be longer",
			Current: desc,
			Why:     "A fuller description gives search more keyword context to rank against.",
			Actions: []string{
				"Add 2-3 sentences summarizing what viewers will learn",
				"Work your top keywords into the first 100 characters",
				"Link to related videos and playlists",
				"Close with 3-5 relevant hashtags",
			},
		})
	default:
		a.strength("Description length is comprehensive.")
	}
}

func (a *analysis) checkTimestamps(desc string) {
	if timestampRe.MatchString(desc) {
		a.strength("Timestamps included - helps with user experience and watch time!")
		return
	}

	a.fail(penaltyNoTimestamps, "Add timestamps to your description. Videos with timestamps get 15% more engagement.")
	a.act(model.Action{
		Type:     model.ActionDescription,
		Issue:    "No timestamps in description",
		Why:      "Timestamps create chapter markers, improve navigation, and lift average watch time.",
		Template: timestampTemplate,
	})
}

func (a *analysis) checkLinks(desc string) {
	if strings.Contains(desc, "http://") || strings.Contains(desc, "https://") {
		a.strength("Links included in description.")
		return
	}

	a.fail(penaltyNoLinks, "No links in description. Add your social media, website, or affiliate links.")
	a.act(model.Action{
		Type:  model.ActionDescription,
		Issue: "No links in description",
		Why:   "Links turn viewers into subscribers and followers off-platform.",
		Actions: []string{
			"Link your website or landing page",
			"Link your other social profiles",
			"Link 1-2 related videos to keep viewers on your channel",
		},
	})
}

func (a *analysis) checkHashtags(title, desc string) {
	count := len(hashtagRe.FindAllString(desc, -1))
	switch {
	case count < minHashtags:
		a.fail(penaltyFewHashtags, "Use 3-5 relevant hashtags in description for better discoverability.")
		a.act(model.Action{
			Type:     model.ActionDescription,
			Issue:    "Too few hashtags",
			Why:      "Hashtags surface the video on hashtag result pages and above the title.",
			AddThese: SuggestHashtags(title),
		})
	case count > maxHashtags:
		a.fail(penaltyManyHashtags, "Too many hashtags can be seen as spam. Stick to 3-5 most relevant ones.")
	default:
		a.strength("Good hashtag usage for discoverability.")
	}
}

func (a *analysis) checkTags(title string, tags []string) {
	switch {
	case len(tags) < minTags:
		a.fail(penaltyFewTags, "Add more tags. Use 10-15 relevant tags including broad and specific keywords.")
		a.act(model.Action{
			Type:     model.ActionTags,
			Issue:    "Too few tags",
			Current:  fmt.Sprintf("%d tags", len(tags)),
			Why:      "Tags help search associate the video with related queries and videos.",
			AddThese: SuggestTags(title),
		})
	case len(tags) > maxTags:
		a.fail(penaltyManyTags, "Too many tags can dilute relevance. Focus on 10-15 highly relevant tags.")
		a.act(model.Action{
			Type:        model.ActionTags,
			Issue:       "Too many tags",
			Current:     fmt.Sprintf("%d tags", len(tags)),
			Recommended: "Keep the 12 most relevant tags and remove the rest",
			Why:         "Excess tags spread relevance thin and can read as keyword stuffing.",
		})
	default:
		a.strength("Tag count is in the optimal range.")
	}
}

func (a *analysis) checkEngagement(stats model.Statistics) {
	views := Count(stats.ViewCount)
	if views == 0 {
		// No views: engagement ratios are undefined, both rules are skipped.
		return
	}

	likes := Count(stats.LikeCount)
	comments := Count(stats.CommentCount)

	likeRatio := float64(likes) / float64(views) * 100
	switch {
	case likeRatio < goodLikeRatio:
		a.fail(penaltyLowLikeRatio, fmt.Sprintf("Low engagement rate (%.2f%% likes). Add clear CTAs asking viewers to like.", likeRatio))
		a.act(model.Action{
			Type:  model.ActionEngagement,
			Issue: "Low like ratio",
			Why:   "Likes per view feed the recommendation system; explicit CTAs reliably raise the ratio.",
			Actions: []string{
				"Ask viewers to like within the first 30 seconds",
				"Add a like reminder at a high-energy moment mid-video",
				"Pin a comment asking viewers to like if the video helped",
			},
		})
	case likeRatio >= excellentLikeRatio:
		a.strength(fmt.Sprintf("Excellent engagement rate! (%.2f%% likes) - Keep doing what you're doing!", likeRatio))
	default:
		a.strength(fmt.Sprintf("Good engagement rate (%.2f%% likes).", likeRatio))
	}

	if views > commentRatioMinViews {
		commentRatio := float64(comments) / float64(views) * 100
		if commentRatio < minCommentRatio {
			a.fail(penaltyLowCommentRate, "Very few comments. Ask questions in your video to encourage discussion.")
			a.act(model.Action{
				Type:  model.ActionEngagement,
				Issue: "Very few comments",
				Why:   "Comments signal an active audience and boost ranking in suggested feeds.",
				Actions: []string{
					"End the video with a direct question for viewers",
					"Pin a discussion-starter comment after publishing",
					"Reply to early comments to keep threads alive",
				},
			})
		}
	}
}
