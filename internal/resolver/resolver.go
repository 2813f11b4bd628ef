// Package resolver classifies user-supplied channel references into typed
// identifiers. It fails closed: anything it cannot classify resolves to nil.
package resolver

import (
	"net/url"
	"strings"

	"github.com/shadowmoulic/youtube-dashboard/internal/model"
)

const channelIDLength = 24

// Resolve parses input as a YouTube channel reference and returns its typed
// identifier, or nil when the input matches no known format. The input is
// taken verbatim: no trimming, no case normalization. Handles are never
// validated beyond the leading @; raw channel IDs must start with UC and be
// exactly 24 characters.
func Resolve(input string) *model.ChannelIdentifier {
	if u, err := url.Parse(input); err == nil && u.IsAbs() && u.Host != "" {
		return resolveURL(u)
	}
	return resolveBare(input)
}

func resolveURL(u *url.URL) *model.ChannelIdentifier {
	if !strings.Contains(u.Hostname(), "youtube.com") {
		return nil
	}

	segments := strings.Split(u.Path, "/")

	switch {
	case strings.HasPrefix(u.Path, "/channel/"):
		return &model.ChannelIdentifier{Kind: model.KindID, Value: segments[2]}
	case strings.HasPrefix(u.Path, "/@"):
		return &model.ChannelIdentifier{Kind: model.KindHandle, Value: segments[1]}
	case strings.HasPrefix(u.Path, "/c/"), strings.HasPrefix(u.Path, "/user/"):
		return &model.ChannelIdentifier{Kind: model.KindUsername, Value: segments[2]}
	}
	return nil
}

func resolveBare(input string) *model.ChannelIdentifier {
	if strings.HasPrefix(input, "@") {
		return &model.ChannelIdentifier{Kind: model.KindHandle, Value: input}
	}
	if strings.HasPrefix(input, "UC") && len(input) == channelIDLength {
		return &model.ChannelIdentifier{Kind: model.KindID, Value: input}
	}
	return nil
}
