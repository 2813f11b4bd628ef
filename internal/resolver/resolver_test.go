package resolver

import (
	"testing"

	"github.com/shadowmoulic/youtube-dashboard/internal/model"
)

func TestResolve_URLFormats(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKind  model.IdentifierKind
		wantValue string
	}{
		{"channel path", "https://youtube.com/channel/UCabc123", model.KindID, "UCabc123"},
		{"channel path www", "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw", model.KindID, "UCuAXFkgsw1L7xaCfnd5JJOw"},
		{"handle path", "https://youtube.com/@SomeCreator", model.KindHandle, "@SomeCreator"},
		{"handle path trailing segment", "https://www.youtube.com/@SomeCreator/videos", model.KindHandle, "@SomeCreator"},
		{"legacy c path", "https://youtube.com/c/SomeCreator", model.KindUsername, "SomeCreator"},
		{"legacy user path", "https://youtube.com/user/SomeCreator", model.KindUsername, "SomeCreator"},
		{"host with port", "https://youtube.com:443/channel/UCabc123", model.KindID, "UCabc123"},
		{"http scheme", "http://m.youtube.com/@Handle", model.KindHandle, "@Handle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.input)
			if got == nil {
				t.Fatalf("Resolve(%q) = nil, want %s %q", tt.input, tt.wantKind, tt.wantValue)
			}
			if got.Kind != tt.wantKind || got.Value != tt.wantValue {
				t.Errorf("Resolve(%q) = {%s %q}, want {%s %q}",
					tt.input, got.Kind, got.Value, tt.wantKind, tt.wantValue)
			}
		})
	}
}

func TestResolve_BareInputs(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKind  model.IdentifierKind
		wantValue string
	}{
		{"bare handle", "@someHandle", model.KindHandle, "@someHandle"},
		{"bare handle keeps case", "@SomeHandle", model.KindHandle, "@SomeHandle"},
		{"raw channel id", "UCuAXFkgsw1L7xaCfnd5JJOw", model.KindID, "UCuAXFkgsw1L7xaCfnd5JJOw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.input)
			if got == nil {
				t.Fatalf("Resolve(%q) = nil, want %s %q", tt.input, tt.wantKind, tt.wantValue)
			}
			if got.Kind != tt.wantKind || got.Value != tt.wantValue {
				t.Errorf("Resolve(%q) = {%s %q}, want {%s %q}",
					tt.input, got.Kind, got.Value, tt.wantKind, tt.wantValue)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"free text", "not a url, not a handle"},
		{"empty", ""},
		{"wrong host", "https://vimeo.com/channel/UCabc123"},
		{"youtube watch path", "https://youtube.com/watch?v=dQw4w9WgXcQ"},
		{"youtube root", "https://youtube.com/"},
		{"id too short", "UCabc123"},
		{"24 chars but wrong prefix", "XXuAXFkgsw1L7xaCfnd5JJOw"},
		{"id 25 chars", "UCuAXFkgsw1L7xaCfnd5JJOwX"},
		{"lowercase uc prefix", "ucuAXFkgsw1L7xaCfnd5JJOw"},
		{"schemeless youtube url", "youtube.com/@SomeCreator"},
		{"untrimmed handle", " @someHandle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.input); got != nil {
				t.Errorf("Resolve(%q) = {%s %q}, want nil", tt.input, got.Kind, got.Value)
			}
		})
	}
}
