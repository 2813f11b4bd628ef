package model

// IdentifierKind distinguishes how a YouTube channel is referenced.
type IdentifierKind string

const (
	KindID       IdentifierKind = "id"
	KindHandle   IdentifierKind = "handle"
	KindUsername IdentifierKind = "username"
)

// ChannelIdentifier is the typed result of parsing a user-supplied channel
// reference (full URL, @handle, or raw UC... channel ID). It is produced once
// per query and never mutated.
type ChannelIdentifier struct {
	Kind  IdentifierKind `json:"kind"`
	Value string         `json:"value"`
}
