package domain

import "strings"

// ChannelType is the Slack conversation type.
type ChannelType string

const (
	ChannelPublic  ChannelType = "public_channel"
	ChannelPrivate ChannelType = "private_channel"
	ChannelIM      ChannelType = "im"
	ChannelMPIM    ChannelType = "mpim"
)

// ChannelPolicy restricts reads to public channels and, when an allow-list is
// configured, to the listed channel IDs.
type ChannelPolicy struct {
	allowed map[string]struct{}
}

// NewChannelPolicy creates a policy. An empty allow-list permits every public channel.
func NewChannelPolicy(allowedChannels []string) *ChannelPolicy {
	p := &ChannelPolicy{allowed: make(map[string]struct{})}
	for _, id := range allowedChannels {
		if id = strings.TrimSpace(id); id != "" {
			p.allowed[id] = struct{}{}
		}
	}
	return p
}

// ParseChannelList splits a comma-separated channel list, trimming blanks.
func ParseChannelList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AllowedChannels returns the configured allow-list, empty when unrestricted.
func (p *ChannelPolicy) AllowedChannels() []string {
	return sortedKeys(p.allowed)
}

// Validate returns *ChannelAccessDenied when the channel may not be read.
// An empty channel type is treated as public.
func (p *ChannelPolicy) Validate(channelID string, channelType ChannelType) error {
	switch channelType {
	case ChannelPrivate:
		return &ChannelAccessDenied{ChannelID: channelID, Reason: "private channels are not allowed"}
	case ChannelIM:
		return &ChannelAccessDenied{ChannelID: channelID, Reason: "direct messages are not allowed"}
	case ChannelMPIM:
		return &ChannelAccessDenied{ChannelID: channelID, Reason: "group direct messages are not allowed"}
	}

	if len(p.allowed) > 0 {
		if _, ok := p.allowed[channelID]; !ok {
			return &ChannelAccessDenied{ChannelID: channelID, Reason: "channel is not in the allow-list"}
		}
	}

	return nil
}
