package enums

import "fmt"

// MessageChannel is the delivery channel a generated message is written for.
type MessageChannel string

const (
	MessageChannelEmail    MessageChannel = "Email"
	MessageChannelSMS      MessageChannel = "SMS"
	MessageChannelPush     MessageChannel = "Push"
	MessageChannelWhatsApp MessageChannel = "WhatsApp"
)

var validMessageChannels = []MessageChannel{
	MessageChannelEmail,
	MessageChannelSMS,
	MessageChannelPush,
	MessageChannelWhatsApp,
}

// String implements fmt.Stringer.
func (m MessageChannel) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MessageChannel.
func (m MessageChannel) IsValid() bool {
	for _, candidate := range validMessageChannels {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMessageChannel converts raw input into a MessageChannel.
func ParseMessageChannel(value string) (MessageChannel, error) {
	for _, candidate := range validMessageChannels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid message channel %q", value)
}

// MessageChannelValues lists every known MessageChannel in declaration order.
func MessageChannelValues() []MessageChannel {
	return append([]MessageChannel(nil), validMessageChannels...)
}
