package messaging

import (
	"fmt"
	"strings"

	"github.com/qawafel/crm-backend/pkg/enums"
)

// Templates are the suggested message goals per recipient type.
var Templates = map[enums.UserType][]string{
	enums.UserTypeRetailer: {
		"Welcome a new retailer",
		"Follow up on pending application",
		"Special promotion announcement",
		"Acknowledge support ticket",
	},
	enums.UserTypeVendor: {
		"Onboard a new vendor",
		"Request updated product catalog",
		"Follow up on an order",
		"Acknowledge feature request",
	},
}

var channelRules = map[enums.MessageChannel]string{
	enums.MessageChannelEmail: `Start the message with a greeting like "Dear [Name]," and end with a professional closing like "Best regards,
The Qawafel Team". Keep the body to 2-3 short paragraphs. Do not include a subject line.`,
	enums.MessageChannelSMS:      "The message must be very short, under 160 characters. Do not use greetings or closings.",
	enums.MessageChannelPush:     "The message must be a short, actionable notification. Do not use greetings or closings.",
	enums.MessageChannelWhatsApp: "The message should be friendly and conversational, suitable for WhatsApp. Emojis are allowed. Do not use formal greetings or closings.",
}

// BuildPrompt renders the instruction sent to the model for req.
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(`You are a professional B2B communication assistant for "Qawafel CRM", a marketplace connecting vendors with retailers.
Your task is to generate a concise, professional, and friendly message.

`)
	fmt.Fprintf(&b, "Channel: %s\n", req.Channel)
	fmt.Fprintf(&b, "Recipient Type: %s\n", req.RecipientType)
	fmt.Fprintf(&b, "Message Goal: %s\n", req.Goal)
	if extra := strings.TrimSpace(req.ExtraInstructions); extra != "" {
		fmt.Fprintf(&b, "Additional Instructions: %s\n", extra)
	}
	b.WriteString("\nThe tone should be supportive and business-oriented.\n")
	if rule, ok := channelRules[req.Channel]; ok {
		b.WriteString("\n")
		b.WriteString(rule)
		b.WriteString("\n")
	}
	return b.String()
}
