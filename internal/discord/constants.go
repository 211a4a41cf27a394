package discord

const (
	colorDiscovery = 0xE67E22 // Orange
	colorUnlock    = 0x2ECC71 // Green

	footerText = "Star Sailors"

	webhookPathSegment = "webhooks"

	ErrMsgInvalidWebhookURL = "invalid discord webhook url"

	LogMsgNotificationSent   = "Discord notification sent"
	LogMsgNotificationFailed = "Discord notification failed"
	LogMsgPayloadDecodeError = "Failed to decode event payload for notification"
)
