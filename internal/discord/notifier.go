// Package discord announces discoveries to a Discord channel through an incoming webhook.
package discord

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/mineral"
)

// webhookAPI is the slice of *discordgo.Session the notifier uses
type webhookAPI interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts embeds for bus events
type Notifier struct {
	api       webhookAPI
	webhookID string
	token     string
	now       func() time.Time
}

// NewNotifier builds a notifier for a webhook URL of the form .../api/webhooks/{id}/{token}
func NewNotifier(webhookURL string) (*Notifier, error) {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	// Webhook execution needs no bot token
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return newNotifier(session, id, token), nil
}

func newNotifier(api webhookAPI, webhookID, token string) *Notifier {
	return &Notifier{api: api, webhookID: webhookID, token: token, now: time.Now}
}

func parseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", ErrMsgInvalidWebhookURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == webhookPathSegment && i+2 < len(parts) {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhookURL, u.Path)
}

// Register subscribes the notifier to the events it announces
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.MineralDepositDiscovered, n.handleDepositDiscovered)
	bus.Subscribe(event.FeatureUnlocked, n.handleFeatureUnlocked)
}

func (n *Notifier) handleDepositDiscovered(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.MineralDepositDiscoveredPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadDecodeError, "error", err, "event_type", evt.Type)
		return nil
	}

	name := mineral.DisplayName(p.MineralType)
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("New deposit: %s", name),
		Description: mineral.Description(p.MineralType),
		Color:       colorDiscovery,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Quantity", Value: p.Quantity, Inline: true},
			{Name: "Anomaly", Value: fmt.Sprintf("#%d", p.AnomalyID), Inline: true},
			{Name: "Classification", Value: fmt.Sprintf("#%d", p.ClassificationID), Inline: true},
		},
		Timestamp: n.now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: footerText},
	}
	return n.send(ctx, evt.Type, embed)
}

func (n *Notifier) handleFeatureUnlocked(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.FeatureUnlockedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadDecodeError, "error", err, "event_type", evt.Type)
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Workflow unlocked",
		Description: fmt.Sprintf("**%s** is now live on structure %d", p.Identifier, p.StructureItemID),
		Color:       colorUnlock,
		Timestamp:   n.now().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
	}
	return n.send(ctx, evt.Type, embed)
}

func (n *Notifier) send(ctx context.Context, typ event.Type, embed *discordgo.MessageEmbed) error {
	log := logger.FromContext(ctx)
	_, err := n.api.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		log.Error(LogMsgNotificationFailed, "error", err, "event_type", typ)
		return err
	}
	log.Info(LogMsgNotificationSent, "event_type", typ)
	return nil
}
