package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/disgo/webhook"
	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/ellavondegurechaff/godcs/dcslist/directory"
)

const (
	webhookTimeout    = 10 * time.Second
	milestoneColor    = 0x57F287
	joinAnnounceColor = 0x5865F2
)

// WebhookNotifier delivers Discord webhook embeds to server-owner
// configured webhook URLs. Delivery is best effort: failures are logged
// and never propagated into the triggering operation.
type WebhookNotifier struct{}

func NewWebhookNotifier() *WebhookNotifier {
	return &WebhookNotifier{}
}

// NotifyMilestone announces that a server's member count crossed its
// configured milestone threshold.
func (n *WebhookNotifier) NotifyMilestone(ctx context.Context, server *models.Server, memberCount int) {
	if server.WebhookURL == "" || !server.WebhookOnMilestone {
		return
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("Milestone reached!").
		SetDescriptionf("**%s** just passed **%d** members 🎉", server.Name, server.MilestoneThreshold).
		SetColor(milestoneColor).
		AddField("Members", fmt.Sprintf("%d", memberCount), true).
		SetTimestamp(time.Now()).
		Build()

	n.send(ctx, server, embed)
}

// NotifyJoin announces a new member joining, for servers that opted in.
func (n *WebhookNotifier) NotifyJoin(ctx context.Context, server *models.Server, username string) {
	if server.WebhookURL == "" || !server.WebhookOnJoin {
		return
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("New member").
		SetDescriptionf("**%s** joined **%s**", username, server.Name).
		SetColor(joinAnnounceColor).
		SetTimestamp(time.Now()).
		Build()

	n.send(ctx, server, embed)
}

func (n *WebhookNotifier) send(ctx context.Context, server *models.Server, embed discord.Embed) {
	client, err := webhook.NewWithURL(server.WebhookURL)
	if err != nil {
		slog.Warn("Invalid webhook URL",
			slog.String("type", "webhook"),
			slog.String("server_id", server.ID),
			slog.Any("error", err))
		return
	}
	defer client.Close(ctx)

	sendCtx, cancel := context.WithTimeout(ctx, webhookTimeout)
	defer cancel()

	if _, err := client.CreateMessage(
		discord.NewWebhookMessageCreateBuilder().SetEmbeds(embed).Build(),
		rest.WithCtx(sendCtx),
	); err != nil {
		slog.Warn("Webhook delivery failed",
			slog.String("type", "webhook"),
			slog.String("server_id", server.ID),
			slog.Any("error", err))
	}
}

var _ directory.Notifier = (*WebhookNotifier)(nil)
