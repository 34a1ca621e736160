package notification

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/katatrina/sellerops-BE/internal/util"
	"github.com/rs/zerolog/log"
)

// Discord rejects messages longer than this.
const discordMessageLimit = 2000

// Alerter posts operational messages to the ops channel.
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

type DiscordAlerter struct {
	discord   *discordgo.Session
	channelID string
}

func NewDiscordAlerter(botToken, channelID string) (*DiscordAlerter, error) {
	discord, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordAlerter{
		discord:   discord,
		channelID: channelID,
	}, nil
}

func (a *DiscordAlerter) Alert(ctx context.Context, message string) error {
	_, err := a.discord.ChannelMessageSend(a.channelID, util.TruncateContent(message, discordMessageLimit), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to post Discord alert: %w", err)
	}
	return nil
}

// NoopAlerter only logs. It is used when no Discord channel is configured.
type NoopAlerter struct{}

func (NoopAlerter) Alert(ctx context.Context, message string) error {
	log.Info().Str("alert", message).Msg("alert not posted: no channel configured")
	return nil
}
