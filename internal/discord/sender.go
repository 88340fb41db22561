package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// Sender posts messages to the bot's channel
type Sender interface {
	Send(ctx context.Context, content string) error
}

// messageSender is the part of *discordgo.Session used to post messages
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ChannelSender posts to a single channel, throttled so bursts of replies
// stay under Discord's per-channel rate limit
type ChannelSender struct {
	session   messageSender
	channelID string
	limiter   *rate.Limiter
}

// NewChannelSender creates a sender allowing rps messages per second with the given burst
func NewChannelSender(session messageSender, channelID string, rps float64, burst int) *ChannelSender {
	return &ChannelSender{
		session:   session,
		channelID: channelID,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Send waits for the rate limiter, then posts content
func (s *ChannelSender) Send(ctx context.Context, content string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := s.session.ChannelMessageSend(s.channelID, content, discordgo.WithContext(ctx))
	return err
}
