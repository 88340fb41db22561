package discord

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ScoreBot_Go/internal/logger"
	"github.com/osse101/ScoreBot_Go/internal/metrics"
	"github.com/osse101/ScoreBot_Go/internal/worker"
)

// Bot listens to one channel and turns messages into scoreboard commands
type Bot struct {
	Session *discordgo.Session
	Client  API

	cfg    Config
	parser *Parser
	sender Sender
	names  NameFunc
	pool   *worker.Pool

	startedAt       time.Time
	commandsHandled atomic.Int64
	lastCommandAt   atomic.Int64 // unix nanoseconds
}

// Config holds the bot configuration
type Config struct {
	Token     string
	ChannelID string
	APIURL    string
	APIKey    string
	BotName   string

	MinStreakLength int
	TimeZone        *time.Location
	// Impersonation enables "As @user: <command>" for local testing
	Impersonation bool

	SendRate      float64
	SendBurst     int
	NameCacheSize int
	NameCacheTTL  time.Duration
}

func (c *Config) applyDefaults() {
	if c.TimeZone == nil {
		c.TimeZone = time.UTC
	}
	if c.SendRate <= 0 {
		c.SendRate = DefaultSendRate
	}
	if c.SendBurst <= 0 {
		c.SendBurst = DefaultSendBurst
	}
	if c.NameCacheSize <= 0 {
		c.NameCacheSize = DefaultNameCacheSize
	}
	if c.NameCacheTTL <= 0 {
		c.NameCacheTTL = DefaultNameCacheTTL
	}
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	cfg.applyDefaults()

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	names := NewNameResolver(func(id string) (*discordgo.User, error) {
		return s.User(id)
	}, cfg.NameCacheSize, cfg.NameCacheTTL)

	b := newBot(cfg,
		NewAPIClient(cfg.APIURL, cfg.APIKey),
		NewChannelSender(s, cfg.ChannelID, cfg.SendRate, cfg.SendBurst),
		names.Name,
	)
	b.Session = s
	return b, nil
}

func newBot(cfg Config, api API, sender Sender, names NameFunc) *Bot {
	cfg.applyDefaults()
	return &Bot{
		Client:    api,
		cfg:       cfg,
		parser:    NewParser(WithImpersonation(cfg.Impersonation)),
		sender:    sender,
		names:     names,
		pool:      worker.NewPool(1, commandQueueSize),
		startedAt: time.Now(),
	}
}

// Start starts the bot. Commands run one at a time, in arrival order.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.messageCreate)

	if b.cfg.Impersonation {
		logger.Warn(LogMsgImpersonationActive)
	}

	b.pool.Start()
	if err := b.Session.Open(); err != nil {
		b.pool.Stop()
		return fmt.Errorf(ErrMsgOpenConnection, err)
	}

	logger.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the connection and waits for the running command
func (b *Bot) Stop(ctx context.Context) error {
	closeErr := b.Session.Close()
	if err := b.pool.Shutdown(ctx); err != nil {
		return err
	}
	return closeErr
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	return b.Stop(ctx)
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	logger.Info(LogMsgBotReady, "user", r.User.Username, "channel", b.cfg.ChannelID)

	// Shown as the bot's "Playing" status
	if b.cfg.BotName != "" {
		if err := s.UpdateGameStatus(0, b.cfg.BotName); err != nil {
			logger.Warn(LogMsgStatusFailed, "error", err)
		}
	}
}

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.ChannelID != b.cfg.ChannelID {
		return
	}
	b.Dispatch(m.ID, m.Author.ID, m.Content)
}

// Dispatch parses a message and queues the resulting command.
// Messages that are not commands are ignored.
func (b *Bot) Dispatch(messageID, authorID, content string) bool {
	cmd, ok := b.parser.Parse(authorID, content)
	if !ok {
		return false
	}

	ctx := logger.WithRequestID(context.Background(), messageID)
	err := b.pool.Enqueue(ctx, worker.JobFunc(func(poolCtx context.Context) error {
		jobCtx, cancel := context.WithTimeout(logger.WithRequestID(poolCtx, messageID), jobTimeout)
		defer cancel()
		return b.Execute(jobCtx, cmd)
	}))
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgEnqueueFailed, "error", err)
		return false
	}
	return true
}

// Execute runs one command and replies in the channel
func (b *Bot) Execute(ctx context.Context, cmd Command) error {
	b.commandsHandled.Add(1)
	b.lastCommandAt.Store(time.Now().UnixNano())
	metrics.ChatCommands.WithLabelValues(cmd.Kind.String()).Inc()

	log := logger.FromContext(ctx)
	log.Info(LogMsgCommandReceived, "kind", cmd.Kind, "author", cmd.Author)

	var err error
	switch cmd.Kind {
	case CommandReport:
		err = b.handleReport(ctx, cmd)
	case CommandConfirm:
		err = b.handleConfirm(ctx, cmd, true)
	case CommandConfirmRange:
		err = b.handleConfirmRange(ctx, cmd)
	case CommandConfirmAll:
		err = b.handleConfirmAll(ctx, cmd)
	case CommandLeaderboard:
		err = b.handleLeaderboard(ctx)
	case CommandUnconfirmed:
		err = b.handleUnconfirmed(ctx)
	}

	if err != nil {
		log.Error(LogMsgCommandFailed, "kind", cmd.Kind, "error", err)
		b.talkTo(ctx, []string{cmd.Author}, formatFriendlyError(err))
	}
	return err
}
