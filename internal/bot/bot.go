package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/framework"
)

// Gateway intents needed to receive message commands in guilds and DMs.
const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config     *Config
	session    *discordgo.Session
	modules    []Module
	commands   *framework.Registry
	usage      *framework.UsageCounter
	dispatcher *framework.Dispatcher

	ctx    context.Context
	cancel context.CancelFunc
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:   cfg,
		modules:  make([]Module, 0),
		commands: framework.NewRegistry(),
		usage:    framework.NewUsageCounter(),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start initializes the bot, registers commands and connects to Discord.
func (b *Bot) Start() error {
	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = intents
	b.session = session

	// Load module configuration, then initialize modules
	if err := b.loadModuleConfigs(); err != nil {
		return err
	}
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	// Command registration fails fast on alias collisions
	if err := b.registerGroups(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.ctx, b.cancel = context.WithCancel(context.Background())
	b.dispatcher = b.newDispatcher(
		NewDiscordSender(session, b.config.SendRate, b.config.SendBurst),
		NewDiscordMembership(session),
	)

	go runBucketSweeper(b.ctx, b.commands.Buckets(), bucketSweepInterval)

	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleMessageCreate)

	// Register module event handlers
	b.registerEventHandlers()

	// Open connection
	if err := b.session.Open(); err != nil {
		b.cancel()
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
		"prefix", b.config.Prefix,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}

	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// loadModuleConfigs calls LoadConfig on modules that need configuration.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		cm, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := cm.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
		}
	}
	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Session: b.session,
		Usage:   b.usage,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// registerGroups registers every module's command groups, in module order.
func (b *Bot) registerGroups() error {
	for _, mod := range b.modules {
		for _, g := range mod.Groups() {
			if err := b.commands.Register(g); err != nil {
				return fmt.Errorf("module %s: %w", mod.Name(), err)
			}
			slog.Debug("registered command group",
				"module", mod.Name(),
				"group", g.Name,
				"prefixes", g.Prefixes,
				"commands", len(g.Commands),
			)
		}
	}
	return nil
}

// newDispatcher builds the dispatcher over the registered commands and
// installs the default hooks.
func (b *Bot) newDispatcher(sender framework.Sender, membership framework.Membership) *framework.Dispatcher {
	d := framework.NewDispatcher(b.config.Framework(), b.commands, b.usage, membership, sender)
	installHooks(d)
	return d
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}

// handleReady records the bot's own ID for mention prefixes.
func (b *Bot) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	id, err := snowflake.Parse(r.User.ID)
	if err != nil {
		slog.Error("failed to parse bot user ID", "user_id", r.User.ID, "error", err)
		return
	}
	b.dispatcher.SetSelfID(id)
	slog.Info("connected to gateway", "username", r.User.Username, "guilds", len(r.Guilds))
}

// handleMessageCreate dispatches every inbound message.
func (b *Bot) handleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.dispatch(m)
}

func (b *Bot) dispatch(m *discordgo.MessageCreate) framework.Outcome {
	msg, err := messageFromEvent(m)
	if err != nil {
		slog.Warn("failed to convert message event", "error", err)
		return framework.Outcome{Kind: framework.OutcomeIgnored}
	}

	ctx := b.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	out := b.dispatcher.Dispatch(ctx, msg)
	slog.Debug("dispatched message",
		"message_id", msg.ID,
		"outcome", out.Kind.String(),
	)
	return out
}
