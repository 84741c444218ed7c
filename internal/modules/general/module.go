package general

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/sglre6355/dispatchbot/internal/bot"
	"github.com/sglre6355/dispatchbot/internal/framework"
	"github.com/sglre6355/dispatchbot/internal/modules/general/application"
	"github.com/sglre6355/dispatchbot/internal/modules/general/infrastructure"
	"github.com/sglre6355/dispatchbot/internal/modules/general/presentation"
)

func init() {
	bot.Register(&GeneralModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*GeneralModule)(nil)

// GeneralModule provides the general, emoji and owner command groups.
type GeneralModule struct {
	config *Config
	groups []*framework.Group
}

// Name returns the module name.
func (m *GeneralModule) Name() string {
	return "general"
}

// Groups returns the command groups for this module.
func (m *GeneralModule) Groups() []*framework.Group {
	return m.groups
}

// EventHandlers returns the event handlers for this module.
func (m *GeneralModule) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *GeneralModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *GeneralModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	usage := application.NewUsageInteractor(infrastructure.NewUsageCounterAdapter(deps.Usage))

	var slowmode *application.SlowmodeInteractor
	if deps.Session != nil {
		slowmode = application.NewSlowmodeInteractor(infrastructure.NewDiscordChannelEditor(deps.Session))
	} else {
		slog.Warn("general module initialized without session, slowmode disabled")
	}

	handlers := presentation.NewHandlers(m.config.AboutText, usage, slowmode)
	m.groups = presentation.Groups(handlers)
	return nil
}

// Shutdown cleans up module resources.
func (m *GeneralModule) Shutdown() error {
	return nil
}
