package components

import (
	"meetbook/internal/infra/meetings"
	"meetbook/internal/infra/notifier"
	"meetbook/internal/pkg/config"
	"meetbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		func(cfg config.Config) config.ProviderConfig { return cfg.Provider },
		func(cfg config.Config) config.NotifierConfig { return cfg.Notifier },
		fx.Annotate(
			meetings.NewClient,
			fx.As(new(meetings.LoginClient)),
			fx.As(new(meetings.MeetingClient)),
		),
		fx.Annotate(
			meetings.NewTokenCache,
			fx.As(new(meetings.TokenSource)),
		),
		fx.Annotate(
			meetings.NewScheduler,
			fx.As(new(commands.MeetingScheduler)),
		),
		fx.Annotate(
			notifier.NewAccountingNotifier,
			fx.As(new(commands.AccountingNotifier)),
		),
	),
)
