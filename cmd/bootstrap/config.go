package bootstrap

import (
	"pricing-panel/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSectionsOption,
)

// ConfigSectionsOption splits a provided config.Config into the sections the
// adapters depend on.
var ConfigSectionsOption = fx.Provide(
	func(cfg config.Config) config.PlatformConfig { return cfg.Platform },
	func(cfg config.Config) config.TableStoreConfig { return cfg.TableStore },
	func(cfg config.Config) config.WorkflowConfig { return cfg.Workflow },
	func(cfg config.Config) config.LLMConfig { return cfg.LLM },
	func(cfg config.Config) config.SearchConfig { return cfg.Search },
	func(cfg config.Config) config.CacheConfig { return cfg.Cache },
	func(cfg config.Config) config.WebhookConfig { return cfg.Webhook },
)
