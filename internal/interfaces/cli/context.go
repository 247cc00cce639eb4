package cli

import (
	"time"

	"github.com/lite-lake/dnsops/internal/application/reconcile"
	"github.com/lite-lake/dnsops/internal/config"
	"github.com/lite-lake/dnsops/internal/infrastructure/pdns"
)

// Context wires configuration into the client, executor and workflow so
// every subcommand builds its collaborators the same way.
type Context struct{}

func NewContext() *Context {
	return &Context{}
}

// LoadConfig reads the tool configuration for network-touching commands.
func (c *Context) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Context) Client(cfg *config.Config) *pdns.Client {
	return pdns.NewClient(pdns.Config{
		BaseURL:  cfg.API.URL,
		APIKey:   cfg.API.Key,
		ServerID: cfg.API.ServerID,
		Timeout:  cfg.API.Timeout,
	})
}

func (c *Context) Executor(cfg *config.Config, client reconcile.API) *reconcile.Executor {
	return reconcile.NewExecutor(reconcile.ExecutorConfig{
		Client:            client,
		MaxBatchSize:      cfg.Apply.MaxBatchSize,
		MaxInFlight:       cfg.Apply.MaxInFlight,
		RetryAttempts:     cfg.Apply.RetryAttempts,
		RetryInitialDelay: 250 * time.Millisecond,
	})
}

func (c *Context) Workflow(cfg *config.Config) *reconcile.Workflow {
	client := c.Client(cfg)
	return reconcile.NewWorkflow(client, c.Executor(cfg, client))
}
