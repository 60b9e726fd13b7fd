package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aureliabotanicals/storefront-platform/internal/config"
	stripeClient "github.com/aureliabotanicals/storefront-platform/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
)

// Dependencies are the external systems the storefront needs to serve traffic.
type Dependencies struct {
	DB           *sql.DB
	RedisClient  *redis.Client
	StripeClient *stripeClient.Client
}

// NewHealthHandler builds the /health endpoint. Postgres and Redis are hard
// dependencies; Stripe only degrades checkout, so its check is advisory and
// does not flip the overall status.
func NewHealthHandler(cfg *config.Config, deps *Dependencies) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:    "postgres",
			Timeout: 3 * time.Second,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
		{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check:     stripeCheck(deps.StripeClient),
		},
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront-platform",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func stripeCheck(client *stripeClient.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return fmt.Errorf("stripe client is not initialized")
		}

		_, err := balance.Get(&stripe.BalanceParams{
			Params: stripe.Params{Context: ctx},
		})
		if err != nil {
			return fmt.Errorf("failed to reach stripe: %w", err)
		}

		return nil
	}
}
