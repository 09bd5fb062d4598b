package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}

	if c.Analytics.DefaultWindowDays <= 0 {
		return fmt.Errorf("analytics.default_window_days must be > 0 (got %d)", c.Analytics.DefaultWindowDays)
	}
	if c.Analytics.MaxWindowDays < c.Analytics.DefaultWindowDays {
		return fmt.Errorf("analytics.max_window_days (%d) must be >= default_window_days (%d)",
			c.Analytics.MaxWindowDays, c.Analytics.DefaultWindowDays)
	}

	return nil
}

func (w *WorkflowConfig) validate() error {
	if w.MaxFeedbackItems <= 0 {
		return fmt.Errorf("max_feedback_items must be > 0 (got %d)", w.MaxFeedbackItems)
	}
	if w.MaxQueuePageSize <= 0 {
		return fmt.Errorf("max_queue_page_size must be > 0 (got %d)", w.MaxQueuePageSize)
	}
	return nil
}
