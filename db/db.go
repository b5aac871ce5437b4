// Package db stores layouts so they can be retrieved after the server restarts.
package db

import (
	"fmt"
	"time"
)

// Config contains common properties to create databases.
type Config struct {
	// QueryPeriod is the amount of time that any database action can take before it should timeout.
	QueryPeriod time.Duration
}

// Validate checks that the config can be used by a database.
func (cfg Config) Validate() error {
	if cfg.QueryPeriod <= 0 {
		return fmt.Errorf("positive query period required")
	}
	return nil
}
