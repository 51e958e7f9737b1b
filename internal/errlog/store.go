// Package errlog persists diagnostic records for failed requests.
package errlog

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Entry is one persisted server error.
type Entry struct {
	// When is the failure time in Unix milliseconds; it also keys the entry.
	When      int64  `json:"when"`
	Request   string `json:"request"`
	RequestID string `json:"requestId,omitempty"`
	Err       string `json:"err"`
}

func NewEntry(at time.Time, request, requestID string, err error) Entry {
	e := Entry{
		When:      at.UnixMilli(),
		Request:   request,
		RequestID: requestID,
	}
	if err != nil {
		e.Err = err.Error()
	}
	return e
}

type Store interface {
	Write(ctx context.Context, e Entry) error
	Close() error
}

type Driver string

const (
	DriverFile   Driver = "file"
	DriverSQLite Driver = "sqlite"
)

type Config struct {
	Driver Driver `yaml:"error_log_driver"`
	// Dir is the directory for the file driver.
	Dir string `yaml:"errors_dir"`
	// DSN is the database path for the sqlite driver.
	DSN string `yaml:"error_log_dsn"`
}

func (c *Config) ApplyEnv() {
	if v := os.Getenv("ERROR_LOG_DRIVER"); v != "" {
		c.Driver = Driver(v)
	}
	if v := os.Getenv("ERRORS_DIR"); v != "" {
		c.Dir = v
	}
	if v := os.Getenv("ERROR_LOG_DSN"); v != "" {
		c.DSN = v
	}

	if c.Driver == "" {
		c.Driver = DriverFile
	}
	if c.Dir == "" {
		c.Dir = "./errors"
	}
	if c.DSN == "" {
		c.DSN = "./errors.db"
	}
}

func (c *Config) Validate() error {
	switch c.Driver {
	case DriverFile, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("invalid ERROR_LOG_DRIVER value: %s, expected one of %v", c.Driver, []Driver{DriverFile, DriverSQLite})
	}
}

// NewStore opens the store selected by cfg.Driver.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverFile:
		return NewFileStore(cfg.Dir)
	case DriverSQLite:
		return NewSQLiteStore(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported error log driver: %s", cfg.Driver)
	}
}
