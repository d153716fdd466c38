package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort  string
	LogLevel string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Late-fee accrual: flat amount charged per day overdue. The formula
	// itself lives behind ledger.LateFeePolicy; only the rate is config.
	LateFeeDailyRate float64

	// PrepaidUntil selects when an approved payment still counts as prepaid:
	// "due_date" (strictly before the due date) or "overdue" (any time before
	// the installment turns overdue).
	PrepaidUntil string

	// parseErr holds the first env parse failure from Load. Validate returns
	// it so a typoed value fails startup instead of silently using a default.
	parseErr error
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "prestago"),
		MySQLUser: getenv("MYSQL_USER", "prestago"),
		MySQLPass: getenv("MYSQL_PASS", "prestago"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		IdempTTLSecs: 300,

		LateFeeDailyRate: 1.0,
		PrepaidUntil:     getenv("PREPAID_UNTIL", "due_date"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err != nil {
			c.recordParseErr("REDIS_DB", v)
		} else {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err != nil {
			c.recordParseErr("IDEMPOTENCY_TTL_SECONDS", v)
		} else {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("LATE_FEE_DAILY_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err != nil {
			c.recordParseErr("LATE_FEE_DAILY_RATE", v)
		} else {
			c.LateFeeDailyRate = f
		}
	}
	return c
}

func (c *Config) recordParseErr(key, val string) {
	if c.parseErr == nil {
		c.parseErr = fmt.Errorf("invalid %s %q: not a number", key, val)
	}
}

func (c *Config) Validate() error {
	if c.parseErr != nil {
		return c.parseErr
	}
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.LateFeeDailyRate < 0 {
		return errors.New("LATE_FEE_DAILY_RATE must not be negative")
	}
	if c.PrepaidUntil != "due_date" && c.PrepaidUntil != "overdue" {
		return fmt.Errorf("invalid PREPAID_UNTIL %q (want due_date or overdue)", c.PrepaidUntil)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime is required for DATE/DATETIME scanning.
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
