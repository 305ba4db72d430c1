package cmd

import "time"

// Config carries the environment-sourced settings the composition root
// needs to wire the service.
type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	RedisAddr    string
	RedisChannel string
	LockTimeout  time.Duration
}
