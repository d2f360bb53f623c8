// Package config loads xssguard settings from the environment and optional
// .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// .env files are merged into the process environment first, then the
// environment is parsed into Config using struct tags.
//
// # Variables
//
//	XSSGUARD_SCRIPTLESS             also neutralize <meta> and <base> (default false)
//	XSSGUARD_LAX_SECONDARY          leave secondary output surfaces untouched (default false)
//	XSSGUARD_PROTECT_MESSAGES       run the message post-processor (default true)
//	XSSGUARD_HTTP_ADDR              listen address (default :8080)
//	XSSGUARD_HTTP_READ_TIMEOUT      default 30s
//	XSSGUARD_HTTP_WRITE_TIMEOUT     default 30s
//	XSSGUARD_HTTP_SHUTDOWN_TIMEOUT  default 5s
//	XSSGUARD_LOG_FORMAT             json or text (default json)
//	XSSGUARD_LOG_LEVEL              debug, info, warn or error (default info)
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	out := defuse.Rewrite(body, defuse.ModeHTML, cfg.Flags())
//
// The rewrite flags are never read from a global: callers thread the value
// returned by Config.Flags into every call.
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be checked with errors.Is:
//
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read.
//   - ErrParsingConfig  – an environment value has the wrong type.
//   - ErrInvalidConfig  – values parsed but are out of range.
package config
