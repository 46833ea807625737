package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial config. Unset flags leave zero values
// so that they do not override other sources.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-u training API base URL used by the client
//	-d client token store DSN (SQLite file)
//	-redis analytics cache Redis address
//	-c/-config json file path with configs
//	-token-sign-key access token signing key
//	-token-issuer access token issuer name
//	-access-token-duration access token lifetime (e.g. "15m")
//	-refresh-token-duration refresh token lifetime (e.g. "720h")
//	-request-timeout request timeout (e.g. "30s")
//	-refresh-timeout token refresh timeout (e.g. "10s")
//	-poll-interval dashboard poll interval (e.g. "30s")
//	-rate-limit server requests per second
//	-rate-burst server request burst
//	-email account email
//	-password account password
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("punch-tracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "u", "", "Training API base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Token store DSN")
	fs.StringVar(&cfg.Storage.Cache.RedisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Auth.AccessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 15m)")
	fs.DurationVar(&cfg.Auth.RefreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 720h)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Adapter.RefreshTimeout, "refresh-timeout", 0, "Token refresh timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Workers.PollInterval, "poll-interval", 0, "Dashboard poll interval (e.g., 30s)")
	fs.Float64Var(&cfg.Server.RateLimit, "rate-limit", 0, "Requests per second")
	fs.IntVar(&cfg.Server.RateBurst, "rate-burst", 0, "Request burst")
	fs.StringVar(&cfg.Account.Email, "email", "", "Account email")
	fs.StringVar(&cfg.Account.Password, "password", "", "Account password")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Command = fs.Args()
	// one timeout flag drives both sides
	cfg.Server.RequestTimeout = cfg.Adapter.RequestTimeout

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

