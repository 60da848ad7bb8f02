package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-max-open-conns database connection pool size
//	-connect-timeout database connect timeout (e.g., "5s")
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit write requests per second per client IP
//	-rate-burst write request burst per client IP
//	-health-interval health worker interval (e.g., "15s")
//	-log-level log level (debug, info, warn, error)
//	-check-groups reject users referencing unknown groups
//	-version application version
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("accounts", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var maxOpenConns int
	var connectTimeout time.Duration
	var jsonConfigPath string
	var requestTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var healthInterval time.Duration
	var logLevel string
	var checkGroups bool
	var version string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "Database connection pool size")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Database connect timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Write requests per second per client IP")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Write request burst per client IP")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Health worker interval (e.g., 15s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&checkGroups, "check-groups", false, "Reject users referencing unknown groups")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:              version,
			CheckGroupReferences: checkGroups,
			LogLevel:             logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				MaxOpenConns:   maxOpenConns,
				ConnectTimeout: connectTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
