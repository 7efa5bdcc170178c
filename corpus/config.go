// Package corpus connects the detection core to a live query-log
// table: it pulls rows of previously-logged request text out of a
// configured SQL database and runs sqli.IsSQLi / xss.IsXSS over each
// one, for retrospective scanning or alert triage. Everything in this
// package does I/O; package sqli and package xss never do.
//
// The driver-dispatch-by-type shape and the SOCKS5/AAD connection
// setup follow the same DatabaseConfig.Open / OpenSocks5Sql pattern
// used elsewhere for stored-procedure deployment, repurposed here from
// "deploy stored procedures" to "read a log table".
package corpus

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/azuread"
	"golang.org/x/net/proxy"
	"gopkg.in/yaml.v3"
)

// DatabaseConfig describes one named query-log source.
type DatabaseConfig struct {
	// Connection is a URI-style DSN: "sqlserver://" or "azuresql://"
	// for SQL Server (password or Azure AD login), "postgres://" for
	// PostgreSQL.
	Connection string `yaml:"connection"`
	// Table is the fully-qualified query-log table to scan.
	Table string `yaml:"table"`
	// TextColumn holds the logged request text to classify.
	TextColumn string `yaml:"textColumn"`
	// IDColumn identifies a row in flagged output.
	IDColumn string `yaml:"idColumn"`
}

// Config is the top-level waf.yaml shape: one or more named database
// sources.
type Config struct {
	Databases   map[string]DatabaseConfig `yaml:"databases"`
	ServiceName string                    `yaml:"servicename"`
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("no %s found", path)
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConnectError wraps a driver-native connection/query failure with the
// database name it occurred against, the way SQLUserError/
// MSSQLUserError format mssql.Error for the operator.
type ConnectError struct {
	Database string
	Wrapped  error
}

func (e *ConnectError) Error() string {
	var merr mssql.Error
	if errors.As(e.Wrapped, &merr) {
		var msgs []string
		for _, item := range merr.All {
			msgs = append(msgs, fmt.Sprintf("(%s): %s", item.ProcName, item.Message))
		}
		return fmt.Sprintf("corpus: %s: %s", e.Database, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("corpus: %s: %s", e.Database, e.Wrapped)
}

func (e *ConnectError) Unwrap() error { return e.Wrapped }

// Open opens dbcfg's connection, dispatching on its DSN scheme and
// applying the SQL_SOCKS proxy convention for SQL Server connections.
func Open(name string, dbcfg DatabaseConfig) (*sql.DB, error) {
	dsn := dbcfg.Connection

	switch {
	case strings.HasPrefix(dsn, "azuresql://"):
		connector, err := azuread.NewConnector(dsn)
		if err != nil {
			return nil, &ConnectError{Database: name, Wrapped: err}
		}
		if err := dialSocks5(connector); err != nil {
			return nil, &ConnectError{Database: name, Wrapped: err}
		}
		return sql.OpenDB(connector), nil

	case strings.HasPrefix(dsn, "sqlserver://"):
		connector, err := mssql.NewConnector(dsn)
		if err != nil {
			return nil, &ConnectError{Database: name, Wrapped: err}
		}
		if err := dialSocks5(connector); err != nil {
			return nil, &ConnectError{Database: name, Wrapped: err}
		}
		return sql.OpenDB(connector), nil

	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		// importing stdlib registers the "pgx" database/sql driver name
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, &ConnectError{Database: name, Wrapped: err}
		}
		return db, nil
	}

	return nil, &ConnectError{Database: name, Wrapped: errors.New("expected sqlserver://, azuresql:// or postgres:// DSN")}
}

func dialSocks5(connector *mssql.Connector) error {
	addr := os.Getenv("SQL_SOCKS")
	if addr == "" {
		return nil
	}
	dialer, err := proxy.SOCKS5("tcp", addr, nil, nil)
	if err != nil {
		return fmt.Errorf("could not connect with SOCKS5 to %s: %w", addr, err)
	}
	ctxDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return fmt.Errorf("SOCKS5 dialer %T does not support DialContext", dialer)
	}
	connector.Dialer = ctxDialer
	return nil
}
