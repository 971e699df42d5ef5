// Package dsn holds value types representing validated database connection strings.
//
// DSN is constructed only through Parse (or ParseContext) and is immutable afterwards.
// Two DSN values built from equivalent connection strings are equal in sense of == operator.
package dsn

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrDSNParse tells that connection string could not be turned into DSN value.
var ErrDSNParse = errors.New("invalid DSN")

// ErrMalformedScheme occurs when connection string is empty, has no scheme
// or scheme does not belong to given backend family.
var ErrMalformedScheme = fmt.Errorf("%w: malformed scheme", ErrDSNParse)

// ErrMissingHost occurs when connection string has no host component.
var ErrMissingHost = fmt.Errorf("%w: missing host", ErrDSNParse)

// ErrInvalidPort occurs when port component is not a number from 1-65535 range.
var ErrInvalidPort = fmt.Errorf("%w: invalid port", ErrDSNParse)

// ErrMissingDatabase occurs when connection string has no database name.
var ErrMissingDatabase = fmt.Errorf("%w: missing database name", ErrDSNParse)

const (
	// BackendPostgres describes PostgreSQL backend family.
	BackendPostgres Backend = "postgres"

	// BackendMySQL describes MySQL/MariaDB backend family.
	BackendMySQL Backend = "mysql"
)

// Backend represents database backend family.
type Backend string

// schemes maps backend family into URI schemes it accepts.
var schemes = map[Backend][]string{
	BackendPostgres: {"postgresql", "postgres"},
	BackendMySQL:    {"mysql", "mariadb"},
}

// defaultPorts maps backend family into port used when connection string doesn't mention any.
var defaultPorts = map[Backend]int{
	BackendPostgres: 5432,
	BackendMySQL:    3306,
}

// DSN represents parsed connection string for one backend family.
// Zero value is not usable, valid DSN comes only from Parse or ParseContext.
type DSN struct {
	// Backend is backend family given during construction.
	Backend Backend

	// Scheme is URI scheme of source connection string.
	Scheme string

	// User is name used to authenticate against backend. May be empty.
	User string

	// Password is secret used to authenticate against backend. May be empty.
	Password string

	// Host is backend host name or IP address.
	Host string

	// Port is backend TCP port.
	Port int

	// Database is name of database to connect to.
	Database string

	// RawQuery holds connection options exactly as they appeared after "?".
	RawQuery string
}

// Parse validates raw connection string and turns it into DSN value of given backend family.
// It has no side effects. On any error zero DSN is returned.
func Parse(raw string, backend Backend) (DSN, error) {
	acceptedSchemes, ok := schemes[backend]
	if !ok {
		return DSN{}, fmt.Errorf("%w: unknown backend family %s", ErrMalformedScheme, backend)
	}

	if strings.TrimSpace(raw) == "" {
		return DSN{}, fmt.Errorf("%w: empty connection string", ErrMalformedScheme)
	}

	u, err := url.Parse(raw)
	if err != nil {
		if strings.Contains(err.Error(), "invalid port") {
			return DSN{}, fmt.Errorf("%w: %s", ErrInvalidPort, err.Error())
		}

		return DSN{}, fmt.Errorf("%w: %s", ErrMalformedScheme, err.Error())
	}

	if !containsScheme(acceptedSchemes, u.Scheme) {
		return DSN{}, fmt.Errorf("%w: %s is not valid %s scheme, accepted are: %s",
			ErrMalformedScheme, u.Scheme, backend, strings.Join(acceptedSchemes, ", "))
	}

	// URI without "//" after scheme parses as opaque, e.g. "postgres:pass@localhost/db".
	if u.Opaque != "" {
		return DSN{}, fmt.Errorf("%w: %s is not hierarchical URI", ErrMalformedScheme, redactRaw(raw))
	}

	if u.Hostname() == "" {
		return DSN{}, fmt.Errorf("%w: %s", ErrMissingHost, redactRaw(raw))
	}

	port := defaultPorts[backend]
	if rawPort := u.Port(); rawPort != "" {
		port, err = strconv.Atoi(rawPort)
		if err != nil || port < 1 || port > 65535 {
			return DSN{}, fmt.Errorf("%w: %s", ErrInvalidPort, rawPort)
		}
	}

	database := strings.TrimPrefix(u.Path, "/")
	if database == "" {
		return DSN{}, fmt.Errorf("%w: %s", ErrMissingDatabase, redactRaw(raw))
	}

	password, _ := u.User.Password()

	return DSN{
		Backend:  backend,
		Scheme:   u.Scheme,
		User:     u.User.Username(),
		Password: password,
		Host:     u.Hostname(),
		Port:     port,
		Database: database,
		RawQuery: u.RawQuery,
	}, nil
}

// String re-serializes DSN into connection string describing equivalent connection target.
func (d DSN) String() string {
	u := url.URL{
		Scheme:   d.Scheme,
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Database,
		RawQuery: d.RawQuery,
	}

	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}

	return u.String()
}

// Redacted works as String, but masks password component.
func (d DSN) Redacted() string {
	masked := d
	if masked.Password != "" {
		masked.Password = "xxxxx"
	}

	return masked.String()
}

// Document returns DSN components as JSON document.
func (d DSN) Document() ([]byte, error) {
	return json.Marshal(struct {
		Scheme   string `json:"scheme"`
		User     string `json:"user"`
		Password string `json:"password"`
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Database string `json:"database"`
	}{d.Scheme, d.User, d.Password, d.Host, d.Port, d.Database})
}

// DriverName returns name of database/sql driver able to handle DSN's backend family.
func (d DSN) DriverName() string {
	if d.Backend == BackendPostgres {
		return "pgx"
	}

	return "mysql"
}

// DriverSource returns DSN in format understandable by driver returned from DriverName.
// jackc/pgx accepts URI form, go-sql-driver/mysql requires its own form.
func (d DSN) DriverSource() string {
	if d.Backend == BackendPostgres {
		return d.String()
	}

	credentials := d.User
	if d.Password != "" {
		credentials = fmt.Sprintf("%s:%s", d.User, d.Password)
	}

	source := fmt.Sprintf("%s@tcp(%s:%d)/%s", credentials, d.Host, d.Port, d.Database)
	if d.RawQuery != "" {
		source += "?" + d.RawQuery
	}

	return source
}

// containsScheme tells whether scheme belongs to accepted ones.
func containsScheme(accepted []string, scheme string) bool {
	for _, s := range accepted {
		if s == scheme {
			return true
		}
	}

	return false
}

// redactRaw masks password component of raw connection string in error messages.
func redactRaw(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	return u.Redacted()
}
