package config

import "errors"

var (
	// ErrConfigFileNotFound is returned when the config file does not exist
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrInvalidServerPort is returned when the listen port is out of range
	ErrInvalidServerPort = errors.New("server port must be between 1 and 65535")

	// ErrAPIBaseURLRequired is returned when the API base URL is empty
	ErrAPIBaseURLRequired = errors.New("api base URL is required")

	// ErrInvalidAPIBaseURL is returned when the API base URL is not an http(s) URL
	ErrInvalidAPIBaseURL = errors.New("api base URL must be an http or https URL")

	// ErrInvalidAPITimeout is returned when the API timeout cannot be parsed
	ErrInvalidAPITimeout = errors.New("api timeout must be a valid duration")

	// ErrInvalidCacheTTL is returned when the cache TTL cannot be parsed
	ErrInvalidCacheTTL = errors.New("cache ttl must be a valid duration")

	// ErrInvalidStorageType is returned when the durable storage type is unknown
	ErrInvalidStorageType = errors.New("storage type must be memory, leveldb, or redis")

	// ErrGoogleSecretRequired is returned when a Google client ID is set without a secret
	ErrGoogleSecretRequired = errors.New("google client secret is required when client id is set")

	// ErrGoogleClientIDRequired is returned when a Google secret is set without a client ID
	ErrGoogleClientIDRequired = errors.New("google client id is required when client secret is set")
)
