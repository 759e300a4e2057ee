// Package config defines the vault rpc process's configuration surface,
// loaded once at startup via go-zero's conf.MustLoad, extended with the
// TLS, keystore, and crypto-salt fields the service needs.
package config

import (
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/zrpc"
)

// Config is the vault rpc service's top-level configuration.
type Config struct {
	zrpc.RpcServerConf

	// Mode selects TLS ("production") vs plaintext listening, mirroring the
	// source's MODE env var.
	Mode string `json:",default=dev,options=dev|production,env=MODE"`

	// GRPC composes the address the server listens on; ListenAddr
	// overrides whatever ListenOn the embedded RpcServerConf carries.
	GRPC struct {
		Host    string `json:",env=GRPC_HOST,default=0.0.0.0"`
		Port    int    `json:",env=GRPC_PORT,default=8080"`
		SSLPort int    `json:",env=GRPC_SSL_PORT,default=8443"`
	}

	TLS struct {
		CertFile string `json:",optional,env=SSL_CERTIFICATE"`
		KeyFile  string `json:",optional,env=SSL_KEY"`
	} `json:",optional"`

	Database struct {
		Host     string `json:",default=localhost"`
		Port     int    `json:",default=5432"`
		User     string
		Password string
		DBName   string `json:",env=DB_NAME"`
		SSLMode  string `json:",default=disable"`
	}

	Redis struct {
		Host     string `json:",default=localhost"`
		Port     int    `json:",default=6379"`
		Password string `json:",optional"`
		DB       int    `json:",default=0"`
	}

	Crypto struct {
		// HashingSalt derives HASHING_KEY (HMAC) and the AES-GCM encryption
		// key via cryptoutil.LoadKey. A single salt, two derivation infos.
		HashingSalt string `json:",env=HASHING_SALT"`
	}

	Keystore struct {
		Path string `json:",env=KEYSTORE_PATH"`
	}

	OTP struct {
		CodeTTLSeconds    int64 `json:",default=300"`
		RetryAfterSeconds int64 `json:",default=60"`
	}

	SessionToken struct {
		LifetimeDays int64 `json:",default=30"`
	}
}

// ListenAddr composes GRPC_HOST with GRPC_PORT, or GRPC_SSL_PORT in
// production mode, into the address the gRPC server listens on.
func (c Config) ListenAddr() string {
	port := c.GRPC.Port
	if c.Mode == "production" {
		port = c.GRPC.SSLPort
	}
	return fmt.Sprintf("%s:%d", c.GRPC.Host, port)
}

// SessionTokenLifetime returns the configured LLT validity window.
func (c Config) SessionTokenLifetime() time.Duration {
	return time.Duration(c.SessionToken.LifetimeDays) * 24 * time.Hour
}

// OTPCodeTTL returns how long a sent OTP code remains verifiable.
func (c Config) OTPCodeTTL() time.Duration {
	return time.Duration(c.OTP.CodeTTLSeconds) * time.Second
}

// OTPRetryAfter returns the minimum delay between OTP send attempts.
func (c Config) OTPRetryAfter() time.Duration {
	return time.Duration(c.OTP.RetryAfterSeconds) * time.Second
}
