package config

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
)

type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string
	TokenA    common.Address
	TokenB    common.Address
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	tokenA, err := tokenFromEnv("TOKEN_A")
	if err != nil {
		return nil, err
	}
	tokenB, err := tokenFromEnv("TOKEN_B")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:      addr,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		TokenA:    tokenA,
		TokenB:    tokenB,
	}

	return cfg, nil
}

func tokenFromEnv(key string) (common.Address, error) {
	v := os.Getenv(key)
	if v == "" {
		return common.Address{}, fmt.Errorf("%w: %s", ErrMissingToken, key)
	}
	if !common.IsHexAddress(v) {
		return common.Address{}, fmt.Errorf("%w: %s=%q", ErrInvalidTokenAddress, key, v)
	}
	return common.HexToAddress(v), nil
}
