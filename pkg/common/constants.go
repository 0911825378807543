package common

import (
	"math/big"
	"time"
)

// Project structure constants
const (
	// ConfigDir holds the networks config and the .env template written by `solo init`
	ConfigDir = "config"

	// BuildContractsDir is where truffle writes compiled contract artifacts
	BuildContractsDir = "build/contracts"

	// MigrationsStateDir holds per-network provisioning state
	MigrationsStateDir = "build/migrations"
)

// Time units in seconds, as used by the contracts' interest and expiry math.
const (
	OneSecond int64 = 1
	OneMinute       = 60 * OneSecond
	OneHour         = 60 * OneMinute
	OneDay          = 24 * OneHour
	OneWeek         = 7 * OneDay
	OneYear         = 365 * OneDay
)

// Duration converts a unit constant to a time.Duration.
func Duration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

// Fixed-point bases. Each call returns a fresh value so callers may mutate it.

// OneEth is 10^18 wei.
func OneEth() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
}

// InterestRateBase is the 18-decimal base of per-second interest rates.
func InterestRateBase() *big.Int {
	return OneEth()
}

// PriceBase is the 18-decimal base of oracle prices.
func PriceBase() *big.Int {
	return OneEth()
}

func MaxUint256() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
}

func MaxUint128() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
}
