package common

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeUnits(t *testing.T) {
	assert.Equal(t, int64(86400), OneDay)
	assert.Equal(t, int64(604800), OneWeek)
	assert.Equal(t, int64(31536000), OneYear)
	assert.Equal(t, time.Hour, Duration(OneHour))
}

func TestBases(t *testing.T) {
	assert.Equal(t, "1000000000000000000", OneEth().String())

	// fresh value per call
	a := OneEth()
	a.SetInt64(1)
	assert.Equal(t, "1000000000000000000", OneEth().String())

	assert.Equal(t, 256, MaxUint256().BitLen())
	assert.Equal(t, 128, MaxUint128().BitLen())
	assert.Equal(t, 0, new(big.Int).Add(MaxUint128(), big.NewInt(1)).Cmp(new(big.Int).Lsh(big.NewInt(1), 128)))
	assert.Equal(t, 0, InterestRateBase().Cmp(PriceBase()))
}
