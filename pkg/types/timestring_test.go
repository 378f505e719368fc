package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	_, err = NewTimeStringFromString("9:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("09:60")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("0900")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Hour(t *testing.T) {
	h, err := TimeString("14:00").Hour()
	require.NoError(t, err)
	assert.Equal(t, 14, h)

	// "24:00" is the exclusive end-of-window marker
	h, err = TimeString("24:00").Hour()
	require.NoError(t, err)
	assert.Equal(t, 24, h)

	_, err = TimeString("14:30").Hour()
	assert.ErrorIs(t, err, ErrNotWholeHour)
}

func TestNewTimeStringFromHour(t *testing.T) {
	assert.Equal(t, TimeString("09:00"), NewTimeStringFromHour(9))
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromHour(0))
	assert.Equal(t, TimeString("24:00"), NewTimeStringFromHour(24))
}

func TestTimeString_AddHours(t *testing.T) {
	ts, err := TimeString("10:00").AddHours(2)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), ts)

	ts, err = TimeString("22:00").AddHours(2)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts)

	_, err = TimeString("23:00").AddHours(2)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("08:00"))
}
