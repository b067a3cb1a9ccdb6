package model

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestCoordinate_IsValid(t *testing.T) {
	assert.True(t, Coordinate{Latitude: 35.0116, Longitude: 135.7681}.IsValid())
	assert.True(t, Coordinate{Latitude: -90, Longitude: 180}.IsValid())
	assert.False(t, Coordinate{Latitude: 90.1, Longitude: 0}.IsValid())
	assert.False(t, Coordinate{Latitude: 0, Longitude: -180.5}.IsValid())
	assert.False(t, Coordinate{Latitude: math.NaN(), Longitude: 0}.IsValid())
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	c := Coordinate{Latitude: 34.9853, Longitude: 135.7581}
	p := c.ToPoint()
	assert.Equal(t, orb.Point{135.7581, 34.9853}, p)
	assert.Equal(t, c, CoordinateFromPoint(p))
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Latitude: 35.004573, Longitude: 135.768799}
	assert.Equal(t, "35.0046, 135.7688", c.String())
}

func TestLocationError(t *testing.T) {
	cause := errors.New("denied by user")
	err := NewLocationError(LocationPermissionDenied, cause)

	assert.Equal(t, LocationPermissionDenied, err.Kind)
	assert.True(t, err.Retryable())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission_denied")

	unknown := NewLocationError(LocationErrorKind("bogus"), nil)
	assert.Equal(t, LocationUnknown, unknown.Kind)

	messages := make(map[string]bool)
	for _, kind := range []LocationErrorKind{LocationPermissionDenied, LocationPositionUnavailable, LocationTimeout, LocationUnsupported, LocationUnknown} {
		messages[NewLocationError(kind, nil).Message] = true
	}
	assert.Len(t, messages, 5, "種別ごとに異なるメッセージであること")
}

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate(" 35.0116, 135.7681 ")
	assert.NoError(t, err)
	assert.Equal(t, Coordinate{Latitude: 35.0116, Longitude: 135.7681}, c)

	_, err = ParseCoordinate("91,0")
	assert.True(t, errors.Is(err, ErrOutOfRange))

	for _, bad := range []string{"", "35.0", "a,b", "1,2,3"} {
		_, err := ParseCoordinate(bad)
		assert.Error(t, err, bad)
	}
}
