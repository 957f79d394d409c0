package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/useragent"
)

func TestCache_ReturnsEqualCopies(t *testing.T) {
	d, err := useragent.New(useragent.WithCacheSize(8))
	require.NoError(t, err)

	first, err := d.Parse(chromeDesktopUA, nil)
	require.NoError(t, err)
	second, err := d.Parse(chromeDesktopUA, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestCache_MutationIsolation(t *testing.T) {
	d, err := useragent.New(useragent.WithCacheSize(8))
	require.NoError(t, err)

	det, err := d.Parse(chromeDesktopUA, nil)
	require.NoError(t, err)
	k, ok := useragent.AsKnown(det)
	require.True(t, ok)
	k.Client.Name = "Tampered"
	k.OS.Version = "0"
	k.Device.Brand = "Tampered"

	again := known(t, d, chromeDesktopUA)
	assert.Equal(t, "Chrome", again.Client.Name)
	assert.Equal(t, "10", again.OS.Version)
	assert.Empty(t, again.Device.Brand)

	bot, err := d.Parse(googlebotUA, nil)
	require.NoError(t, err)
	b, _ := useragent.AsBot(bot)
	b.Producer.Name = "Tampered"

	bot, err = d.Parse(googlebotUA, nil)
	require.NoError(t, err)
	b, _ = useragent.AsBot(bot)
	assert.Equal(t, "Google Inc.", b.Producer.Name)
}

func TestCache_HintsArePartOfTheKey(t *testing.T) {
	d, err := useragent.New(useragent.WithCacheSize(8))
	require.NoError(t, err)

	plain := known(t, d, chromeDesktopUA)
	assert.False(t, plain.IsMobile())

	hinted := known(t, d, chromeDesktopUA, clienthints.Header{Name: "Sec-CH-UA-Mobile", Value: "?1"})
	assert.True(t, hinted.IsMobile())

	plain = known(t, d, chromeDesktopUA)
	assert.False(t, plain.IsMobile())
}

func TestCache_MatchesUncached(t *testing.T) {
	cached, err := useragent.New(useragent.WithCacheSize(2))
	require.NoError(t, err)
	uncached := detector(t)

	uas := []string{chromeDesktopUA, chromeAndroidUA, safariIPhoneUA, googlebotUA, chromeDesktopUA, xboxUA, chromeAndroidUA}
	for _, ua := range uas {
		want, err := uncached.Parse(ua, nil)
		require.NoError(t, err)
		got, err := cached.Parse(ua, nil)
		require.NoError(t, err)
		assert.Equal(t, want, got, ua)
	}
}
