package useragent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/useragent"
)

func TestParseBot(t *testing.T) {
	d := detector(t)

	det, err := d.Parse(googlebotUA, nil)
	require.NoError(t, err)
	require.True(t, det.IsBot())

	bot, ok := useragent.AsBot(det)
	require.True(t, ok)
	assert.Equal(t, "Googlebot", bot.Name)
	assert.Equal(t, "Search bot", bot.Category)
	require.NotNil(t, bot.Producer)
	assert.Equal(t, "Google Inc.", bot.Producer.Name)

	_, isKnown := useragent.AsKnown(det)
	assert.False(t, isKnown)
}

func TestParseBotIgnoresHints(t *testing.T) {
	d := detector(t)

	det, err := d.Parse(googlebotUA, []clienthints.Header{
		{Name: "Sec-CH-UA-Mobile", Value: "?1"},
		{Name: "Sec-CH-UA-Platform", Value: `"Android"`},
	})
	require.NoError(t, err)
	bot, ok := useragent.AsBot(det)
	require.True(t, ok)
	assert.Equal(t, "Googlebot", bot.Name)
}

func TestParseGenericBot(t *testing.T) {
	d := detector(t)

	tests := []struct {
		name  string
		ua    string
		isBot bool
	}{
		{"crawler suffix", "MyCustomCrawler/1.0", true},
		{"spider token", "Mozilla/5.0 (compatible; examplespider/2.0)", true},
		{"monitor", "Mozilla/5.0+(compatible; UptimeRobot/2.0; http://www.uptimerobot.com/)", true},
		{"cubot phone", "Mozilla/5.0 (Linux; Android 9; CUBOT P30) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.91 Mobile Safari/537.36", false},
		{"plain desktop", chromeDesktopUA, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det, err := d.Parse(tt.ua, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.isBot, det.IsBot())
		})
	}
}

func TestParseDesktopBrowser(t *testing.T) {
	k := known(t, detector(t), chromeDesktopUA)

	require.NotNil(t, k.Client)
	assert.Equal(t, useragent.ClientTypeBrowser, k.Client.Type)
	assert.Equal(t, "Chrome", k.Client.Name)
	assert.Equal(t, "120", k.Client.Version)
	assert.Equal(t, "Blink", k.Client.Engine)
	assert.Equal(t, "120.0.0.0", k.Client.EngineVersion)
	assert.Equal(t, "Chrome", k.Client.Family)

	require.NotNil(t, k.OS)
	assert.Equal(t, useragent.OS{Name: "Windows", Version: "10", Platform: "x64"}, *k.OS)

	assert.Equal(t, useragent.DeviceTypeDesktop, k.Device.Type)
	assert.True(t, k.IsDesktop())
	assert.False(t, k.IsMobile())
	assert.True(t, k.IsBrowser())
}

func TestParseSmartphoneBrowser(t *testing.T) {
	k := known(t, detector(t), chromeAndroidUA)

	require.NotNil(t, k.Client)
	assert.Equal(t, "Chrome Mobile", k.Client.Name)
	assert.Equal(t, "120", k.Client.Version)

	require.NotNil(t, k.OS)
	assert.Equal(t, "Android", k.OS.Name)
	assert.Equal(t, "13", k.OS.Version)

	assert.Equal(t, useragent.DeviceTypeSmartPhone, k.Device.Type)
	assert.Equal(t, "Google", k.Device.Brand)
	assert.Equal(t, "Pixel 7", k.Device.Model)
	assert.True(t, k.IsMobile())
	assert.True(t, k.IsSmartPhone())
	assert.False(t, k.IsDesktop())
}

func TestParseUnmatched(t *testing.T) {
	k := known(t, detector(t), unknownUA)

	assert.Nil(t, k.Client)
	assert.Nil(t, k.OS)
	assert.Equal(t, useragent.Device{}, k.Device)

	p := k.Predicates()
	assert.True(t, p.Mobile, "an unclassified device is not a desktop, so it counts as mobile")
	p.Mobile = false
	assert.Equal(t, useragent.Predicates{}, p)
}

func TestParseMobileHintOnDesktop(t *testing.T) {
	k := known(t, detector(t), chromeDesktopUA, clienthints.Header{Name: "Sec-CH-UA-Mobile", Value: "?1"})

	assert.True(t, k.Device.MobileClientHint)
	assert.Equal(t, useragent.DeviceTypeDesktop, k.Device.Type)
	assert.True(t, k.IsDesktop())
	assert.True(t, k.IsMobile())
}

func TestParseDevices(t *testing.T) {
	d := detector(t)

	tests := []struct {
		name       string
		ua         string
		deviceType useragent.DeviceType
		brand      string
		model      string
		client     string
		os         string
	}{
		{
			name:       "iphone safari",
			ua:         safariIPhoneUA,
			deviceType: useragent.DeviceTypeSmartPhone,
			brand:      "Apple",
			model:      "iPhone",
			client:     "Mobile Safari",
			os:         "iOS",
		},
		{
			name:       "samsung tablet",
			ua:         samsungTabUA,
			deviceType: useragent.DeviceTypeTablet,
			brand:      "Samsung",
			model:      "Galaxy Tab (SM-T500)",
			client:     "Chrome",
			os:         "Android",
		},
		{
			name:       "xbox",
			ua:         xboxUA,
			deviceType: useragent.DeviceTypeConsole,
			brand:      "Microsoft",
			model:      "Xbox One",
			client:     "Microsoft Edge",
			os:         "Windows",
		},
		{
			name:       "ubuntu firefox",
			ua:         firefoxLinuxUA,
			deviceType: useragent.DeviceTypeDesktop,
			client:     "Firefox",
			os:         "Ubuntu",
		},
		{
			name:       "nokia feature phone",
			ua:         "Nokia6300/2.0 (05.00) Profile/MIDP-2.0 Configuration/CLDC-1.1",
			deviceType: useragent.DeviceTypeFeaturePhone,
			brand:      "Nokia",
			model:      "6300",
			os:         "Java ME",
		},
		{
			name:       "hbbtv samsung",
			ua:         "HbbTV/1.2.1 (+DRM;Samsung;SmartTV2015;T-HKMFDEUC-1490.3;;) WebKit",
			deviceType: useragent.DeviceTypeTelevision,
			brand:      "Samsung",
			model:      "Smart TV (2015)",
		},
		{
			name:       "hbbtv without known brand",
			ua:         "HbbTV/1.1.1 (;;;;;) Maple",
			deviceType: useragent.DeviceTypeTelevision,
		},
		{
			name:       "android tablet fragment",
			ua:         "Mozilla/5.0 (Android 10; Tablet; rv:68.0) Gecko/68.0 Firefox/68.0",
			deviceType: useragent.DeviceTypeTablet,
			client:     "Firefox Mobile",
			os:         "Android",
		},
		{
			name:       "windows touch",
			ua:         "Mozilla/5.0 (Windows NT 6.3; Win64; x64; Trident/7.0; Touch; rv:11.0) like Gecko",
			deviceType: useragent.DeviceTypeTablet,
			client:     "Internet Explorer",
			os:         "Windows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := known(t, d, tt.ua)
			assert.Equal(t, tt.deviceType, k.Device.Type)
			assert.Equal(t, tt.brand, k.Device.Brand)
			assert.Equal(t, tt.model, k.Device.Model)

			if tt.client == "" {
				assert.Nil(t, k.Client)
			} else if assert.NotNil(t, k.Client) {
				assert.Equal(t, tt.client, k.Client.Name)
			}
			if tt.os == "" {
				assert.Nil(t, k.OS)
			} else if assert.NotNil(t, k.OS) {
				assert.Equal(t, tt.os, k.OS.Name)
			}
		})
	}
}

func TestParseClients(t *testing.T) {
	d := detector(t)

	tests := []struct {
		ua      string
		typ     useragent.ClientType
		name    string
		version string
	}{
		{"curl/8.4.0", useragent.ClientTypeLibrary, "curl", "8.4"},
		{"python-requests/2.31.0", useragent.ClientTypeLibrary, "Python Requests", "2.31"},
		{"Go-http-client/1.1", useragent.ClientTypeLibrary, "Go-http-client", "1.1"},
		{"VLC/3.0.18 LibVLC/3.0.18", useragent.ClientTypeMediaPlayer, "VLC", "3.0.18"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:115.0) Gecko/20100101 Thunderbird/115.6.0", useragent.ClientTypePim, "Thunderbird", "115.6"},
		{"Akregator/5.24.3; syndication", useragent.ClientTypeFeedReader, "Akregator", "5.24.3"},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 [FBAV/442.0.0.35.107;FBBV/520000000]", useragent.ClientTypeMobileApp, "Facebook", "442.0.0.35.107"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := known(t, d, tt.ua)
			require.NotNil(t, k.Client)
			assert.Equal(t, tt.typ, k.Client.Type)
			assert.Equal(t, tt.name, k.Client.Name)
			assert.Equal(t, tt.version, k.Client.Version)
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	d := detector(t)
	headers := []clienthints.Header{{Name: "Sec-CH-UA-Platform", Value: `"Windows"`}}

	first, err := d.Parse(chromeDesktopUA, headers)
	require.NoError(t, err)
	for range 10 {
		again, err := d.Parse(chromeDesktopUA, headers)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseEmptyUserAgent(t *testing.T) {
	d := detector(t)

	for _, ua := range []string{"", "   "} {
		det, err := d.Parse(ua, nil)
		assert.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
		assert.Nil(t, det)
	}
}

func TestParseHugeUserAgent(t *testing.T) {
	ua := chromeDesktopUA + strings.Repeat(" x", 2000)
	k := known(t, detector(t), ua)
	require.NotNil(t, k.Client)
	assert.Equal(t, "Chrome", k.Client.Name)
}
