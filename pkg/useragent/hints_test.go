package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/useragent"
)

func TestHints_BrandSupersedesUA(t *testing.T) {
	d := detector(t)

	k := known(t, d, chromeDesktopUA, clienthints.Header{
		Name:  "Sec-CH-UA-Full-Version-List",
		Value: `"Not_A Brand";v="8.0.0.0", "Chromium";v="120.0.6099.130", "Microsoft Edge";v="120.0.2210.91"`,
	})
	require.NotNil(t, k.Client)
	assert.Equal(t, "Microsoft Edge", k.Client.Name)
	assert.Equal(t, "120.0.2210.91", k.Client.Version)
	assert.Equal(t, "Internet Explorer", k.Client.Family)
	assert.Equal(t, "Blink", k.Client.Engine)
}

func TestHints_ChromiumDoesNotOverrideSpecificBrowser(t *testing.T) {
	k := known(t, detector(t), chromeDesktopUA, clienthints.Header{
		Name:  "Sec-CH-UA",
		Value: `"Chromium";v="120", "Not_A Brand";v="8"`,
	})
	require.NotNil(t, k.Client)
	assert.Equal(t, "Chrome", k.Client.Name)
	assert.Equal(t, "120", k.Client.Version)
}

func TestHints_MobileVariantKeepsName(t *testing.T) {
	k := known(t, detector(t), chromeAndroidUA, clienthints.Header{
		Name:  "Sec-CH-UA-Full-Version-List",
		Value: `"Google Chrome";v="120.0.6099.144", "Chromium";v="120.0.6099.144"`,
	})
	require.NotNil(t, k.Client)
	assert.Equal(t, "Chrome Mobile", k.Client.Name)
	assert.Equal(t, "120.0.6099.144", k.Client.Version)
}

func TestHints_BrowserWithoutUAMatch(t *testing.T) {
	k := known(t, detector(t), unknownUA, clienthints.Header{Name: "Sec-CH-UA", Value: `"Brave";v="120"`})
	require.NotNil(t, k.Client)
	assert.Equal(t, useragent.ClientTypeBrowser, k.Client.Type)
	assert.Equal(t, "Brave", k.Client.Name)
	assert.Equal(t, "120", k.Client.Version)
	assert.Empty(t, k.Client.Engine)
}

func TestHints_FullVersionPreferred(t *testing.T) {
	k := known(t, detector(t), chromeDesktopUA,
		clienthints.Header{Name: "Sec-CH-UA", Value: `"Google Chrome";v="120"`},
		clienthints.Header{Name: "Sec-CH-UA-Full-Version", Value: `"120.0.6099.130"`},
	)
	require.NotNil(t, k.Client)
	assert.Equal(t, "Chrome", k.Client.Name)
	assert.Equal(t, "120.0.6099.130", k.Client.Version)
}

func TestHints_Platform(t *testing.T) {
	d := detector(t)

	tests := []struct {
		name     string
		headers  []clienthints.Header
		os       string
		version  string
		platform string
	}{
		{
			name: "windows 11",
			headers: []clienthints.Header{
				{Name: "Sec-CH-UA-Platform", Value: `"Windows"`},
				{Name: "Sec-CH-UA-Platform-Version", Value: `"15.0.0"`},
			},
			os: "Windows", version: "11", platform: "x64",
		},
		{
			name: "windows 10",
			headers: []clienthints.Header{
				{Name: "Sec-CH-UA-Platform", Value: `"Windows"`},
				{Name: "Sec-CH-UA-Platform-Version", Value: `"10.0.0"`},
			},
			os: "Windows", version: "10", platform: "x64",
		},
		{
			name: "empty version keeps ua version",
			headers: []clienthints.Header{
				{Name: "Sec-CH-UA-Platform", Value: `"Windows"`},
				{Name: "Sec-CH-UA-Platform-Version", Value: `""`},
			},
			os: "Windows", version: "10", platform: "x64",
		},
		{
			name: "arm architecture",
			headers: []clienthints.Header{
				{Name: "Sec-CH-UA-Arch", Value: `"arm"`},
			},
			os: "Windows", version: "10", platform: "ARM",
		},
		{
			name: "32 bit x86",
			headers: []clienthints.Header{
				{Name: "Sec-CH-UA-Arch", Value: `"x86"`},
				{Name: "Sec-CH-UA-Bitness", Value: `"32"`},
			},
			os: "Windows", version: "10", platform: "x86",
		},
		{
			name: "64 bit x86",
			headers: []clienthints.Header{
				{Name: "Sec-CH-UA-Arch", Value: `"x86"`},
				{Name: "Sec-CH-UA-Bitness", Value: `"64"`},
			},
			os: "Windows", version: "10", platform: "x64",
		},
		{
			name: "mac hint replaces name",
			headers: []clienthints.Header{
				{Name: "Sec-CH-UA-Platform", Value: `"macOS"`},
				{Name: "Sec-CH-UA-Platform-Version", Value: `"14.1.0"`},
			},
			os: "Mac", version: "14.1", platform: "x64",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := known(t, d, chromeDesktopUA, tt.headers...)
			require.NotNil(t, k.OS)
			assert.Equal(t, tt.os, k.OS.Name)
			assert.Equal(t, tt.version, k.OS.Version)
			assert.Equal(t, tt.platform, k.OS.Platform)
		})
	}
}

func TestHints_AppIdentity(t *testing.T) {
	d := detector(t)

	t.Run("browser app replaces webview", func(t *testing.T) {
		k := known(t, d, webviewUA, clienthints.Header{Name: "X-Requested-With", Value: "com.brave.browser"})
		require.NotNil(t, k.Client)
		assert.Equal(t, useragent.ClientTypeBrowser, k.Client.Type)
		assert.Equal(t, "Brave", k.Client.Name)
		assert.Empty(t, k.Client.Version)
	})

	t.Run("webview without app", func(t *testing.T) {
		k := known(t, d, webviewUA)
		require.NotNil(t, k.Client)
		assert.Equal(t, "Chrome Webview", k.Client.Name)
		assert.Equal(t, "120.0.6099.144", k.Client.Version)
	})

	t.Run("mobile app for unmatched ua", func(t *testing.T) {
		k := known(t, d, unknownUA, clienthints.Header{Name: "X-Requested-With", Value: "com.facebook.katana"})
		require.NotNil(t, k.Client)
		assert.Equal(t, useragent.ClientTypeMobileApp, k.Client.Type)
		assert.Equal(t, "Facebook", k.Client.Name)
	})

	t.Run("xmlhttprequest ignored", func(t *testing.T) {
		k := known(t, d, chromeDesktopUA, clienthints.Header{Name: "X-Requested-With", Value: "XMLHttpRequest"})
		require.NotNil(t, k.Client)
		assert.Equal(t, "Chrome", k.Client.Name)
	})
}

func TestHints_MobileFlag(t *testing.T) {
	d := detector(t)

	k := known(t, d, chromeAndroidUA, clienthints.Header{Name: "Sec-CH-UA-Mobile", Value: "?1"})
	assert.True(t, k.Device.MobileClientHint)

	k = known(t, d, chromeAndroidUA, clienthints.Header{Name: "Sec-CH-UA-Mobile", Value: "?0"})
	assert.False(t, k.Device.MobileClientHint)
	assert.True(t, k.IsMobile())
}

func TestParseRequest(t *testing.T) {
	d := detector(t)

	req := httptestRequest(chromeDesktopUA, map[string]string{
		"Sec-CH-UA-Platform":         `"Windows"`,
		"Sec-CH-UA-Platform-Version": `"15.0.0"`,
	})
	det, err := d.ParseRequest(req)
	require.NoError(t, err)
	k, ok := useragent.AsKnown(det)
	require.True(t, ok)
	require.NotNil(t, k.OS)
	assert.Equal(t, "11", k.OS.Version)

	_, err = d.ParseRequest(httptestRequest("", nil))
	assert.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
}

func TestHints_FormFactors(t *testing.T) {
	d := detector(t)

	k := known(t, d, unknownUA, clienthints.Header{Name: "Sec-CH-UA-Form-Factors", Value: `"Tablet"`})
	assert.Equal(t, useragent.DeviceTypeTablet, k.Device.Type)

	k = known(t, d, unknownUA, clienthints.Header{Name: "Sec-CH-UA-Form-Factors", Value: `"Desktop", "XR"`})
	assert.Equal(t, useragent.DeviceTypeWearable, k.Device.Type, "xr outranks desktop")

	// a device rule match wins over the hint
	k = known(t, d, chromeAndroidUA, clienthints.Header{Name: "Sec-CH-UA-Form-Factors", Value: `"Desktop"`})
	assert.Equal(t, useragent.DeviceTypeSmartPhone, k.Device.Type)
}

func TestHints_ModelFillsMissingRuleModel(t *testing.T) {
	fsys := corpusFS(map[string]string{
		"device/mobiles.yml": "Acme:\n  regex: 'Acme'\n  device: 'smartphone'\n",
	})
	d, err := useragent.New(useragent.WithCorpus(fsys))
	require.NoError(t, err)

	k := known(t, d, "Acme Phone", clienthints.Header{Name: "Sec-CH-UA-Model", Value: `"Rocket_5"`})
	assert.Equal(t, "Acme", k.Device.Brand)
	assert.Equal(t, "Rocket 5", k.Device.Model)

	// without a rule match the hint model is not used
	k = known(t, d, unknownUA, clienthints.Header{Name: "Sec-CH-UA-Model", Value: `"Rocket_5"`})
	assert.Empty(t, k.Device.Model)
}
