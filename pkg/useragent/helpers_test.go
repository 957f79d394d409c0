package useragent_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/useragent"
)

const (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	chromeAndroidUA = "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	webviewUA       = "Mozilla/5.0 (Linux; Android 13; Pixel 7 Build/TQ3A.230901.001; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/120.0.6099.144 Mobile Safari/537.36"
	safariIPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1"
	firefoxLinuxUA  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
	samsungTabUA    = "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36"
	xboxUA          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; Xbox; Xbox One) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.102 Safari/537.36 Edge/18.19041"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	unknownUA       = "Zzzz/1.0"
)

var sharedDetector = sync.OnceValues(func() (*useragent.Detector, error) {
	return useragent.New()
})

// detector returns a detector over the embedded corpus, shared by tests.
func detector(t testing.TB) *useragent.Detector {
	t.Helper()
	d, err := sharedDetector()
	require.NoError(t, err)
	return d
}

func known(t testing.TB, d *useragent.Detector, ua string, headers ...clienthints.Header) *useragent.Known {
	t.Helper()
	det, err := d.Parse(ua, headers)
	require.NoError(t, err)
	k, ok := useragent.AsKnown(det)
	require.True(t, ok, "expected a known detection for %q", ua)
	return k
}

// corpusFS returns a complete but empty corpus with the given files
// replaced.
func corpusFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, name := range []string{
		"bots.yml", "oss.yml",
		"client/feed_readers.yml", "client/mobile_apps.yml", "client/mediaplayers.yml",
		"client/pim.yml", "client/browsers.yml", "client/libraries.yml",
		"client/browser_engine.yml",
	} {
		fsys[name] = &fstest.MapFile{Data: []byte("[]\n")}
	}
	for _, name := range []string{
		"client/hints/apps.yml", "client/hints/browsers.yml",
		"device/televisions.yml", "device/notebooks.yml", "device/consoles.yml",
		"device/car_browsers.yml", "device/cameras.yml",
		"device/portable_media_player.yml", "device/mobiles.yml",
	} {
		fsys[name] = &fstest.MapFile{Data: []byte("{}\n")}
	}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func httptestRequest(ua string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", ua)
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	return req
}
