package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/useragent"
)

func TestCatalog_ByShort(t *testing.T) {
	c := useragent.DefaultCatalog()

	b, ok := c.ByShort("CH")
	require.True(t, ok)
	assert.Equal(t, "Chrome", b.Name)
	assert.Equal(t, "Chrome", b.Family)
	assert.False(t, b.MobileOnly)

	b, ok = c.ByShort("MF")
	require.True(t, ok)
	assert.Equal(t, "Mobile Safari", b.Name)
	assert.Equal(t, "Safari", b.Family)
	assert.True(t, b.MobileOnly)

	_, ok = c.ByShort("??")
	assert.False(t, ok)
}

func TestCatalog_SearchByName(t *testing.T) {
	c := useragent.DefaultCatalog()

	tests := []struct {
		query string
		want  string
	}{
		{"Chrome", "Chrome"},
		{"chrome", "Chrome"},
		{"CHROME", "Chrome"},
		{"Chrome Browser", "Chrome"},
		{"Yandex", "Yandex Browser"},
		{"yandexbrowser", "Yandex Browser"},
		{"Microsoft Edge", "Microsoft Edge"},
		{"Mobile  Safari", "Mobile Safari"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			b, ok := c.SearchByName(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.want, b.Name)
		})
	}

	for _, query := range []string{"", "   ", "browser", "Definitely Not A Browser"} {
		_, ok := c.SearchByName(query)
		assert.False(t, ok, "query %q", query)
	}
}

func TestCatalog_Family(t *testing.T) {
	b, ok := useragent.DefaultCatalog().SearchByName("Microsoft Edge")
	require.True(t, ok)
	assert.Equal(t, "PS", b.Short)
	assert.Equal(t, "Internet Explorer", b.Family)
}

func TestNewCatalog(t *testing.T) {
	c := useragent.NewCatalog(
		useragent.CatalogBrowser{Short: "AA", Name: "Alpha"},
		useragent.CatalogBrowser{Short: "AA", Name: "Shadowed"},
		useragent.CatalogBrowser{Short: "AB", Name: "alpha", Family: "Other"},
		useragent.CatalogBrowser{Short: "BB", Name: "Beta Browser", MobileOnly: true},
	)
	assert.Equal(t, 3, c.Len())

	b, ok := c.SearchByName("ALPHA")
	require.True(t, ok)
	assert.Equal(t, "AA", b.Short, "first name wins")

	_, ok = c.SearchByName("Shadowed")
	assert.False(t, ok)

	b, ok = c.ByShort("AB")
	require.True(t, ok)
	assert.Equal(t, "Other", b.Family)

	b, ok = c.SearchByName("Beta")
	require.True(t, ok)
	assert.True(t, b.MobileOnly)
}

func TestWithCatalog(t *testing.T) {
	catalog := useragent.NewCatalog(useragent.CatalogBrowser{Short: "ZZ", Name: "Chrome", Family: "Custom"})
	d, err := useragent.New(useragent.WithCatalog(catalog))
	require.NoError(t, err)
	assert.Same(t, catalog, d.Catalog())

	k := known(t, d, chromeDesktopUA)
	require.NotNil(t, k.Client)
	assert.Equal(t, "Custom", k.Client.Family)
}
