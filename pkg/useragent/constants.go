package useragent

import "strings"

// DeviceType is the form factor of a device. The zero value means the type
// could not be determined.
type DeviceType string

const (
	DeviceTypeDesktop             DeviceType = "desktop"
	DeviceTypeSmartPhone          DeviceType = "smartphone"
	DeviceTypeFeaturePhone        DeviceType = "feature_phone"
	DeviceTypeTablet              DeviceType = "tablet"
	DeviceTypePhablet             DeviceType = "phablet"
	DeviceTypeConsole             DeviceType = "console"
	DeviceTypeTelevision          DeviceType = "television"
	DeviceTypeSmartDisplay        DeviceType = "smart_display"
	DeviceTypeSmartSpeaker        DeviceType = "smart_speaker"
	DeviceTypeCamera              DeviceType = "camera"
	DeviceTypePortableMediaPlayer DeviceType = "portable_media_player"
	DeviceTypePeripheral          DeviceType = "peripheral"
	DeviceTypeNotebook            DeviceType = "notebook"
	DeviceTypeCarBrowser          DeviceType = "car_browser"
	DeviceTypeWearable            DeviceType = "wearable"

	// DeviceTypeUnknown is an explicit "unknown" category a corpus may
	// assign. It is not the same as an undetermined (empty) type.
	DeviceTypeUnknown DeviceType = "unknown"
)

var deviceTypeAliases = map[string]DeviceType{
	"desktop":               DeviceTypeDesktop,
	"smartphone":            DeviceTypeSmartPhone,
	"smart_phone":           DeviceTypeSmartPhone,
	"feature_phone":         DeviceTypeFeaturePhone,
	"tablet":                DeviceTypeTablet,
	"phablet":               DeviceTypePhablet,
	"console":               DeviceTypeConsole,
	"tv":                    DeviceTypeTelevision,
	"television":            DeviceTypeTelevision,
	"smart_display":         DeviceTypeSmartDisplay,
	"smart_speaker":         DeviceTypeSmartSpeaker,
	"camera":                DeviceTypeCamera,
	"portable_media_player": DeviceTypePortableMediaPlayer,
	"peripheral":            DeviceTypePeripheral,
	"notebook":              DeviceTypeNotebook,
	"car_browser":           DeviceTypeCarBrowser,
	"wearable":              DeviceTypeWearable,
	"unknown":               DeviceTypeUnknown,
}

// ParseDeviceType maps a corpus device name ("smartphone", "feature phone",
// "tv", ...) to a DeviceType.
func ParseDeviceType(name string) (DeviceType, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	dt, ok := deviceTypeAliases[key]
	return dt, ok
}

// ClientType is the kind of software that sent the request.
type ClientType string

const (
	ClientTypeBrowser     ClientType = "browser"
	ClientTypeMobileApp   ClientType = "mobile_app"
	ClientTypeLibrary     ClientType = "library"
	ClientTypeMediaPlayer ClientType = "media_player"
	ClientTypeFeedReader  ClientType = "feed_reader"
	ClientTypePim         ClientType = "pim"
)
