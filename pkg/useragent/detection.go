package useragent

import "encoding/json"

// Detection is the outcome of a resolution: exactly one of *Bot or *Known.
type Detection interface {
	IsBot() bool
	clone() Detection
}

// AsBot returns the bot identity when d is a bot detection.
func AsBot(d Detection) (*Bot, bool) {
	b, ok := d.(*Bot)
	return b, ok
}

// AsKnown returns the device/client/OS triple when d is not a bot.
func AsKnown(d Detection) (*Known, bool) {
	k, ok := d.(*Known)
	return k, ok
}

// Bot is an automated agent identified by the bot rule list.
type Bot struct {
	Name     string       `json:"name"`
	Category string       `json:"category,omitempty"`
	URL      string       `json:"url,omitempty"`
	Producer *BotProducer `json:"producer,omitempty"`
}

// BotProducer names the organisation operating a bot.
type BotProducer struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

func (b *Bot) IsBot() bool { return true }

func (b *Bot) clone() Detection {
	c := *b
	if b.Producer != nil {
		p := *b.Producer
		c.Producer = &p
	}
	return &c
}

// Client is the software that issued the request.
type Client struct {
	Type          ClientType `json:"type"`
	Name          string     `json:"name"`
	Version       string     `json:"version,omitempty"`
	Engine        string     `json:"engine,omitempty"`
	EngineVersion string     `json:"engine_version,omitempty"`
	Family        string     `json:"family,omitempty"`

	mobileOnly bool
}

// Device is the hardware the request came from. A zero Type means the
// device could not be classified.
type Device struct {
	Type             DeviceType `json:"device_type,omitempty"`
	Brand            string     `json:"brand,omitempty"`
	Model            string     `json:"model,omitempty"`
	TouchEnabled     bool       `json:"touch_enabled"`
	MobileClientHint bool       `json:"mobile_client_hint"`
}

// OS is the operating system of the device.
type OS struct {
	Name     string `json:"name"`
	Version  string `json:"version,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// Known is a non-bot detection. Device is always present, Client and OS
// are nil when nothing matched.
type Known struct {
	Client *Client `json:"client,omitempty"`
	Device Device  `json:"device"`
	OS     *OS     `json:"os,omitempty"`
}

func (k *Known) IsBot() bool { return false }

func (k *Known) clone() Detection {
	c := &Known{Device: k.Device}
	if k.Client != nil {
		cl := *k.Client
		c.Client = &cl
	}
	if k.OS != nil {
		os := *k.OS
		c.OS = &os
	}
	return c
}

// MarshalJSON attaches the "is" predicate object to the known fields.
func (k *Known) MarshalJSON() ([]byte, error) {
	type known Known
	return json.Marshal(struct {
		*known
		Is Predicates `json:"is"`
	}{(*known)(k), k.Predicates()})
}

// Predicates is the serialized set of derived booleans.
type Predicates struct {
	Desktop             bool `json:"desktop"`
	Mobile              bool `json:"mobile"`
	TouchEnabled        bool `json:"touch_enabled"`
	SmartPhone          bool `json:"smart_phone"`
	FeaturePhone        bool `json:"feature_phone"`
	Browser             bool `json:"browser"`
	Camera              bool `json:"camera"`
	CarBrowser          bool `json:"car_browser"`
	FeedReader          bool `json:"feed_reader"`
	Console             bool `json:"console"`
	Library             bool `json:"library"`
	MediaPlayer         bool `json:"media_player"`
	PortableMediaPlayer bool `json:"portable_media_player"`
	MobileApp           bool `json:"mobile_app"`
	Television          bool `json:"television"`
	SmartDisplay        bool `json:"smart_display"`
	Tablet              bool `json:"tablet"`
	SmartSpeaker        bool `json:"smart_speaker"`
	Pim                 bool `json:"pim"`
	Peripheral          bool `json:"peripheral"`
	Robot               bool `json:"robot"`
}

// Predicates computes every derived boolean of k.
func (k *Known) Predicates() Predicates {
	return Predicates{
		Desktop:             k.IsDesktop(),
		Mobile:              k.IsMobile(),
		TouchEnabled:        k.IsTouchEnabled(),
		SmartPhone:          k.IsSmartPhone(),
		FeaturePhone:        k.IsFeaturePhone(),
		Browser:             k.IsBrowser(),
		Camera:              k.IsCamera(),
		CarBrowser:          k.IsCarBrowser(),
		FeedReader:          k.IsFeedReader(),
		Console:             k.IsConsole(),
		Library:             k.IsLibrary(),
		MediaPlayer:         k.IsMediaPlayer(),
		PortableMediaPlayer: k.IsPortableMediaPlayer(),
		MobileApp:           k.IsMobileApp(),
		Television:          k.IsTelevision(),
		SmartDisplay:        k.IsSmartDisplay(),
		Tablet:              k.IsTablet(),
		SmartSpeaker:        k.IsSmartSpeaker(),
		Pim:                 k.IsPim(),
		Peripheral:          k.IsPeripheral(),
		Robot:               false,
	}
}
