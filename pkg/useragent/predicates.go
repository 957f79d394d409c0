package useragent

// IsMobile is true for an explicit mobile client hint, then for handheld
// device types, false for living-room device types, then true for
// mobile-only browsers, and otherwise the negation of IsDesktop.
//
// IsMobile and IsDesktop are independent: a mobile hint on a UA classified
// as desktop makes both true.
func (k *Known) IsMobile() bool {
	if k.Device.MobileClientHint {
		return true
	}

	switch k.Device.Type {
	case DeviceTypeFeaturePhone, DeviceTypeSmartPhone, DeviceTypeTablet,
		DeviceTypePhablet, DeviceTypeCamera, DeviceTypePortableMediaPlayer:
		return true
	case DeviceTypeTelevision, DeviceTypeSmartDisplay, DeviceTypeConsole:
		return false
	}

	if usesMobileBrowser(k.Client) {
		return true
	}

	return !k.IsDesktop()
}

// IsDesktop is true only when the device type is desktop.
func (k *Known) IsDesktop() bool { return k.Device.Type == DeviceTypeDesktop }

// IsTouchEnabled reports whether the device has a touch screen.
func (k *Known) IsTouchEnabled() bool { return k.Device.TouchEnabled }

// IsBrowser reports whether the client is a browser.
func (k *Known) IsBrowser() bool { return k.clientIs(ClientTypeBrowser) }

// IsLibrary reports whether the client is a library.
func (k *Known) IsLibrary() bool { return k.clientIs(ClientTypeLibrary) }

// IsMobileApp reports whether the client is a mobile app.
func (k *Known) IsMobileApp() bool { return k.clientIs(ClientTypeMobileApp) }

// IsMediaPlayer reports whether the client is a media player.
func (k *Known) IsMediaPlayer() bool { return k.clientIs(ClientTypeMediaPlayer) }

// IsFeedReader reports whether the client is a feed reader.
func (k *Known) IsFeedReader() bool { return k.clientIs(ClientTypeFeedReader) }

// IsPim reports whether the client is a personal information manager.
func (k *Known) IsPim() bool { return k.clientIs(ClientTypePim) }

// IsConsole reports whether the device is a console.
func (k *Known) IsConsole() bool { return k.Device.Type == DeviceTypeConsole }

// IsCarBrowser reports whether the device is a car browser.
func (k *Known) IsCarBrowser() bool { return k.Device.Type == DeviceTypeCarBrowser }

// IsCamera reports whether the device is a camera.
func (k *Known) IsCamera() bool { return k.Device.Type == DeviceTypeCamera }

// IsPortableMediaPlayer reports whether the device is a portable media player.
func (k *Known) IsPortableMediaPlayer() bool { return k.Device.Type == DeviceTypePortableMediaPlayer }

// IsNotebook reports whether the device is a notebook.
func (k *Known) IsNotebook() bool { return k.Device.Type == DeviceTypeNotebook }

// IsTelevision reports whether the device is a television.
func (k *Known) IsTelevision() bool { return k.Device.Type == DeviceTypeTelevision }

// IsSmartDisplay reports whether the device is a smart display.
func (k *Known) IsSmartDisplay() bool { return k.Device.Type == DeviceTypeSmartDisplay }

// IsFeaturePhone reports whether the device is a feature phone.
func (k *Known) IsFeaturePhone() bool { return k.Device.Type == DeviceTypeFeaturePhone }

// IsSmartPhone reports whether the device is a smartphone.
func (k *Known) IsSmartPhone() bool { return k.Device.Type == DeviceTypeSmartPhone }

// IsTablet reports whether the device is a tablet.
func (k *Known) IsTablet() bool { return k.Device.Type == DeviceTypeTablet }

// IsSmartSpeaker reports whether the device is a smart speaker.
func (k *Known) IsSmartSpeaker() bool { return k.Device.Type == DeviceTypeSmartSpeaker }

// IsPeripheral reports whether the device is a peripheral.
func (k *Known) IsPeripheral() bool { return k.Device.Type == DeviceTypePeripheral }

func (k *Known) clientIs(t ClientType) bool {
	return k.Client != nil && k.Client.Type == t
}

// usesMobileBrowser reports whether c is a browser the catalog marks as
// mobile-only.
func usesMobileBrowser(c *Client) bool {
	return c != nil && c.Type == ClientTypeBrowser && c.mobileOnly
}
