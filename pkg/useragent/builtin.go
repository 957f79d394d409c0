package useragent

import "github.com/dmitrymomot/devicedetector/pkg/pattern"

type platformRule struct {
	re   *pattern.Lazy
	name string
}

// builtinPatterns are the fixed user-agent probes that back the OS platform
// and device-type heuristics. They share the corpus engine and its cache.
type builtinPatterns struct {
	platforms      []platformRule
	engineVersions map[string]*pattern.Lazy

	touch          *pattern.Lazy
	chromeMobile   *pattern.Lazy
	chromeTablet   *pattern.Lazy
	androidTablet  *pattern.Lazy
	androidMobile  *pattern.Lazy
	operaTablet    *pattern.Lazy
	operaTVStore   *pattern.Lazy
	androidTV      *pattern.Lazy
	smartTV        *pattern.Lazy
	tvToken        *pattern.Lazy
	desktop        *pattern.Lazy
	desktopExclude *pattern.Lazy
}

func newBuiltinPatterns(eng *pattern.Engine) *builtinPatterns {
	b := &builtinPatterns{
		platforms: []platformRule{
			{eng.Lazy(`arm[ _;)ev]|.*arm$|.*arm64|aarch64|Apple ?TV|Watch ?OS|Watch1,[12]`), "ARM"},
			{eng.Lazy(`loongarch64`), "LoongArch64"},
			{eng.Lazy(`mips`), "MIPS"},
			{eng.Lazy(`sh4`), "SuperH"},
			{eng.Lazy(`sparc64`), "SPARC64"},
			{eng.Lazy(`64-?bit|WOW64|(?:Intel)?x64|WINDOWS_64|win64|.*amd64|.*x86_?64`), "x64"},
			{eng.Lazy(`.*32bit|.*win32|(?:i[0-9]|x)86|i86pc`), "x86"},
		},
		touch:          eng.Lazy(`Touch`),
		chromeMobile:   eng.Lazy(`Chrome/[\.0-9]* (?:Mobile|eliboM)`),
		chromeTablet:   eng.Lazy(`Chrome/[\.0-9]* (?!Mobile)`),
		androidTablet:  eng.Lazy(`Android( [\.0-9]+)?; Tablet;|Tablet(?! PC)|.*\-tablet$`),
		androidMobile:  eng.Lazy(`Android( [\.0-9]+)?; Mobile;|.*\-mobile$`),
		operaTablet:    eng.Lazy(`Opera Tablet`),
		operaTVStore:   eng.Lazy(`Opera TV Store| OMI/`),
		androidTV:      eng.Lazy(`Andr0id|(?:Android(?: UHD)?|Google) TV|\(lite\) TV|BRAVIA| TV$`),
		smartTV:        eng.Lazy(`SmartTV|Tizen.+ TV .+$`),
		tvToken:        eng.Lazy(`\(TV;`),
		desktop:        eng.Lazy(`(?:Windows (?:NT|IoT)|X11; Linux x86_64)`),
		desktopExclude: eng.Lazy(`CE-HTML| Mozilla/|Andr[o0]id|Tablet|Mobile|iPhone|Windows Phone|ricoh|OculusBrowser|PicoBrowser|Lenovo|compatible; MSIE|Trident/|Tesla/|XBOX|FBMD/|ARM; ?([^)]+)`),
		engineVersions: make(map[string]*pattern.Lazy, len(engineVersionPatterns)),
	}
	for name, expr := range engineVersionPatterns {
		b.engineVersions[name] = eng.Lazy(expr)
	}
	return b
}

func (b *builtinPatterns) all() []*pattern.Lazy {
	out := make([]*pattern.Lazy, 0, len(b.platforms)+len(b.engineVersions)+12)
	for _, p := range b.platforms {
		out = append(out, p.re)
	}
	for _, p := range b.engineVersions {
		out = append(out, p)
	}
	return append(out,
		b.touch, b.chromeMobile, b.chromeTablet, b.androidTablet, b.androidMobile,
		b.operaTablet, b.operaTVStore, b.androidTV, b.smartTV, b.tvToken,
		b.desktop, b.desktopExclude,
	)
}

// matcher evaluates probes against one user agent and keeps the first
// evaluation error, so a chain of heuristics reads as plain conditions.
type matcher struct {
	ua  string
	err error
}

func (m *matcher) match(p *pattern.Lazy) bool {
	if m.err != nil {
		return false
	}
	ok, err := p.MatchString(m.ua)
	if err != nil {
		m.err = err
		return false
	}
	return ok
}
