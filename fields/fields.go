// Package fields holds the static registry of named browscap attributes:
// a closed enumeration of 50 fields, each with a stable name, a zero-based
// column index into a catalog row, and a flag marking whether it belongs
// to the default field projection.
//
// The registry never changes after init; Field identity is by pointer, so
// two Field values are equal iff they are the same instance.
package fields

// Field is a static descriptor for one named browscap attribute.
type Field struct {
	// Name is the stable, human-readable identifier (e.g. "BROWSER").
	Name string
	// Index is the zero-based column this field occupies in a catalog row.
	Index int
	// IsDefault marks whether this field belongs to the default
	// projection returned by Default().
	IsDefault bool
}

// The full field registry, in catalog column order. Column indices and
// default-projection membership match the upstream browscap schema this
// module was distilled from.
var (
	IsMasterParent            = &Field{Name: "IS_MASTER_PARENT", Index: 0, IsDefault: false}
	IsLiteMode                = &Field{Name: "IS_LITE_MODE", Index: 1, IsDefault: false}
	Parent                    = &Field{Name: "PARENT", Index: 2, IsDefault: false}
	Comment                   = &Field{Name: "COMMENT", Index: 3, IsDefault: false}
	Browser                   = &Field{Name: "BROWSER", Index: 4, IsDefault: true}
	BrowserType               = &Field{Name: "BROWSER_TYPE", Index: 5, IsDefault: true}
	BrowserBits               = &Field{Name: "BROWSER_BITS", Index: 6, IsDefault: false}
	BrowserMaker              = &Field{Name: "BROWSER_MAKER", Index: 7, IsDefault: false}
	BrowserModus              = &Field{Name: "BROWSER_MODUS", Index: 8, IsDefault: false}
	BrowserVersion            = &Field{Name: "BROWSER_VERSION", Index: 9, IsDefault: false}
	BrowserMajorVersion       = &Field{Name: "BROWSER_MAJOR_VERSION", Index: 10, IsDefault: true}
	BrowserMinorVersion       = &Field{Name: "BROWSER_MINOR_VERSION", Index: 11, IsDefault: false}
	Platform                  = &Field{Name: "PLATFORM", Index: 12, IsDefault: true}
	PlatformVersion           = &Field{Name: "PLATFORM_VERSION", Index: 13, IsDefault: true}
	PlatformDescription       = &Field{Name: "PLATFORM_DESCRIPTION", Index: 14, IsDefault: false}
	PlatformBits              = &Field{Name: "PLATFORM_BITS", Index: 15, IsDefault: false}
	PlatformMaker             = &Field{Name: "PLATFORM_MAKER", Index: 16, IsDefault: false}
	IsAlpha                   = &Field{Name: "IS_ALPHA", Index: 17, IsDefault: false}
	IsBeta                    = &Field{Name: "IS_BETA", Index: 18, IsDefault: false}
	IsWin16                   = &Field{Name: "IS_WIN16", Index: 19, IsDefault: false}
	IsWin32                   = &Field{Name: "IS_WIN32", Index: 20, IsDefault: false}
	IsWin64                   = &Field{Name: "IS_WIN64", Index: 21, IsDefault: false}
	IsIframes                 = &Field{Name: "IS_IFRAMES", Index: 22, IsDefault: false}
	IsFrames                  = &Field{Name: "IS_FRAMES", Index: 23, IsDefault: false}
	IsTables                  = &Field{Name: "IS_TABLES", Index: 24, IsDefault: false}
	IsCookies                 = &Field{Name: "IS_COOKIES", Index: 25, IsDefault: false}
	IsBackgroundSounds        = &Field{Name: "IS_BACKGROUND_SOUNDS", Index: 26, IsDefault: false}
	IsJavascript              = &Field{Name: "IS_JAVASCRIPT", Index: 27, IsDefault: false}
	IsVbscript                = &Field{Name: "IS_VBSCRIPT", Index: 28, IsDefault: false}
	IsJavaApplets             = &Field{Name: "IS_JAVA_APPLETS", Index: 29, IsDefault: false}
	IsActivexControls         = &Field{Name: "IS_ACTIVEX_CONTROLS", Index: 30, IsDefault: false}
	IsMobileDevice            = &Field{Name: "IS_MOBILE_DEVICE", Index: 31, IsDefault: false}
	IsTablet                  = &Field{Name: "IS_TABLET", Index: 32, IsDefault: false}
	IsSyndicationReader       = &Field{Name: "IS_SYNDICATION_READER", Index: 33, IsDefault: false}
	IsCrawler                 = &Field{Name: "IS_CRAWLER", Index: 34, IsDefault: false}
	IsFake                    = &Field{Name: "IS_FAKE", Index: 35, IsDefault: false}
	IsAnonymized              = &Field{Name: "IS_ANONYMIZED", Index: 36, IsDefault: false}
	IsModified                = &Field{Name: "IS_MODIFIED", Index: 37, IsDefault: false}
	CSSVersion                = &Field{Name: "CSS_VERSION", Index: 38, IsDefault: false}
	AolVersion                = &Field{Name: "AOL_VERSION", Index: 39, IsDefault: false}
	DeviceName                = &Field{Name: "DEVICE_NAME", Index: 40, IsDefault: false}
	DeviceMaker               = &Field{Name: "DEVICE_MAKER", Index: 41, IsDefault: false}
	DeviceType                = &Field{Name: "DEVICE_TYPE", Index: 42, IsDefault: true}
	DevicePointingMethod      = &Field{Name: "DEVICE_POINTING_METHOD", Index: 43, IsDefault: false}
	DeviceCodeName            = &Field{Name: "DEVICE_CODE_NAME", Index: 44, IsDefault: false}
	DeviceBrandName           = &Field{Name: "DEVICE_BRAND_NAME", Index: 45, IsDefault: false}
	RenderingEngineName       = &Field{Name: "RENDERING_ENGINE_NAME", Index: 46, IsDefault: false}
	RenderingEngineVersion    = &Field{Name: "RENDERING_ENGINE_VERSION", Index: 47, IsDefault: false}
	RenderingEngineDesc       = &Field{Name: "RENDERING_ENGINE_DESCRIPTION", Index: 48, IsDefault: false}
	RenderingEngineMaker      = &Field{Name: "RENDERING_ENGINE_MAKER", Index: 49, IsDefault: false}
)

// all holds every registered field, in declaration order. It backs All()
// and byName.
var all = []*Field{
	IsMasterParent, IsLiteMode, Parent, Comment, Browser, BrowserType,
	BrowserBits, BrowserMaker, BrowserModus, BrowserVersion,
	BrowserMajorVersion, BrowserMinorVersion, Platform, PlatformVersion,
	PlatformDescription, PlatformBits, PlatformMaker, IsAlpha, IsBeta,
	IsWin16, IsWin32, IsWin64, IsIframes, IsFrames, IsTables, IsCookies,
	IsBackgroundSounds, IsJavascript, IsVbscript, IsJavaApplets,
	IsActivexControls, IsMobileDevice, IsTablet, IsSyndicationReader,
	IsCrawler, IsFake, IsAnonymized, IsModified, CSSVersion, AolVersion,
	DeviceName, DeviceMaker, DeviceType, DevicePointingMethod,
	DeviceCodeName, DeviceBrandName, RenderingEngineName,
	RenderingEngineVersion, RenderingEngineDesc, RenderingEngineMaker,
}

var byName = func() map[string]*Field {
	m := make(map[string]*Field, len(all))
	for _, f := range all {
		m[f.Name] = f
	}
	return m
}()

// All returns every registered field, in catalog column order.
func All() []*Field {
	out := make([]*Field, len(all))
	copy(out, all)
	return out
}

// Default returns the fields flagged as part of the default projection:
// BROWSER, BROWSER_TYPE, BROWSER_MAJOR_VERSION, PLATFORM, PLATFORM_VERSION,
// DEVICE_TYPE.
func Default() []*Field {
	var out []*Field
	for _, f := range all {
		if f.IsDefault {
			out = append(out, f)
		}
	}
	return out
}

// ByName looks up a field by its stable name. Returns nil if no such
// field is registered.
func ByName(name string) *Field {
	return byName[name]
}
