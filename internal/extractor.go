package internal

// ExtractorSource reads one candidate value from a request.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries sources in order and returns the first non-empty value.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false).
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Header(name)
		return v, v != ""
	}
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Query(name)
		return v, v != ""
	}
}

// FromCookieSigned reads a signed cookie. Bad signatures miss.
func FromCookieSigned(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v, err := c.CookieSigned(name)
		if err != nil || v == "" {
			return "", false
		}
		return v, true
	}
}

// FromContext reads a string stored with Context.Set.
func FromContext(key any) ExtractorSource {
	return func(c Context) (string, bool) {
		v := ContextValue[string](c, key)
		return v, v != ""
	}
}

// Validated drops values rejected by valid.
func Validated(src ExtractorSource, valid func(string) bool) ExtractorSource {
	return func(c Context) (string, bool) {
		v, ok := src(c)
		if !ok || !valid(v) {
			return "", false
		}
		return v, true
	}
}

// ContextValue returns the value stored with Context.Set under key as T.
// A missing value or another type yields T's zero value.
func ContextValue[T any](c Context, key any) T {
	v, _ := c.Get(key).(T)
	return v
}
