package template

// Key identifies one entry in the template table. Lookups are exact
// struct-equality matches; no case or whitespace normalization is
// applied, so callers must supply canonical codes.
type Key struct {
	FormType     string
	RegionCode   string
	LanguageCode string
}

// Mapping is the static (form type, region, language) to template-ID
// table. Read-only after initialization, so it is safe to share across
// concurrent requests.
type Mapping map[Key]string

// Resolver selects a template ID for a fulfilment request, falling back
// to a configured default when the table misses.
type Resolver struct {
	mapping  Mapping
	fallback string
}

// NewResolver builds a Resolver over the given table. An empty fallback
// means table misses resolve to nothing.
func NewResolver(m Mapping, fallback string) *Resolver {
	return &Resolver{mapping: m, fallback: fallback}
}

// Resolve returns the template ID for the triple and true, or the
// fallback and true on a miss with a fallback configured. It returns
// false only when neither yields a non-empty ID.
func (r *Resolver) Resolve(formType, regionCode, languageCode string) (string, bool) {
	if id, ok := r.mapping[Key{FormType: formType, RegionCode: regionCode, LanguageCode: languageCode}]; ok && id != "" {
		return id, true
	}
	if r.fallback != "" {
		return r.fallback, true
	}
	return "", false
}
