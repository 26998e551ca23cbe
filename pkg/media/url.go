package media

import "strings"

// Param is one delivery transformation, rendered as key_value.
type Param struct {
	Key   string
	Value string
}

var (
	defaultImageParams = []Param{{"q", "auto:good"}, {"f", "auto"}}
	defaultPDFParams   = []Param{{"pg", "1"}, {"f", "jpg"}, {"q", "auto:good"}}
)

// URLBuilder renders delivery URLs for a cloud. It holds no connection.
type URLBuilder struct {
	base string
}

// NewURLBuilder returns a builder for https://<domain>/<cloud>/image/upload/.
func NewURLBuilder(domain, cloudName string) URLBuilder {
	return URLBuilder{base: strings.TrimRight(domain, "/") + "/" + cloudName + "/image/upload/"}
}

// DerivedURL applies params over the default quality/format pair.
func (b URLBuilder) DerivedURL(storageID string, params ...Param) string {
	return b.build(storageID, defaultImageParams, params)
}

// PreviewURL renders page one of a PDF as an image.
func (b URLBuilder) PreviewURL(storageID string, params ...Param) string {
	return b.build(storageID, defaultPDFParams, params)
}

func (b URLBuilder) build(storageID string, defaults, overrides []Param) string {
	if storageID == "" {
		return ""
	}
	return b.base + transformation(defaults, overrides) + "/" + storageID
}

// transformation merges overrides into defaults: a known key keeps its
// position and takes the new value, unknown keys follow in call order.
func transformation(defaults, overrides []Param) string {
	merged := make([]Param, len(defaults), len(defaults)+len(overrides))
	copy(merged, defaults)

	for _, o := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].Key == o.Key {
				merged[i].Value = o.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, o)
		}
	}

	parts := make([]string, 0, len(merged))
	for _, p := range merged {
		parts = append(parts, p.Key+"_"+p.Value)
	}
	return strings.Join(parts, ",")
}
