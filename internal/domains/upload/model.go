package upload

// Variant sizes are produced for every accepted image alongside the
// untouched original.
const (
	VariantLarge     = "large"
	VariantMedium    = "medium"
	VariantThumbnail = "thumbnail"
)

// Result is what the admin panel gets back after an upload: the URL of
// the stored original plus one URL per resized variant.
type Result struct {
	URL      string            `json:"url"`
	Variants map[string]string `json:"variants"`
}
