package extra

// Icon identifiers form a closed set mapped through an explicit table.
// The frontend renders them by name; anything unrecognized falls back
// to the generic link icon.
const (
	IconMusic    = "Music"
	IconImage    = "Image"
	IconBookOpen = "BookOpen"
	IconLink     = "Link"
	IconVideo    = "Video"
	IconFileText = "FileText"

	DefaultIcon = IconLink
)

var knownIcons = map[string]struct{}{
	IconMusic:    {},
	IconImage:    {},
	IconBookOpen: {},
	IconLink:     {},
	IconVideo:    {},
	IconFileText: {},
}

// IsKnownIcon reports whether name is in the closed icon set.
func IsKnownIcon(name string) bool {
	_, ok := knownIcons[name]
	return ok
}

// NormalizeIcon maps unrecognized icon names to the default.
func NormalizeIcon(name string) string {
	if IsKnownIcon(name) {
		return name
	}
	return DefaultIcon
}
