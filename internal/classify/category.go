package classify

// Category identifies one of the fixed sorting buckets.
type Category int

const (
	Images Category = iota
	Video
	Documents
	Audio
	Archives
	Other
)

var categoryNames = [...]string{
	Images:    "Images",
	Video:     "Video",
	Documents: "Documents",
	Audio:     "Audio",
	Archives:  "Archives",
	Other:     "Other",
}

var categoryFolders = [...]string{
	Images:    "images",
	Video:     "video",
	Documents: "documents",
	Audio:     "audio",
	Archives:  "archives",
	Other:     "MY_OTHER",
}

func (c Category) valid() bool {
	return c >= Images && c <= Other
}

func (c Category) String() string {
	if !c.valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Folder returns the destination folder name created under the sorted root.
func (c Category) Folder() string {
	if !c.valid() {
		return categoryFolders[Other]
	}
	return categoryFolders[c]
}

// MarshalText renders the category name so inventories encode readably.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Categories lists every category in report order.
func Categories() []Category {
	return []Category{Images, Video, Documents, Audio, Archives, Other}
}

// Sorted lists the categories whose files are moved into destination folders.
// Other is intentionally absent: unrecognised files stay where they are.
func Sorted() []Category {
	return []Category{Images, Video, Documents, Audio, Archives}
}

// IsReserved reports whether a directory name is one of the destination
// folders. Reserved directories hold prior output and are never scanned.
func IsReserved(name string) bool {
	for _, folder := range categoryFolders {
		if name == folder {
			return true
		}
	}
	return false
}
