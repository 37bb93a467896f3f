package models

// Image references are opaque strings (data URLs or object URLs).

// AppendPhoto adds ref to the end of an order's gallery and returns the
// new gallery.
func AppendPhoto(existing []string, ref string) []string {
	out := make([]string, 0, len(existing)+1)
	out = append(out, existing...)
	return append(out, ref)
}

// SetProfilePicture replaces the single profile-picture slot.
func SetProfilePicture(_ string, ref string) string {
	return ref
}
