package facemask

// BuildOptions represents mask build options.
type BuildOptions struct {
	Path     string
	Kind     string
	Channels int
	Rescan   bool
	Preview  bool
}

// SkipUnchanged tests if unchanged crops with an existing mask may be skipped.
func (o *BuildOptions) SkipUnchanged() bool {
	return !o.Rescan
}

// BuildOptionsAll returns build options for rebuilding all masks.
func BuildOptionsAll(path, kind string) BuildOptions {
	result := BuildOptions{
		Path:     path,
		Kind:     kind,
		Channels: 1,
		Rescan:   true,
		Preview:  false,
	}

	return result
}

// BuildOptionsNone returns build options with all options set to false.
func BuildOptionsNone() BuildOptions {
	result := BuildOptions{}

	return result
}
