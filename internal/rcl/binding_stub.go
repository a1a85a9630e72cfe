//go:build !((linux || darwin) && (amd64 || arm64))

package rcl

// Load is unavailable without the dlopen binding; the facade degrades to
// no-op emission on these hosts.
func Load(opts Options) (API, error) {
	return nil, ErrUnsupportedPlatform
}
