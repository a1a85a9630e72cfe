package rcl

import (
	"os"
	"runtime"
	"sync"
)

// Options selects the shared libraries Load binds.
type Options struct {
	// RCUtilsPath overrides the librcutils location. Empty falls back to
	// the ROSLOG_RCUTILS_LIB environment variable, then the platform
	// soname on the default search path.
	RCUtilsPath string

	// RCLPath overrides the librcl location. Empty falls back to the
	// ROSLOG_RCL_LIB environment variable, then the platform soname.
	RCLPath string
}

// DefaultLibraryPaths resolves the library locations Load uses when no
// explicit paths are given: environment overrides first, then the
// platform sonames.
func DefaultLibraryPaths() (rcutilsPath, rclPath string) {
	rcutilsPath = os.Getenv("ROSLOG_RCUTILS_LIB")
	rclPath = os.Getenv("ROSLOG_RCL_LIB")

	ext := ".so"
	if runtime.GOOS == "darwin" {
		ext = ".dylib"
	}
	if rcutilsPath == "" {
		rcutilsPath = "librcutils" + ext
	}
	if rclPath == "" {
		rclPath = "librcl" + ext
	}
	return rcutilsPath, rclPath
}

func (o Options) resolve() (rcutilsPath, rclPath string) {
	rcutilsPath, rclPath = DefaultLibraryPaths()
	if o.RCUtilsPath != "" {
		rcutilsPath = o.RCUtilsPath
	}
	if o.RCLPath != "" {
		rclPath = o.RCLPath
	}
	return rcutilsPath, rclPath
}

var (
	defaultMu  sync.Mutex
	defaultAPI API
)

// LoadDefault binds the native libraries with default options, caching the
// first success for the life of the process. A failed load is not cached;
// the next call retries.
func LoadDefault() (API, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultAPI != nil {
		return defaultAPI, nil
	}
	api, err := Load(Options{})
	if err != nil {
		return nil, err
	}
	defaultAPI = api
	return defaultAPI, nil
}
