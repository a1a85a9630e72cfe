package rosargs

import "sort"

// BuildArgs constructs the ROS-style argument vector for the native
// configure call. Output is deterministic: per-logger levels are emitted
// in sorted name order. An empty configuration returns nil, not a bare
// "--ros-args" preamble.
func (c Config) BuildArgs() []string {
	var flags []string

	// Process-wide level (--log-level LEVEL)
	if c.DefaultLevel != "" {
		flags = append(flags, "--log-level", c.DefaultLevel)
	}

	// Per-logger levels (--log-level name:=LEVEL)
	names := make([]string, 0, len(c.LogLevels))
	for name := range c.LogLevels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		flags = append(flags, "--log-level", name+":="+c.LogLevels[name])
	}

	// Sink toggles
	if c.StdoutLogs != nil {
		flags = append(flags, toggleFlag("stdout-logs", *c.StdoutLogs))
	}
	if c.RosoutLogs != nil {
		flags = append(flags, toggleFlag("rosout-logs", *c.RosoutLogs))
	}
	if c.ExternalLibLogs != nil {
		flags = append(flags, toggleFlag("external-lib-logs", *c.ExternalLibLogs))
	}

	// Native logging configuration file
	if c.ConfigFile != "" {
		flags = append(flags, "--log-config-file", c.ConfigFile)
	}

	flags = append(flags, c.ExtraArgs...)

	if len(flags) == 0 {
		return nil
	}
	return append([]string{"--ros-args"}, flags...)
}

func toggleFlag(name string, enabled bool) string {
	if enabled {
		return "--enable-" + name
	}
	return "--disable-" + name
}
