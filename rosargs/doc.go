// Package rosargs builds ROS-style logging argument vectors.
//
// The native logging subsystem is configured through the same --ros-args
// section that a ROS process receives on its command line. This package
// turns a YAML configuration (or in-code Config) into that vector, so
// operators describe logging in a file instead of assembling flags by
// hand:
//
//	default_level: info
//	log_levels:
//	  camera.driver: debug
//	enable_stdout_logs: true
//	enable_rosout_logs: false
//
// BuildArgs output feeds roslog.NewContext. Configuration follows the
// defaults, file, environment override, validate order; ROSLOG_DEFAULT_LEVEL,
// ROSLOG_STDOUT_LOGS and ROSLOG_ROSOUT_LOGS override the file.
package rosargs
