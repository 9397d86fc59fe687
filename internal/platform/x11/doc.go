// Package x11 implements platform.Directory over the X11 core protocol
// using github.com/jezek/xgb. Importing it for side effects registers the
// backend with platform.NewDirectoryFunc.
package x11
