package x11

import "github.com/mj1618/xtree/internal/platform"

func init() {
	platform.NewDirectoryFunc = func(display string) (platform.Directory, error) {
		return Open(display)
	}
}
