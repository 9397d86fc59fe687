package main

import (
	"github.com/mj1618/xtree/cmd"
	_ "github.com/mj1618/xtree/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
