package main

import (
	"github.com/petrarca/cloc-analyzer/internal/cmd"
)

func main() {
	cmd.Execute()
}
