package main

import (
	"os"

	"github.com/cheerioskun/grepninja/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
