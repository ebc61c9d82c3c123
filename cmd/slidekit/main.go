package main

import (
	"os"

	"github.com/VantageDataChat/GoSlideKit/cmd/slidekit/commands"
	"github.com/VantageDataChat/GoSlideKit/internal/notify"
)

func main() {
	if commands.Execute() == notify.SeverityBlocking {
		os.Exit(1)
	}
}
