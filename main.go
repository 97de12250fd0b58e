package main

import (
	"context"

	"gpu-benchmark-scraper/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
