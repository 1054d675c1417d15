package main

import (
	"gb2gh/internal/cli"
)

func main() {
	cli.Execute()
}
