package main

import "github.com/mcoot/pexeso/internal/cli"

func main() {
	cli.Execute()
}
