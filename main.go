package main

import "toolcheck/internal/cli"

func main() {
	cli.Execute()
}
