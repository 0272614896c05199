package main

import "locale-router/internal/cli"

func main() {
	cli.Execute()
}
