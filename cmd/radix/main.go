package main

import "github.com/shabbyrobe/go-radix/internal/cli"

func main() {
	cli.Execute()
}
