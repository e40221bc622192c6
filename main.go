package main

import (
	"cryptdatum/cli"
)

func main() {
	cli.Start()
}
