package main

import "github.com/LeJamon/goXRPLcodec/internal/cli"

func main() {
	cli.Execute()
}
