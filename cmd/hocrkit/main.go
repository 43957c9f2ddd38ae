package main

import "github.com/MeKo-Tech/hocrkit/cmd/hocrkit/cmd"

func main() {
	cmd.Execute()
}
