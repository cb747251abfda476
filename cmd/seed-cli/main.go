package main

import "seed-validator/cmd/seed-cli/cmd"

func main() {
	cmd.Execute()
}
