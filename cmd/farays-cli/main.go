package main

import "github.com/nfrund/farays/cmd/farays-cli/cmd"

func main() {
	cmd.Execute()
}
