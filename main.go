package main

import (
	"model-forge/cmd"
)

func main() {
	cmd.Execute()
}
