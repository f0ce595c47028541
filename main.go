package main

import (
	"promptcat/cmd"
)

func main() {
	cmd.Execute()
}
