package main

import "amplc/cmd"

func main() {
	cmd.Execute()
}
