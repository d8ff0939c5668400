package main

import "drone-config/cmd"

func main() {
	cmd.Execute()
}
