package main

import "edascope/cmd"

func main() {
	cmd.Execute()
}
