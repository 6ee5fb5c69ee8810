package main

import "massnet.org/macsum/cmd/macsum/cmd"

func main() {
	cmd.Execute()
}
