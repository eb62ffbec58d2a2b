package main

import "pogodata/cmd"

func main() {
	cmd.Execute()
}
