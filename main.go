package main

import "github.com/uhj/teamstats/cmd"

func main() {
	cmd.Execute()
}
