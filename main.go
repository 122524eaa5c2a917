package main

import "github.com/jsphweid/lickgen/cmd"

func main() {
	cmd.Execute()
}
