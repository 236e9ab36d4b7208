package main

import "github.com/edu2job/edu2job/cmd/edu2job/cmd"

func main() {
	cmd.Execute()
}
