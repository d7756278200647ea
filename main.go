package main

import "github.com/jason89923/servoctl/cmd"

func main() {
	cmd.Execute()
}
