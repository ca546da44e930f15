package main

import "github.com/AlienHub/file-organizer/cmd"

func main() {
	cmd.Execute()
}
