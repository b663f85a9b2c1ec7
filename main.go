package main

import "github.com/gitrsync/git-rsync/cmd"

func main() {
	cmd.Execute()
}
