package main

import "dedupfix/cmd/dedupfix/cmd"

func main() {
	cmd.Execute()
}
