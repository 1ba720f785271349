package main

import "github.com/kwesthuizen/trackdeck/cmd"

func main() {
	cmd.Execute()
}
