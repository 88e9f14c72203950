package main

import "soundingkit/sndprefs/cmd"

func main() {
	cmd.Execute()
}
