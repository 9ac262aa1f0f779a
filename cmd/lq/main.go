package main

import "github.com/R1S-dev/LifeQuest/cmd/lq/root"

func main() {
	root.Execute()
}
