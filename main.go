package main

import "ridgeline/internal/vis"

func main() {
	vis.Run()
}
