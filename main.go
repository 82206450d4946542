package main

import "github.com/hepworks/higgs-eda/cmd"

func main() {
	cmd.Execute()
}
