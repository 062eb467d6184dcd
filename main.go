package main

import (
	"fmt"
	"os"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/cmd/convert"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/cmd/inspect"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
