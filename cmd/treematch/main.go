/*
Command treematch matches patterns against values from the command line.

    treematch match '{| cons(^, ^), [^, ^], x |}' 'cons([:a, :b], [:c, :d])'
    treematch check '[x, %x]'
    treematch batch queries.yaml

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
