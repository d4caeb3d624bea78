// Copyright 2026 lythd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command wbsc is a minimal driver over the wbs module: it lexes and
// builds a source file and prints either its diagnostics or its debug
// tree linearization, standing in for the editor collaborator the
// library itself does not implement.
package main

import (
	"fmt"
	"os"

	"github.com/lythd/wbsc"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: wbsc build|tree <file>")
		os.Exit(2)
	}

	cmd, path := os.Args[1], os.Args[2]
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root, diags := wbs.BuildTree(string(src))

	switch cmd {
	case "build":
		if len(diags) == 0 {
			fmt.Println("no errors")
			return
		}
		for _, d := range diags {
			fmt.Println(d.Error())
		}
		os.Exit(1)
	case "tree":
		for i, label := range wbs.ToVector(root) {
			if label == "" {
				continue
			}
			fmt.Printf("%d: %s\n", i, label)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: wbsc build|tree <file>")
		os.Exit(2)
	}
}
