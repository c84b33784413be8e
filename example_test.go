package fptlin_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/fptlin"
)

// ExampleCheck decides a small stack history: process 0 pushes 1 and pops it
// back sequentially, which is trivially a valid stack execution.
func ExampleCheck() {
	dir, err := os.MkdirTemp("", "fptlin-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "hist.txt")
	contents := "# stack\n0 0 1 push 1\n0 2 3 pop 1\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := fptlin.Check(path)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Linearizable, res.Size)

	// Output:
	// true 2
}
