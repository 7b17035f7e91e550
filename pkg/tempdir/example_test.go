package tempdir_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/resunpack/pkg/tempdir"
)

func ExampleWith() {
	var path string
	err := tempdir.With(context.Background(), func(ws *tempdir.Workspace) error {
		path = ws.Path()
		return os.WriteFile(filepath.Join(path, "resources.arsc"), []byte{0x02, 0x00}, 0o644)
	}, tempdir.WithPrefix("example-"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, statErr := os.Stat(path)
	fmt.Println("removed:", os.IsNotExist(statErr))
	// Output: removed: true
}

func ExampleNew() {
	ws, err := tempdir.New(tempdir.WithPrefix("example-"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("absolute:", filepath.IsAbs(ws.Path()))

	if err := ws.Release(context.Background()); err != nil {
		fmt.Println("release:", err)
	}
	// Output: absolute: true
}
