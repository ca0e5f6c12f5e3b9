package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// tcal-hello prints the environment it receives.
	helloCmdSource := `
package main

import (
	"fmt"
	"os"
)

func main() {
	for _, name := range []string{"TRADECAL_DATA", "TRADECAL_BACKEND", "TRADECAL_LOG_LEVEL"} {
		fmt.Printf("%s=%s\n", name, os.Getenv(name))
	}
	fmt.Printf("args=%v\n", os.Args[1:])
}
`
	helloCmdPath := filepath.Join(tempDir, "tcal-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write tcal-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile tcal-hello: %v", err)
	}

	tcalBinaryPath := filepath.Join(tempDir, "tcal")
	build = exec.Command("go", "build", "-o", tcalBinaryPath, "../tcal")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile tcal binary: %v", err)
	}

	dataFile := filepath.Join(tempDir, "calendar.db")
	tcal := exec.Command(tcalBinaryPath, "-data", dataFile, "-backend", "sqlite", "-log-level", "debug", "hello", "world")
	tcal.Dir = tempDir
	tcal.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	tcal.Stdout = &stdout
	tcal.Stderr = &stderr
	if err := tcal.Run(); err != nil {
		t.Fatalf("tcal command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		"TRADECAL_DATA=" + dataFile,
		"TRADECAL_BACKEND=sqlite",
		"TRADECAL_LOG_LEVEL=debug",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}
