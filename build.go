//go:build ignore

// build.go - cellwatch build script
// Usage: go run build.go [-target=TARGET] [-v]
// Targets: build, test, clean, release

package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const (
	binary  = "cellwatch"
	source  = "./cmd/cellwatch"
	distDir = "dist"
)

// releaseTargets are the GOOS/GOARCH pairs of a release build
var releaseTargets = []string{
	"linux/amd64",
	"linux/arm64",
	"darwin/arm64",
	"windows/amd64",
}

var (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
)

func main() {
	target := flag.String("target", "build", "Build target")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	printHeader()
	startTime := time.Now()

	var err error
	switch *target {
	case "build":
		err = build(runtime.GOOS, runtime.GOARCH, *verbose)
	case "test":
		err = runTests(*verbose)
	case "clean":
		err = os.RemoveAll(distDir)
	case "release":
		err = buildRelease(*verbose)
	default:
		showHelp()
		os.Exit(1)
	}
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	printSuccess(fmt.Sprintf("%s completed in %s", *target, time.Since(startTime).Round(time.Millisecond)))
}

func printHeader() {
	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println(colorCyan + "          cellwatch - Build System         " + colorReset)
	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println()
}

func printInfo(msg string) {
	fmt.Printf("%s[INFO]%s %s\n", colorBlue, colorReset, msg)
}

func printSuccess(msg string) {
	fmt.Printf("%s[SUCCESS]%s %s\n", colorGreen, colorReset, msg)
}

func printError(msg string) {
	fmt.Printf("%s[ERROR]%s %s\n", colorRed, colorReset, msg)
}

// build compiles the CLI for one platform into dist/
func build(goos, goarch string, verbose bool) error {
	name := binary
	if goos != runtime.GOOS || goarch != runtime.GOARCH {
		name = fmt.Sprintf("%s-%s-%s", binary, goos, goarch)
	}
	if goos == "windows" {
		name += ".exe"
	}
	outputPath := filepath.Join(distDir, name)

	printInfo(fmt.Sprintf("Building %s...", name))

	args := []string{"build", "-trimpath", "-ldflags", "-s -w", "-o", outputPath}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, source)

	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0", "GOOS="+goos, "GOARCH="+goarch)
	if verbose {
		fmt.Printf("Running: go %s\n", strings.Join(args, " "))
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to build %s: %w", name, err)
	}

	if info, err := os.Stat(outputPath); err == nil {
		printSuccess(fmt.Sprintf("Built %s (%.1f MB)", name, float64(info.Size())/1024/1024))
	}
	return nil
}

func runTests(verbose bool) error {
	printInfo("Running Go tests...")
	args := []string{"test", "-race"}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, "./...")

	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return nil
}

// buildRelease cross-compiles every release target
func buildRelease(verbose bool) error {
	if err := os.RemoveAll(distDir); err != nil {
		return err
	}
	if err := os.MkdirAll(distDir, 0755); err != nil {
		return err
	}
	for _, t := range releaseTargets {
		goos, goarch, _ := strings.Cut(t, "/")
		if err := build(goos, goarch, verbose); err != nil {
			return err
		}
	}
	return nil
}

func showHelp() {
	fmt.Println("Usage: go run build.go [-target=TARGET] [-v]")
	fmt.Println()
	fmt.Println("Targets:")
	fmt.Println("  build      Build cellwatch for this platform (default)")
	fmt.Println("  test       Run all tests with the race detector")
	fmt.Println("  clean      Remove build artifacts")
	fmt.Println("  release    Cross-compile release binaries")
}
