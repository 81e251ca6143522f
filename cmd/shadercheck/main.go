// shadercheck compiles and links shader sources on a hidden OpenGL context and
// reports the driver diagnostics.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/seqsense/glutil"
	"github.com/seqsense/glutil/native"
	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML file with context attributes",
	}
	floatFlag = &cli.BoolFlag{
		Name:  "float",
		Usage: "Require floating-point textures with linear filtering",
	}
	showFlag = &cli.BoolFlag{
		Name:  "show",
		Usage: "Show the window instead of using a hidden one",
	}
)

func init() {
	// GLFW calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	app := &cli.App{
		Name:      "shadercheck",
		Usage:     "Compile and link a vertex/fragment shader pair",
		ArgsUsage: "<vertex.glsl> <fragment.glsl>",
		Flags:     []cli.Flag{configFlag, floatFlag, showFlag},
		Action:    check,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func check(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", ctx.NArg())
	}
	vs, err := os.ReadFile(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	fs, err := os.ReadFile(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	cfg := &glutil.Config{}
	if path := ctx.String(configFlag.Name); path != "" {
		if cfg, err = glutil.LoadConfig(path); err != nil {
			return err
		}
	}
	if ctx.IsSet(floatFlag.Name) {
		cfg.Float = ctx.Bool(floatFlag.Name)
	}

	if err := native.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer native.Terminate()

	glctx, err := glutil.Provision(native.NewPlatform("shadercheck", ctx.Bool(showFlag.Name)), cfg)
	if err != nil {
		return err
	}
	defer glctx.(*native.Context).Destroy()
	log.Printf("OpenGL context ready (%s)", describe(cfg.Attributes()))

	_, err = glutil.Build(glctx, glutil.Shaders(string(vs), string(fs)))
	msg, ok := report(err)
	fmt.Println(msg)
	if !ok {
		return cli.Exit("", 1)
	}
	return nil
}
