// Package glutil provisions WebGL style rendering contexts and builds shader
// programs on top of them.
//
// The graphics backend is reached through the Platform and Context interfaces.
// Package gl implements them for browsers on top of WebGL2 and package native
// implements them for desktop OpenGL through GLFW.
//
//	ctx, err := glutil.Provision(gl.NewPlatform(), &glutil.Config{
//		Alpha: glutil.Bool(false),
//		Float: true,
//	})
//	if err != nil {
//		return err
//	}
//	prog, err := glutil.Build(ctx, glutil.Shaders(vsSource, fsSource))
//
// Nothing is cached between calls: the returned context and program belong to
// the caller.
package glutil
