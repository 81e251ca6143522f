package main

import (
	"fmt"

	"github.com/seqsense/glutil/gl"
)

func showDebugInfo(ctx *gl.Context, logPrint func(interface{})) {
	defer func() {
		if r := recover(); r != nil {
			logPrint("Failed to get debug info")
		}
	}()

	wgl := ctx.WebGL()
	ri, ok := wgl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		logPrint("GPU info: hidden by the browser privacy setting")
		return
	}
	logPrint(fmt.Sprintf("GPU: %s %s",
		wgl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		wgl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	))
}
