package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/seqsense/glutil"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	stage     = color.New(color.FgYellow)
)

// report formats the result of a build. It returns false for a failed build.
func report(err error) (string, bool) {
	var (
		ce *glutil.CompileError
		le *glutil.LinkError
	)
	switch {
	case err == nil:
		return okColor.Sprint("OK"), true
	case errors.As(err, &ce):
		return failColor.Sprint("FAIL ") + stage.Sprint(strings.ToLower(ce.Type.String())) +
			"\n" + strings.TrimSpace(ce.Log), false
	case errors.As(err, &le):
		return failColor.Sprint("FAIL ") + stage.Sprint("link") +
			"\n" + strings.TrimSpace(le.Log), false
	default:
		return failColor.Sprint("FAIL ") + err.Error(), false
	}
}

func describe(a glutil.Attributes) string {
	return fmt.Sprintf("antialias=%v alpha=%v depth=%v stencil=%v",
		a.Antialias, a.Alpha, a.Depth, a.Stencil)
}
