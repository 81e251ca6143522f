package main

import (
	"bytes"
	"fmt"
	"syscall/js"
	"time"

	"github.com/seqsense/glutil"
	"github.com/seqsense/glutil/gl"
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	webgl "github.com/seqsense/webgl-go"
)

const (
	pointSize = 2.0
	pitch     = -1.0
	yawSpeed  = 0.01
)

var float32Array = js.Global().Get("Float32Array")

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "pcdCanvas")

	logDiv := doc.Call("getElementById", "log")
	logPrint := func(msg interface{}) {
		html := logDiv.Get("innerHTML").String()
		logDiv.Set("innerHTML", fmt.Sprintf("%s%v<br/>", html, msg))
	}

	params := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))

	cfg := &glutil.Config{}
	if path := params.Call("get", "config"); !path.IsNull() {
		b, err := fetchGet(path.String())
		if err != nil {
			logPrint(err)
			return
		}
		if cfg, err = glutil.ParseConfig(b); err != nil {
			logPrint(err)
			return
		}
	}
	cfg.Surface = canvas

	ctx, err := glutil.Provision(gl.NewPlatform(), cfg)
	if err != nil {
		logPrint(err)
		return
	}
	glctx := ctx.(*gl.Context)
	showDebugInfo(glctx, logPrint)

	program, err := glutil.Build(ctx, glutil.Shaders(vsSource, fsSource))
	if err != nil {
		logPrint(err)
		return
	}

	wgl := glctx.WebGL()
	fitMatrixLocation := wgl.GetUniformLocation(program.(webgl.Program), "uFitMatrix")
	viewMatrixLocation := wgl.GetUniformLocation(program.(webgl.Program), "uViewMatrix")
	pointSizeLocation := wgl.GetUniformLocation(program.(webgl.Program), "uPointSize")

	wgl.Enable(wgl.DEPTH_TEST)
	wgl.DepthFunc(wgl.LEQUAL)
	wgl.ClearColor(0.0, 0.0, 0.0, 1.0)
	wgl.ClearDepth(1.0)
	wgl.Uniform1f(pointSizeLocation, pointSize)

	aVertexPosition := 0
	wgl.EnableVertexAttribArray(aVertexPosition)
	posBuf := wgl.CreateBuffer()

	chLost := make(chan string, 1)
	glctx.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
		e.PreventDefault()
		chLost <- e.StatusMessage
	})

	chNewPath := make(chan string)
	js.Global().Set("loadPCD",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			go func() { chNewPath <- args[0].String() }()
			return nil
		}),
	)
	if path := params.Call("get", "pcd"); !path.IsNull() {
		go func() { chNewPath <- path.String() }()
	}

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	var pp *pc.PointCloud
	var yaw float32
	var width, height int
	for {
		newWidth := glctx.Canvas.ClientWidth()
		newHeight := glctx.Canvas.ClientHeight()
		if newWidth != width || newHeight != height {
			width, height = newWidth, newHeight
			glctx.Canvas.SetWidth(width)
			glctx.Canvas.SetHeight(height)
			wgl.Viewport(0, 0, width, height)
		}

		wgl.Clear(wgl.COLOR_BUFFER_BIT | wgl.DEPTH_BUFFER_BIT)
		if pp != nil && pp.Points > 0 {
			if _, err := glutil.Build(ctx, glutil.Use(program)); err != nil {
				logPrint(err)
				return
			}
			wgl.BindBuffer(wgl.ARRAY_BUFFER, posBuf)
			wgl.VertexAttribPointer(aVertexPosition, 3, wgl.FLOAT, false, pp.Stride(), 0)
			uniformMatrix4fv(wgl, viewMatrixLocation, viewMatrix(yaw, pitch))
			wgl.DrawArrays(wgl.POINTS, 0, pp.Points)
		}

		select {
		case path := <-chNewPath:
			logPrint("loading pcd file")
			p, fit, err := readPCD(path)
			if err != nil {
				logPrint(err)
				break
			}
			pp = p
			wgl.BindBuffer(wgl.ARRAY_BUFFER, posBuf)
			wgl.BufferData(wgl.ARRAY_BUFFER, webgl.ByteArrayBuffer(pp.Data), wgl.STATIC_DRAW)
			uniformMatrix4fv(wgl, fitMatrixLocation, fit)
			if err := wgl.GetError(); err != nil {
				logPrint(err)
			}
			logPrint(fmt.Sprintf("%d points loaded", pp.Points))
		case msg := <-chLost:
			logPrint(fmt.Errorf("%w: %s", glutil.ErrContextLost, msg))
			return
		case <-tick.C:
			yaw += yawSpeed
		}
	}
}

func readPCD(path string) (*pc.PointCloud, mat.Mat4, error) {
	b, err := fetchGet(path)
	if err != nil {
		return nil, mat.Mat4{}, err
	}
	pp, err := pc.Unmarshal(bytes.NewReader(b))
	if err != nil {
		return nil, mat.Mat4{}, err
	}
	fit, err := fitMatrix(pp)
	if err != nil {
		return nil, mat.Mat4{}, err
	}
	return pp, fit, nil
}

func uniformMatrix4fv(wgl *webgl.WebGL, loc webgl.Location, m mat.Mat4) {
	matJS := float32Array.Call("of",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15],
	)
	wgl.JS().Call("uniformMatrix4fv", js.Value(loc), false, matJS)
}
