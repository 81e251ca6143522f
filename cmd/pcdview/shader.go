package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uFitMatrix;
	uniform mat4 uViewMatrix;
	uniform float uPointSize;
	vec4 fitPosition;
	lowp float c;
	out lowp vec4 vColor;

	void main(void) {
		fitPosition = uFitMatrix * aVertexPosition;
		gl_Position = uViewMatrix * fitPosition;
		gl_PointSize = uPointSize;

		c = clamp(fitPosition[2] + 0.5, 0.0, 1.0);
		vColor = vec4(c, 0.5, 1.0 - c, 1.0);
	}
`

const fsSource = `#version 300 es
	in lowp vec4 vColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vColor;
	}
`
