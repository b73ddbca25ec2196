package vis

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Ridge vertex shader: static 2D silhouette strip, placed at the layer's
// depth and translated vertically by the per-tick offset.
const ridgeVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

uniform mat4 uProj;
uniform mat4 uView;
uniform float uZ;
uniform float uYOffset;

void main() {
    vec4 world = vec4(aPos.x, aPos.y + uYOffset, uZ, 1.0);
    gl_Position = uProj * uView * world;
}
` + "\x00"

// Ridge fragment shader: flat layer color mixed toward the fog color with
// depth, plus a treble-driven rim brightening.
const ridgeFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uFogColor;
uniform float uFog;
uniform float uGlow;

out vec4 FragColor;

void main() {
    vec3 col = mix(uColor, uFogColor, uFog);
    col += vec3(uGlow * 0.25, uGlow * 0.12, uGlow * 0.30);
    FragColor = vec4(col, 1.0);
}
` + "\x00"

// Sky vertex shader: fullscreen quad in clip space.
const skyVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

out vec2 vUV;

void main() {
    vUV = aPos * 0.5 + 0.5;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Sky fragment shader: generated texture with a bass-driven horizon glow.
const skyFragSrc = `#version 410 core

uniform sampler2D uTex;
uniform float uGlow;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec3 col = texture(uTex, vUV).rgb;
    float horizon = smoothstep(0.35, 1.0, vUV.y);
    col += vec3(0.9, 0.45, 0.25) * uGlow * horizon;
    FragColor = vec4(col, 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
