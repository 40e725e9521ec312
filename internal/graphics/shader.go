package graphics

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bindings names the shader's uniforms and vertex attributes. They are resolved to locations
// once when the pipeline is built.
type Bindings struct {
	ObjectToClip  string
	ObjectToLight string
	NormalToLight string
	SunDirection  string
	SunColor      string
	SkyDirection  string
	SkyColor      string

	Position string
	Normal   string
	Color    string
}

// Program is shader source plus the names it declares.
type Program struct {
	VertexSource   string
	FragmentSource string
	Bindings       Bindings
}

// DefaultProgram is sun/sky (directional + hemispherical) lighting of vertex-colored meshes.
func DefaultProgram() Program {
	return Program{
		VertexSource:   litVS,
		FragmentSource: litFS,
		Bindings: Bindings{
			ObjectToClip:  "object_to_clip",
			ObjectToLight: "object_to_light",
			NormalToLight: "normal_to_light",
			SunDirection:  "sun_direction",
			SunColor:      "sun_color",
			SkyDirection:  "sky_direction",
			SkyColor:      "sky_color",
			Position:      "Position",
			Normal:        "Normal",
			Color:         "Color",
		},
	}
}

// Matrices are uploaded as mat4; the light-space transforms use their upper rows/3x3.
const (
	litVS = `#version 330
uniform mat4 object_to_clip;
uniform mat4 object_to_light;
uniform mat4 normal_to_light;
layout(location=0) in vec4 Position;
in vec3 Normal;
in vec4 Color;
out vec3 position;
out vec3 normal;
out vec4 color;
void main() {
  gl_Position = object_to_clip * Position;
  position = (object_to_light * Position).xyz;
  normal = mat3(normal_to_light) * Normal;
  color = Color;
}
`
	litFS = `#version 330
uniform vec3 sun_direction;
uniform vec3 sun_color;
uniform vec3 sky_direction;
uniform vec3 sky_color;
in vec3 position;
in vec3 normal;
in vec4 color;
out vec4 fragColor;
void main() {
  vec3 total_light = vec3(0.0, 0.0, 0.0);
  vec3 n = normalize(normal);
  {
    vec3 l = sky_direction;
    float nl = 0.5 + 0.5 * dot(n, l);
    total_light += nl * sky_color;
  }
  {
    vec3 l = sun_direction;
    float nl = max(0.0, dot(n, l));
    total_light += nl * sun_color;
  }
  fragColor = vec4(color.rgb * total_light, color.a);
}
`
)

// ShaderError is a failed shader compile or link. Log holds raylib's diagnostics.
type ShaderError struct {
	Stage string // "vertex", "fragment", or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("graphics: shader %s failed", e.Stage)
	}
	return fmt.Sprintf("graphics: shader %s failed:\n%s", e.Stage, e.Log)
}

// shaderStage guesses the failing stage from raylib's diagnostics.
func shaderStage(diag []string) string {
	text := strings.ToLower(strings.Join(diag, "\n"))
	switch {
	case strings.Contains(text, "vertex shader"):
		return "vertex"
	case strings.Contains(text, "fragment shader"):
		return "fragment"
	default:
		return "link"
	}
}

// loadProgram compiles and links p, capturing raylib's warnings for a ShaderError.
func loadProgram(p Program, trace *TraceLog) (rl.Shader, error) {
	diag := trace.capture()
	shader := rl.LoadShaderFromMemory(p.VertexSource, p.FragmentSource)
	lines := diag.stop()
	if !rl.IsShaderValid(shader) || shader.ID == rl.GetShaderIdDefault() {
		return rl.Shader{}, &ShaderError{Stage: shaderStage(lines), Log: strings.Join(lines, "\n")}
	}
	return shader, nil
}
