package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"pbj/internal/meshes"
	"pbj/internal/render"
)

// GL enums for vertex attribute component types.
const (
	glUnsignedByte = 0x1401
	glFloat        = 0x1406
)

// Byte offsets inside a packed meshes.Vertex.
const (
	offsetPosition = 0
	offsetNormal   = 12
	offsetColor    = 24
)

type uniforms struct {
	objectToClip  int32
	objectToLight int32
	normalToLight int32
	sunDirection  int32
	sunColor      int32
	skyDirection  int32
	skyColor      int32
}

// Pipeline owns the lit shader and the mesh vertex buffer on the GPU. It draws render frames.
// Create it after OpenWindow and Close it before CloseWindow.
type Pipeline struct {
	shader rl.Shader
	loc    uniforms
	vao    uint32
	vbo    uint32
	closed bool
}

// NewPipeline compiles p and uploads the catalog's vertex buffer. A compile or link failure
// returns a *ShaderError.
func NewPipeline(p Program, catalog *meshes.Catalog, trace *TraceLog) (*Pipeline, error) {
	shader, err := loadProgram(p, trace)
	if err != nil {
		return nil, err
	}
	b := p.Bindings
	pl := &Pipeline{
		shader: shader,
		loc: uniforms{
			objectToClip:  rl.GetShaderLocation(shader, b.ObjectToClip),
			objectToLight: rl.GetShaderLocation(shader, b.ObjectToLight),
			normalToLight: rl.GetShaderLocation(shader, b.NormalToLight),
			sunDirection:  rl.GetShaderLocation(shader, b.SunDirection),
			sunColor:      rl.GetShaderLocation(shader, b.SunColor),
			skyDirection:  rl.GetShaderLocation(shader, b.SkyDirection),
			skyColor:      rl.GetShaderLocation(shader, b.SkyColor),
		},
	}
	if pl.loc.objectToClip < 0 {
		rl.UnloadShader(shader)
		return nil, &ShaderError{Stage: "link", Log: fmt.Sprintf("uniform %q not found", b.ObjectToClip)}
	}

	words := catalog.VertexWords()
	if len(words) == 0 {
		rl.UnloadShader(shader)
		return nil, &meshes.FormatError{Reason: "vertex chunk is empty"}
	}
	pl.vao = rl.LoadVertexArray()
	rl.EnableVertexArray(pl.vao)
	pl.vbo = rl.LoadVertexBuffer(words, false)
	pl.attribute(b.Position, 3, glFloat, false, offsetPosition)
	pl.attribute(b.Normal, 3, glFloat, false, offsetNormal)
	pl.attribute(b.Color, 4, glUnsignedByte, true, offsetColor)
	rl.DisableVertexArray()
	return pl, nil
}

// attribute points a shader input at the interleaved vertex buffer. Inputs the shader
// compiled out are skipped.
func (p *Pipeline) attribute(name string, size, kind int32, normalized bool, offset int32) {
	loc := rl.GetShaderLocationAttrib(p.shader, name)
	if loc < 0 {
		return
	}
	rl.SetVertexAttribute(uint32(loc), size, kind, normalized, meshes.VertexSize, offset)
	rl.EnableVertexAttribute(uint32(loc))
}

// Draw executes f. Call between BeginDrawing and EndDrawing.
func (p *Pipeline) Draw(f render.Frame) {
	if p.closed {
		return
	}
	// Flush raylib's 2D batch so it cannot draw over or under the meshes out of order.
	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()

	p.setVec3(p.loc.sunColor, f.Lighting.SunColor)
	p.setVec3(p.loc.sunDirection, f.Lighting.SunDirection)
	p.setVec3(p.loc.skyColor, f.Lighting.SkyColor)
	p.setVec3(p.loc.skyDirection, f.Lighting.SkyDirection)

	rl.EnableShader(p.shader.ID)
	rl.EnableVertexArray(p.vao)
	for _, c := range f.Calls {
		p.setMatrix(p.loc.objectToClip, c.ObjectToClip(f.WorldToClip))
		p.setMatrix(p.loc.objectToLight, c.ObjectToWorld)
		p.setMatrix(p.loc.normalToLight, c.NormalToWorld())
		rl.DrawVertexArray(int32(c.Mesh.First), int32(c.Mesh.Count))
	}
	rl.DisableVertexArray()
	rl.DisableShader()
	rl.DisableDepthTest()
}

func (p *Pipeline) setVec3(loc int32, v mgl32.Vec3) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(p.shader, loc, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3)
}

func (p *Pipeline) setMatrix(loc int32, m mgl32.Mat4) {
	if loc < 0 {
		return
	}
	rl.SetShaderValueMatrix(p.shader, loc, toMatrix(m))
}

// Close releases the vertex array, the buffer and the shader. Further calls do nothing.
func (p *Pipeline) Close() {
	if p.closed {
		return
	}
	p.closed = true
	rl.UnloadVertexArray(p.vao)
	rl.UnloadVertexBuffer(p.vbo)
	rl.UnloadShader(p.shader)
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout (Mn is element n in
// column-major order).
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
