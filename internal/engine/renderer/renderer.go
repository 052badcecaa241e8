// Package renderer draws the scene with OpenGL.
package renderer

import (
	"fmt"
	"image"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wolfgrid/internal/assets"
	"github.com/Faultbox/wolfgrid/internal/engine/camera"
	"github.com/Faultbox/wolfgrid/internal/engine/debug"
	"github.com/Faultbox/wolfgrid/internal/engine/mesh"
	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/internal/engine/shader"
	"github.com/Faultbox/wolfgrid/internal/logger"
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FOV    float32 // Vertical, degrees
}

// TextureSource resolves texture paths without blocking. *assets.Server implements it.
type TextureSource interface {
	LoadTexture(path string) assets.Handle
	Texture(h assets.Handle) (*image.RGBA, bool)
	State(h assets.Handle) assets.State
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	lens   camera.Lens
	source TextureSource
	log    *zap.Logger

	meshProgram *shader.Program
	lineProgram *shader.Program

	meshes   map[scene.MeshKind]*gpuMesh
	textures map[string]uint32
	white    uint32

	lines *lineBuffer
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, source TextureSource) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		lens:     camera.NewLens(cfg.FOV),
		source:   source,
		log:      logger.Named("renderer"),
		meshes:   make(map[scene.MeshKind]*gpuMesh),
		textures: make(map[string]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	if r.meshProgram, err = shader.New(meshVertexShader, meshFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	if r.lineProgram, err = shader.New(lineVertexShader, lineFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	for _, kind := range []scene.MeshKind{scene.MeshPlane, scene.MeshBlock, scene.MeshSprite} {
		r.meshes[kind] = uploadMesh(mesh.Vertices(kind))
	}
	r.white = uploadTexture(whitePixel())
	r.lines = newLineBuffer()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	for _, id := range r.textures {
		if id != r.white {
			gl.DeleteTextures(1, &id)
		}
	}
	if r.white != 0 {
		gl.DeleteTextures(1, &r.white)
	}
	if r.lines != nil {
		r.lines.delete()
	}
	if r.meshProgram != nil {
		r.meshProgram.Delete()
	}
	if r.lineProgram != nil {
		r.lineProgram.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render draws one frame as seen from cam. With no camera only the clear
// color is drawn. Debug lines are drawn last and then cleared.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Object, gizmos *debug.Gizmos) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if cam == nil {
		if gizmos != nil {
			gizmos.Clear()
		}
		return
	}

	viewProj := r.lens.ViewProjection(cam.Transform, r.config.Width, r.config.Height)
	eye := cam.Transform.Translation

	var opaque, blended []*scene.Object
	for _, obj := range s.Objects() {
		if obj.Mesh == nil {
			continue
		}
		if obj.Material != nil && obj.Material.AlphaBlend {
			blended = append(blended, obj)
		} else {
			opaque = append(opaque, obj)
		}
	}
	// Far to near so that overlapping sprites composite correctly.
	sort.SliceStable(blended, func(i, j int) bool {
		return blended[i].Transform.Translation.Distance(eye) > blended[j].Transform.Translation.Distance(eye)
	})

	r.meshProgram.Use()
	r.meshProgram.SetMat4("uViewProj", viewProj)
	r.meshProgram.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	for _, obj := range opaque {
		r.drawObject(obj)
	}

	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	for _, obj := range blended {
		r.drawObject(obj)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	if gizmos != nil {
		r.drawLines(viewProj, gizmos)
		gizmos.Clear()
	}
}

func (r *Renderer) drawObject(obj *scene.Object) {
	m, ok := r.meshes[obj.Mesh.Kind]
	if !ok {
		return
	}

	model := obj.Transform.Matrix()
	if obj.Mesh.Kind == scene.MeshPlane && obj.Mesh.Size > 0 {
		model = model.Mul(math.Scale(obj.Mesh.Size, 1, obj.Mesh.Size))
	}

	color := [4]float32{1, 1, 1, 1}
	texture := r.white
	if mat := obj.Material; mat != nil {
		color = mat.BaseColor
		texture = r.texture(mat.Texture)
	}

	r.meshProgram.SetMat4("uModel", model)
	r.meshProgram.SetVec4("uColor", color)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	m.draw()
}

// texture returns the GL texture for an asset path, requesting it on first
// use. The white fallback is bound until the image has loaded, and for good
// if it failed.
func (r *Renderer) texture(path string) uint32 {
	if path == "" {
		return r.white
	}
	if id, ok := r.textures[path]; ok {
		return id
	}

	h := r.source.LoadTexture(path)
	if img, ok := r.source.Texture(h); ok {
		id := uploadTexture(img)
		r.textures[path] = id
		r.log.Debug("texture uploaded", zap.String("path", path), zap.Uint32("id", id))
		return id
	}
	if r.source.State(h) == assets.StateFailed {
		r.textures[path] = r.white
		r.log.Warn("texture unavailable, using fallback", zap.String("path", path))
	}
	return r.white
}

func (r *Renderer) drawLines(viewProj math.Mat4, g *debug.Gizmos) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return
	}
	r.lineProgram.Use()
	r.lineProgram.SetMat4("uViewProj", viewProj)
	r.lines.draw(verts)
}
