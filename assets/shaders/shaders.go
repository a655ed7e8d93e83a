// Package shaders compiles the Kage shaders used by the level render.
package shaders

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.kage
var shaderFS embed.FS

var (
	// FreezeShader desaturates the level while time is stopped
	FreezeShader *ebiten.Shader
)

// Load compiles and caches all shaders
func Load() error {
	if FreezeShader != nil {
		return nil
	}

	src, err := shaderFS.ReadFile("freeze.kage")
	if err != nil {
		return err
	}
	FreezeShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}

	return nil
}
