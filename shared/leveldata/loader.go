package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TileLayerName is the TMX layer holding tile codes.
const TileLayerName = "tiles"

// Load reads a level from fsys, picking the parser by extension. For text
// grids the name is taken from the caller; TMX maps may override it with a
// "name" map property.
func Load(fsys fs.FS, levelPath, name string, cols, rows int) (*Layout, error) {
	switch strings.ToLower(path.Ext(levelPath)) {
	case ".tmx":
		return LoadTMX(fsys, levelPath, name)
	case ".txt":
		f, err := fsys.Open(levelPath)
		if err != nil {
			return nil, fmt.Errorf("open level %s: %w", levelPath, err)
		}
		defer f.Close()
		return ParseText(name, f, cols, rows)
	}
	return nil, fmt.Errorf("%s: %w", levelPath, ErrUnknownFormat)
}

// LoadTMX parses a Tiled map. Every tile of the "tiles" layer carries its
// tile code in a "code" property on the tileset tile; a PlayerSpawn object
// marks the spawn. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath, name string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.Properties != nil {
		if n := levelMap.Properties.GetString("name"); n != "" {
			name = n
		}
	}
	layout := newLayout(name, levelMap.Width, levelMap.Height)

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == TileLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%s: no %q layer: %w", tmxPath, TileLayerName, ErrBadGrid)
	}
	if len(layer.Tiles) != levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("%s: layer has %d tiles: %w", tmxPath, len(layer.Tiles), ErrBadGrid)
	}

	for _, tile := range layer.Tiles {
		if tile.IsNil() {
			layout.push(EmptyCode)
			continue
		}
		code := EmptyCode
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tilesetTile.Properties != nil {
			if c := tilesetTile.Properties.GetString("code"); c != "" {
				code = c
			}
		}
		layout.push(code)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		layout.SpawnCol = int(o.X / tileW)
		layout.SpawnRow = int(o.Y / tileH)
	}

	return layout, nil
}
