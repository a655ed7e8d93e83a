package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextGrid(t *testing.T) {
	src := `# comment line
1C0 1WH 1C1
@   0   Y
1C3 1WH 1C2
`
	layout, err := ParseText("Test", strings.NewReader(src), 3, 3)
	require.NoError(t, err)

	assert.Equal(t, "Test", layout.Name)
	assert.Equal(t, "1C0", layout.Code(0, 0))
	assert.Equal(t, "Y", layout.Code(2, 1))
	assert.Equal(t, EmptyCode, layout.Code(0, 1), "spawn marker is replaced by an empty tile")
	assert.True(t, layout.HasSpawn())
	assert.Equal(t, 0, layout.SpawnCol)
	assert.Equal(t, 1, layout.SpawnRow)
	assert.Equal(t, EmptyCode, layout.Code(5, 5))
}

func TestParseTextSizeMismatch(t *testing.T) {
	_, err := ParseText("Short", strings.NewReader("1B 1B 1B"), 2, 2)
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = ParseText("Long", strings.NewReader("1B 1B 1B 1B 1B"), 2, 2)
	assert.ErrorIs(t, err, ErrBadGrid)
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="72" tileheight="72" infinite="0" nextlayerid="3" nextobjectid="2">
 <properties>
  <property name="name" value="Tiny"/>
 </properties>
 <tileset firstgid="1" name="codes" tilewidth="72" tileheight="72" tilecount="2" columns="0">
  <tile id="0">
   <properties>
    <property name="code" value="1B"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="code" value="JU"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="tiles" width="3" height="2">
  <data encoding="csv">
0,2,0,
1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="80" y="10" width="72" height="72"/>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tiny.tmx": {Data: []byte(testTMX)},
	}

	layout, err := Load(fsys, "levels/tiny.tmx", "fallback", 19, 11)
	require.NoError(t, err)

	assert.Equal(t, "Tiny", layout.Name)
	assert.Equal(t, 3, layout.Cols)
	assert.Equal(t, 2, layout.Rows)
	assert.Equal(t, EmptyCode, layout.Code(0, 0))
	assert.Equal(t, "JU", layout.Code(1, 0))
	assert.Equal(t, "1B", layout.Code(2, 1))
	assert.Equal(t, 1, layout.SpawnCol)
	assert.Equal(t, 0, layout.SpawnRow)
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/x.json", "x", 1, 1)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
