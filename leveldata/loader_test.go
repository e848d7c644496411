package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/lightborne/light"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorldTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="20">
 <objectgroup id="1" name="Levels">
  <object id="1" name="cave_entry" x="0" y="0" width="320" height="160">
   <properties>
    <property name="allowed_colors" value="blue"/>
   </properties>
  </object>
  <object id="2" name="second" x="320" y="0" width="320" height="160">
   <properties>
    <property name="iid" value="cave_deep"/>
    <property name="allowed_colors" value="blue,purple"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="StartFlags">
  <object id="3" x="100" y="50">
   <properties>
    <property name="level_iid" value="cave_entry"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Hazards">
  <object id="4" x="200" y="144" width="32" height="16"/>
 </objectgroup>
 <objectgroup id="4" name="CrystalShards">
  <object id="5" x="150" y="100" width="12" height="16">
   <properties>
    <property name="light_color" value="green"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadWorld(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/world.tmx": &fstest.MapFile{Data: []byte(testWorldTMX)},
	}

	world, err := Load(fsys, "levels/world.tmx")
	require.NoError(t, err)

	require.Len(t, world.Levels, 2)
	entry, ok := world.Level("cave_entry")
	require.True(t, ok, "object name is used when iid is missing")
	assert.Equal(t, Rect{MinX: 0, MinY: -160, MaxX: 320, MaxY: 0}, entry.Bounds)
	assert.Equal(t, light.ColorMap{light.Blue: true}, entry.AllowedColors)

	deep, ok := world.Level("cave_deep")
	require.True(t, ok)
	assert.Equal(t, light.ColorMap{light.Blue: true, light.Purple: true}, deep.AllowedColors)

	require.Len(t, world.StartFlags, 1)
	assert.Equal(t, StartFlag{LevelIID: "cave_entry", X: 100, Y: -50}, world.StartFlags[0])

	require.Len(t, world.Hazards, 1)
	assert.Equal(t, Rect{MinX: 200, MinY: -160, MaxX: 232, MaxY: -144}, world.Hazards[0])

	require.Len(t, world.Shards, 1)
	assert.Equal(t, light.Green, world.Shards[0].Color)

	assert.Equal(t, Rect{MinX: 0, MinY: -160, MaxX: 640, MaxY: 0}, world.Bounds)

	lvl, ok := world.LevelAt(400, -20)
	require.True(t, ok)
	assert.Equal(t, "cave_deep", lvl.IID)
	_, ok = world.LevelAt(1000, -20)
	assert.False(t, ok)
}

func TestLoadWorldErrors(t *testing.T) {
	cases := []struct {
		name string
		tmx  string
		msg  string
	}{
		{
			name: "no_levels",
			tmx: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="16" tileheight="16">
</map>`,
		},
		{
			name: "bad_shard_color",
			tmx: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Levels">
  <object id="1" name="a" x="0" y="0" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="CrystalShards">
  <object id="2" x="0" y="0" width="4" height="4">
   <properties>
    <property name="light_color" value="orange"/>
   </properties>
  </object>
 </objectgroup>
</map>`,
		},
		{
			name: "flag_unknown_level",
			tmx: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Levels">
  <object id="1" name="a" x="0" y="0" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="StartFlags">
  <object id="2" x="4" y="4">
   <properties>
    <property name="level_iid" value="missing"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>`,
		},
		{
			name: "two_flags_one_level",
			tmx: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Levels">
  <object id="1" name="a" x="0" y="0" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="StartFlags">
  <object id="2" x="4" y="4">
   <properties>
    <property name="level_iid" value="a"/>
   </properties>
   <point/>
  </object>
  <object id="3" x="8" y="4">
   <properties>
    <property name="level_iid" value="a"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>`,
			msg: `level "a" has more than one start flag`,
		},
		{
			name: "duplicate_iid",
			tmx: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Levels">
  <object id="1" name="a" x="0" y="0" width="16" height="16"/>
  <object id="2" name="a" x="16" y="0" width="16" height="16"/>
 </objectgroup>
</map>`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fsys := fstest.MapFS{"w.tmx": &fstest.MapFile{Data: []byte(c.tmx)}}
			_, err := Load(fsys, "w.tmx")
			require.Error(t, err)
			if c.msg != "" {
				assert.Contains(t, err.Error(), c.msg)
			}
		})
	}

	_, err := Load(fstest.MapFS{}, "missing.tmx")
	assert.Error(t, err)
}

func TestRectHelpers(t *testing.T) {
	r := RectFromTiled(10, 20, 30, 40)
	assert.Equal(t, Rect{MinX: 10, MinY: -60, MaxX: 40, MaxY: -20}, r)
	assert.Equal(t, 30.0, r.Width())
	assert.Equal(t, 40.0, r.Height())
	x, y := r.Center()
	assert.Equal(t, 25.0, x)
	assert.Equal(t, -40.0, y)
	assert.True(t, r.Contains(10, -20))
	assert.False(t, r.Contains(9, -20))
}
