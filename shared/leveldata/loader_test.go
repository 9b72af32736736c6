package leveldata

import (
	gomath "math"
	"testing"
	"testing/fstest"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="25" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="640" y="400"/>
 </objectgroup>
 <objectgroup id="2" name="EnemySpawn">
  <object id="2" x="1200" y="100">
   <properties>
    <property name="enemyType" value="Slime"/>
   </properties>
  </object>
  <object id="3" x="40" y="700"/>
 </objectgroup>
</map>
`

func TestLoadSpawnData(t *testing.T) {
	fsys := fstest.MapFS{"levels/arena.tmx": {Data: []byte(arenaTMX)}}

	data, err := LoadSpawnData(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadSpawnData: %v", err)
	}
	if data.MapWidth != 1280 || data.MapHeight != 800 {
		t.Fatalf("map size = %vx%v, want 1280x800", data.MapWidth, data.MapHeight)
	}
	if !data.HasPlayer || data.Player.X != 640 || data.Player.Y != 400 {
		t.Errorf("player spawn = %+v", data.Player)
	}
	if len(data.Enemies) != 2 {
		t.Fatalf("got %d enemy spawns, want 2", len(data.Enemies))
	}

	// Sorted by X and flipped to y-up.
	first, second := data.Enemies[0], data.Enemies[1]
	if first.X != 40 || first.Y != 100 || first.EnemyType != "" {
		t.Errorf("first spawn = %+v", first)
	}
	if second.X != 1200 || second.Y != 700 || second.EnemyType != "Slime" {
		t.Errorf("second spawn = %+v", second)
	}
}

func TestLoadSpawnDataMissingFile(t *testing.T) {
	if _, err := LoadSpawnData(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Errorf("expected an error for a missing map")
	}
}

func TestRingSpawnData(t *testing.T) {
	data := RingSpawnData(1000, 600, 8)
	if len(data.Enemies) != 8 {
		t.Fatalf("got %d spawns, want 8", len(data.Enemies))
	}
	for _, p := range data.Enemies {
		d := gomath.Hypot(p.X-500, p.Y-300)
		if gomath.Abs(d-270) > 1e-9 {
			t.Errorf("spawn %+v is %v from center, want 270", p, d)
		}
	}
}
