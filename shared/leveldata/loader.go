package leveldata

import (
	"fmt"
	"io/fs"
	gomath "math"
	"sort"

	"github.com/lafriks/go-tiled"
)

const (
	playerSpawnGroup = "PlayerSpawn"
	enemySpawnGroup  = "EnemySpawn"
)

// LoadSpawnData parses a TMX file and returns its spawn points. Tiled counts
// y downward, so points are flipped into world space. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadSpawnData(fsys fs.FS, tmxPath string) (*SpawnData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &SpawnData{
		MapWidth:  float64(levelMap.Width * levelMap.TileWidth),
		MapHeight: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case playerSpawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			data.Player = SpawnPoint{X: o.X, Y: data.MapHeight - o.Y}
			data.HasPlayer = true
		case enemySpawnGroup:
			for _, o := range og.Objects {
				data.Enemies = append(data.Enemies, SpawnPoint{
					X:         o.X,
					Y:         data.MapHeight - o.Y,
					EnemyType: o.Properties.GetString("enemyType"),
				})
			}
		}
	}

	// Sort spawns left-to-right for deterministic selection
	sort.SliceStable(data.Enemies, func(i, j int) bool {
		return data.Enemies[i].X < data.Enemies[j].X
	})

	return data, nil
}

// RingSpawnData lays count enemy spawn points on a circle around the arena
// center, with the player in the middle. Used when no map is supplied.
func RingSpawnData(width, height float64, count int) *SpawnData {
	data := &SpawnData{
		MapWidth:  width,
		MapHeight: height,
		Player:    SpawnPoint{X: width / 2, Y: height / 2},
		HasPlayer: true,
	}
	radius := gomath.Min(width, height) * 0.45
	for i := 0; i < count; i++ {
		angle := 2 * gomath.Pi * float64(i) / float64(count)
		data.Enemies = append(data.Enemies, SpawnPoint{
			X: width/2 + radius*gomath.Cos(angle),
			Y: height/2 + radius*gomath.Sin(angle),
		})
	}
	return data
}
