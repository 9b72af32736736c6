package systems

import (
	"fmt"
	"image"
	"math/rand"
	"strings"

	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	cardWidth   = 170
	cardHeight  = 200
	cardGap     = 20
	cardPadding = 8
	// ebitenutil debug font cell
	glyphWidth  = 6
	glyphHeight = 16
)

var chooseActions = []cfg.ActionID{cfg.ActionChoose1, cfg.ActionChoose2, cfg.ActionChoose3}

// NewUpdateLevelUp creates the level up system. When a level up is pending
// it deals cfg.Upgrade.Options cards and freezes play until one is chosen.
// It runs outside the pause checks.
func NewUpdateLevelUp(rng *rand.Rand) ecs.System {
	return func(ecs *ecs.ECS) {
		if IsGameOver(ecs) {
			return
		}
		pause := GetOrCreatePause(ecs)
		levelUp := GetOrCreateLevelUp(ecs)
		input := getOrCreateInput(ecs)

		if !levelUp.Choosing() {
			if levelUp.Pending == 0 || pause.IsPaused {
				return
			}
			levelUp.Options = newCardOptions(rng, cfg.Upgrade.Options)
			levelUp.Selected = 0
			levelUp.LastCursor = input.Cursor
			pause.Upgrading = true
			SetAnimationsPlaying(ecs, false)
			return
		}

		if i, ok := cardChoice(levelUp, input); ok {
			ChooseCard(ecs, i)
		}
	}
}

// ChooseCard applies card i of the current offer to the player and resumes
// play. It reports false when no offer is open or i is out of range.
func ChooseCard(ecs *ecs.ECS, i int) bool {
	levelUp := GetOrCreateLevelUp(ecs)
	if i < 0 || i >= len(levelUp.Options) {
		return false
	}
	card := levelUp.Options[i]

	if playerEntry, ok := tags.Player.First(ecs.World); ok && IsAlive(playerEntry) {
		card.Apply(components.PlayerStats.Get(playerEntry), components.Health.Get(playerEntry))
	}

	levelUp.Options = nil
	levelUp.Pending--
	pause := GetOrCreatePause(ecs)
	pause.Upgrading = false
	SetAnimationsPlaying(ecs, !pause.IsPaused)
	ShowMessage(ecs, fmt.Sprintf("%s %s!", card.Rarity, card.Kind))
	return true
}

// cardChoice reads the card picked this tick: a number key, or attack on the
// hovered or highlighted card. Left and right move the highlight.
func cardChoice(levelUp *components.LevelUpData, input *components.InputData) (int, bool) {
	n := len(levelUp.Options)
	for i, action := range chooseActions {
		if i < n && GetAction(input, action).JustPressed {
			return i, true
		}
	}

	if GetAction(input, cfg.ActionMoveLeft).JustPressed {
		levelUp.Selected = (levelUp.Selected + n - 1) % n
	}
	if GetAction(input, cfg.ActionMoveRight).JustPressed {
		levelUp.Selected = (levelUp.Selected + 1) % n
	}

	hovered := cardAt(cardRects(cfg.C.Width, cfg.C.Height, n), input.Cursor)
	if input.Cursor != levelUp.LastCursor && hovered >= 0 {
		levelUp.Selected = hovered
	}
	levelUp.LastCursor = input.Cursor

	if GetAction(input, cfg.ActionAttack).JustPressed {
		if hovered >= 0 {
			return hovered, true
		}
		return levelUp.Selected, true
	}
	return 0, false
}

func newCardOptions(rng *rand.Rand, n int) []components.Card {
	cards := make([]components.Card, n)
	for i := range cards {
		cards[i] = components.Card{
			Kind:   components.CardKind(rng.Intn(int(components.CardKindCount))),
			Rarity: rollRarity(rng),
		}
	}
	return cards
}

func rollRarity(rng *rand.Rand) components.CardRarity {
	total := 0
	for _, w := range cfg.Upgrade.RarityWeights {
		total += w
	}
	if total <= 0 {
		return components.Common
	}
	return rarityForRoll(rng.Intn(total))
}

// rarityForRoll maps a roll in [0, sum of weights) onto the rarity whose
// weight band contains it.
func rarityForRoll(roll int) components.CardRarity {
	for i, w := range cfg.Upgrade.RarityWeights {
		if roll < w {
			return components.CardRarity(i)
		}
		roll -= w
	}
	return components.Legendary
}

// cardRects lays n cards side by side, centered on a w x h screen.
func cardRects(w, h, n int) []image.Rectangle {
	total := n*cardWidth + (n-1)*cardGap
	x := (w - total) / 2
	y := (h - cardHeight) / 2
	rects := make([]image.Rectangle, n)
	for i := range rects {
		rects[i] = image.Rect(x, y, x+cardWidth, y+cardHeight)
		x += cardWidth + cardGap
	}
	return rects
}

func cardAt(rects []image.Rectangle, cursor [2]int) int {
	p := image.Pt(cursor[0], cursor[1])
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// GetOrCreateLevelUp returns the singleton LevelUp component, creating if needed.
func GetOrCreateLevelUp(ecs *ecs.ECS) *components.LevelUpData {
	entry, ok := components.LevelUp.First(ecs.World)
	if !ok {
		entry = archetypes.LevelUp.Spawn(ecs)
	}
	return components.LevelUp.Get(entry)
}

// DrawLevelUp renders the card offer.
func DrawLevelUp(ecs *ecs.ECS, screen *ebiten.Image) {
	levelUp := GetOrCreateLevelUp(ecs)
	if !levelUp.Choosing() {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Overlay.LevelUpColor, false)

	title := "LEVEL UP! Choose an upgrade"
	ebitenutil.DebugPrintAt(screen, title, (width-len(title)*glyphWidth)/2, (height-cardHeight)/2-2*glyphHeight)

	for i, r := range cardRects(width, height, len(levelUp.Options)) {
		card := levelUp.Options[i]
		x, y := float32(r.Min.X), float32(r.Min.Y)
		vector.FillRect(screen, x, y, cardWidth, cardHeight, cfg.Overlay.CardColors[card.Rarity], false)

		border := float32(1)
		if i == levelUp.Selected {
			border = 3
		}
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, border, cfg.White, false)

		lines := []string{fmt.Sprintf("[%d] %s", i+1, card.Kind), card.Rarity.String(), ""}
		lines = append(lines, wrapText(card.Kind.Description(), (cardWidth-2*cardPadding)/glyphWidth)...)
		for j, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, r.Min.X+cardPadding, r.Min.Y+cardPadding+j*glyphHeight)
		}
	}
}

// wrapText breaks s into lines of at most width characters at spaces.
func wrapText(s string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
