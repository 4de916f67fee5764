package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mgrift/squarewalk/config"
	"github.com/mgrift/squarewalk/fonts"
	"github.com/mgrift/squarewalk/systems"
)

type Game struct {
	ecs *ecs.ECS
}

func NewGame(record systems.SaveRecord) *Game {
	e := ecs.NewECS(donburi.NewWorld())

	systems.ApplySaveRecord(e, record)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateLayout)
	e.AddSystem(systems.UpdateMenus)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateSavePopup)

	e.AddRenderer(ecs.LayerDefault, systems.DrawGame)
	e.AddRenderer(ecs.LayerDefault, systems.DrawMenus)
	e.AddRenderer(ecs.LayerDefault, systems.DrawSavePopup)
	e.AddRenderer(ecs.LayerDefault, systems.DrawDebugOverlay)

	return &Game{ecs: e}
}

func (g *Game) Update() error {
	g.ecs.Update()
	if systems.GetOrCreateSession(g.ecs).ShouldExit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Colors.Background)
	g.ecs.Draw(screen)
}

// Layout records the outside dimensions so menu bounds and player limits
// track the real window size, in windowed and fullscreen mode alike.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	viewport := systems.GetOrCreateViewport(g.ecs)
	viewport.Width = outsideWidth
	viewport.Height = outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	systems.DetectDisplayServer()
	systems.InitPersistence()
	systems.RecordLaunch()

	record := systems.LoadGame()

	fonts.Load(systems.ResourcePath(config.UI.FontFile))
	systems.LoadClickSound()

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(config.Window.WindowedWidth, config.Window.WindowedHeight)
	ebiten.SetFullscreen(record.Fullscreen != 0)
	if tps := int(record.TargetTPS); tps > 0 {
		ebiten.SetTPS(tps)
	} else {
		ebiten.SetTPS(config.Settings.DefaultTPS)
	}

	game := NewGame(record)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	// Window close and the Exit menu entry both land here
	session := systems.GetOrCreateSession(game.ecs)
	systems.SaveGame(game.ecs)
	systems.RecordPlayTime(session.PlayFrames, ebiten.TPS())
}
