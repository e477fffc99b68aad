package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/ecs"
	"dungeon-crawl/engine"
	"dungeon-crawl/systems"
)

var (
	colorRemembered = color.RGBA{90, 90, 90, 255}
	colorPanelText  = color.RGBA{220, 220, 220, 255}
	colorHPBar      = color.RGBA{200, 40, 40, 255}
	colorHPBack     = color.RGBA{60, 20, 20, 255}
	colorSeparator  = color.RGBA{80, 80, 80, 255}
	colorHitFlash   = color.RGBA{140, 20, 20, 255}
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	game     *engine.Game
	overlays *ScreenStack
	flashes  *hitFlashes
	log      *zap.Logger
}

// NewGameScreen creates a new game screen and pushes the game over overlay
// when the player dies.
func NewGameScreen(game *engine.Game, fonts *Fonts, log *zap.Logger) *GameScreen {
	s := &GameScreen{
		BaseScreen: NewBaseScreen(fonts),
		game:       game,
		overlays:   NewScreenStack(),
		flashes:    newHitFlashes(),
		log:        log,
	}
	events := game.World.GetEventManager()
	events.Subscribe(systems.EventCombat, func(e ecs.Event) {
		if ce := e.(systems.CombatEvent); ce.Damage > 0 {
			s.flashes.hit(ce.DefenderID)
		}
	})
	events.Subscribe(systems.EventDeath, func(e ecs.Event) {
		s.flashes.forget(e.(systems.DeathEvent).EntityID)
	})
	var unsubscribe func()
	unsubscribe = events.Subscribe(systems.EventGameOver, func(ecs.Event) {
		unsubscribe()
		s.log.Info("player died", zap.Int("turn", game.Scheduler.Turn()), zap.Int("kills", game.Kills))
		s.overlays.Push(NewGameOverScreen(fonts, game.Scheduler.Turn(), game.Kills))
	})
	return s
}

// Update advances the game by at most one scheduler step per frame.
func (s *GameScreen) Update() error {
	s.flashes.tick()
	if s.overlays.Len() > 0 {
		return s.overlays.Update()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.overlays.Push(NewMessageHistoryScreen(s.fonts, s.game.Messages))
		return nil
	}
	s.game.Advance(readIntent())
	return nil
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	camera := s.camera()
	s.drawMap(screen, camera)
	s.drawEntities(screen, camera)
	s.drawPanel(screen)
	s.drawLog(screen)
	s.overlays.Draw(screen)
}

func (s *GameScreen) camera() *components.CameraComponent {
	id, ok := s.game.World.FirstWithTag(components.TagCamera)
	if !ok {
		return nil
	}
	cam, _ := s.game.Stores.Cameras.Get(id)
	return cam
}

func (s *GameScreen) tileMapping() *components.TileMappingComponent {
	ids := s.game.Stores.TileMappings.IDs()
	if len(ids) == 0 {
		return components.NewTileMappingComponent()
	}
	tm, _ := s.game.Stores.TileMappings.Get(ids[0])
	return tm
}

func (s *GameScreen) drawMap(screen *ebiten.Image, camera *components.CameraComponent) {
	m, ok := s.game.Stores.Map()
	if !ok {
		return
	}
	tiles := s.tileMapping()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !s.game.Camera.IsVisible(camera, x, y) {
				continue
			}
			idx := m.TileIndex(x, y)
			if !m.Revealed[idx] {
				continue
			}
			def := tiles.GetTileDefinition(m.Tiles[idx])
			fg := def.FG
			if !m.Visible[idx] {
				fg = colorRemembered
			}
			sx, sy := s.game.Camera.WorldToScreen(camera, x, y)
			s.fonts.drawGlyph(screen, def.Glyph, sx, sy, fg)
		}
	}
}

func (s *GameScreen) drawEntities(screen *ebiten.Image, camera *components.CameraComponent) {
	m, ok := s.game.Stores.Map()
	if !ok {
		return
	}
	draw := func(id ecs.EntityID, pos *components.PositionComponent, r *components.RenderableComponent) {
		if !m.InBounds(pos.X, pos.Y) || !m.Visible[m.TileIndex(pos.X, pos.Y)] {
			return
		}
		if !s.game.Camera.IsVisible(camera, pos.X, pos.Y) {
			return
		}
		sx, sy := s.game.Camera.WorldToScreen(camera, pos.X, pos.Y)
		if s.flashes.active(id) {
			ts := float32(config.TileSize)
			vector.DrawFilledRect(screen, float32(sx)*ts, float32(sy)*ts, ts, ts, colorHitFlash, false)
		}
		s.fonts.drawGlyph(screen, r.Char, sx, sy, r.FG)
	}
	// the player is drawn last so it stays on top
	ecs.Each2(s.game.Stores.Positions, s.game.Stores.Renderables, func(id ecs.EntityID, pos *components.PositionComponent, r *components.RenderableComponent) {
		if !s.game.Stores.Players.Has(id) {
			draw(id, pos, r)
		}
	})
	ecs.Each3(s.game.Stores.Players, s.game.Stores.Positions, s.game.Stores.Renderables, func(id ecs.EntityID, _ *components.PlayerComponent, pos *components.PositionComponent, r *components.RenderableComponent) {
		draw(id, pos, r)
	})
}

func (s *GameScreen) drawPanel(screen *ebiten.Image) {
	x := float64(config.MapViewWidth*config.TileSize + 8)
	y := 8.0
	line := float64(config.TileSize) + 4
	ui := s.fonts.UI

	s.fonts.drawText(screen, s.game.Config.Window.Title, x, y, colorPanelText, ui)
	y += line * 1.5

	if stats, ok := s.game.Stores.CombatStats.Get(s.game.Player); ok {
		s.fonts.drawText(screen, fmt.Sprintf("HP: %d / %d", stats.HP, stats.MaxHP), x, y, colorPanelText, ui)
		y += line
		barW := float32(config.PanelWidth*config.TileSize - 16)
		vector.DrawFilledRect(screen, float32(x), float32(y), barW, 8, colorHPBack, false)
		if stats.MaxHP > 0 {
			filled := barW * float32(max(stats.HP, 0)) / float32(stats.MaxHP)
			vector.DrawFilledRect(screen, float32(x), float32(y), filled, 8, colorHPBar, false)
		}
		y += line
		s.fonts.drawText(screen, fmt.Sprintf("Power: %d  Def: %d", stats.Power, stats.Defense), x, y, colorPanelText, ui)
		y += line
	}

	s.fonts.drawText(screen, fmt.Sprintf("Turn: %d", s.game.Scheduler.Turn()), x, y, colorPanelText, ui)
	y += line
	s.fonts.drawText(screen, fmt.Sprintf("Kills: %d", s.game.Kills), x, y, colorPanelText, ui)
	y += line
	s.fonts.drawText(screen, fmt.Sprintf("Map: %s", s.game.Level.Kind), x, y, colorPanelText, ui)
	y += line
	s.fonts.drawText(screen, fmt.Sprintf("Seed: %d", s.game.Seed), x, y, colorRemembered, ui)
	y += line * 1.5

	if vs, ok := s.game.Stores.Viewsheds.Get(s.game.Player); ok {
		for _, id := range s.game.World.GetEntitiesWithTag(components.TagMonster) {
			pos, ok := s.game.Stores.Positions.Get(id)
			if !ok || !vs.CanSee(pos.Point()) {
				continue
			}
			label := s.game.Stores.NameOf(id)
			if cs, ok := s.game.Stores.CombatStats.Get(id); ok {
				label = fmt.Sprintf("%s (%d)", label, cs.HP)
			}
			s.fonts.drawText(screen, label, x, y, colorPanelText, ui)
			y += line
		}
	}
}

func (s *GameScreen) drawLog(screen *ebiten.Image) {
	top := float32(config.MapViewHeight * config.TileSize)
	vector.StrokeLine(screen, 0, top+2, float32(config.WindowWidth), top+2, 1, colorSeparator, false)

	for i, msg := range s.game.Messages.Recent(config.LogLines) {
		y := float64(top) + 6 + float64(i*config.TileSize)
		s.fonts.drawText(screen, msg.Text, 8, y, msg.Color(), s.fonts.UI)
	}
}
