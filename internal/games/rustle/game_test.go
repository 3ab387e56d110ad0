package rustle

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/bubble-rustle/internal/core"
	"github.com/vovakirdan/bubble-rustle/internal/world"
)

func press(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	a := New(opts...)
	a.Reset(core.DefaultConfig())
	for i := 0; a.AppState() == StateSplash; i++ {
		if i > 1000 {
			t.Fatal("splash never ended")
		}
		a.Step(core.NewInputFrame())
	}
	return a
}

func startGame(t *testing.T, opts ...Option) *App {
	t.Helper()
	a := newTestApp(t, opts...)
	a.Step(press(core.ActionConfirm))
	if a.AppState() != StateGame {
		t.Fatalf("state = %s after Play, expected Game", a.AppState())
	}
	return a
}

func TestSplashLastsTwoSeconds(t *testing.T) {
	a := New()
	a.Reset(core.DefaultConfig())

	for i := 0; i < 119; i++ {
		a.Step(core.NewInputFrame())
	}
	if a.AppState() != StateSplash {
		t.Fatalf("left splash after 119 ticks")
	}
	if _, ok := a.Context().Arena.First(world.RoleLogo); !ok {
		t.Error("logo should be shown during the splash")
	}

	// Input does not skip the splash.
	a.Step(press(core.ActionConfirm))
	if a.AppState() != StateMenu || a.MenuState() != MenuMain {
		t.Fatalf("state = %s/%s after 120 ticks, expected Menu/Main", a.AppState(), a.MenuState())
	}
	if _, ok := a.Context().Arena.First(world.RoleLogo); ok {
		t.Error("logo should be torn down with the splash")
	}
}

func TestMenuNavigation(t *testing.T) {
	a := newTestApp(t)

	steps := []struct {
		in         core.Action
		wantMenu   MenuState
		wantCursor int
	}{
		{core.ActionUp, MenuMain, 0},
		{core.ActionDown, MenuMain, 1},
		{core.ActionDown, MenuMain, 2},
		{core.ActionDown, MenuMain, 2},
		{core.ActionUp, MenuMain, 1},
		{core.ActionConfirm, MenuScores, 0},
		{core.ActionDown, MenuScores, 0},
		{core.ActionConfirm, MenuMain, 0},
		{core.ActionDown, MenuMain, 1},
		{core.ActionConfirm, MenuScores, 0},
		{core.ActionBack, MenuMain, 0},
	}

	for i, st := range steps {
		a.Step(press(st.in))
		if a.MenuState() != st.wantMenu || a.Cursor() != st.wantCursor {
			t.Fatalf("step %d (%s): menu=%s cursor=%d, expected %s/%d",
				i, st.in, a.MenuState(), a.Cursor(), st.wantMenu, st.wantCursor)
		}
	}
	if a.AppState() != StateMenu {
		t.Errorf("menu navigation should never leave the menu, got %s", a.AppState())
	}
}

func TestMenuQuit(t *testing.T) {
	a := newTestApp(t)
	a.Step(press(core.ActionDown))
	a.Step(press(core.ActionDown))
	res := a.Step(press(core.ActionConfirm))

	if !res.State.Quit {
		t.Error("Quit! should ask the platform to exit")
	}
}

func TestPlayEntersFreshRun(t *testing.T) {
	a := startGame(t)
	ctx := a.Context()

	if a.MenuState() != MenuDisabled {
		t.Errorf("menu = %s during play, expected Disabled", a.MenuState())
	}
	if n := ctx.Arena.Count(world.RoleWall); n != 4 {
		t.Errorf("%d walls, expected 4", n)
	}
	bs := bubbles(ctx)
	if len(bs) != 1 || bs[0].Tier != 4 || *bs[0].Pos != (world.Vec2{}) {
		t.Fatalf("root bubble = %+v", bs)
	}
	if *bs[0].Vel != (world.Vec2{X: 200, Y: 800}) {
		t.Errorf("root bubble velocity = %+v", *bs[0].Vel)
	}
	if ctx.Run != (RunState{Score: 0, Lives: 3, Bubbles: 1}) {
		t.Errorf("run = %+v", ctx.Run)
	}

	a.Step(core.NewInputFrame())
	player, ok := ctx.Arena.First(world.RolePlayer)
	if !ok || !ctx.Player.Alive {
		t.Fatal("player should spawn on the first game tick")
	}
	if *player.Pos != (world.Vec2{X: 0, Y: -371.25}) {
		t.Errorf("player at %+v", *player.Pos)
	}
}

// popNext puts a fresh hook on the first bubble and runs one tick.
func popNext(t *testing.T, a *App) {
	t.Helper()
	ctx := a.Context()
	target, ok := ctx.Arena.First(world.RoleBubble)
	if !ok {
		t.Fatal("no bubble to pop")
	}
	spawnHook(ctx, *target.Pos)
	ctx.Player.HookActive = true
	a.Step(core.NewInputFrame())
}

func tiers(ctx *Context) []int {
	var out []int
	for _, b := range bubbles(ctx) {
		out = append(out, b.Tier)
	}
	return out
}

func TestScenarioPopEverything(t *testing.T) {
	board := NewMemoryLeaderboard()
	a := startGame(t, WithLeaderboard(board))
	ctx := a.Context()

	popNext(t, a)
	if got := tiers(ctx); !slices.Equal(got, []int{3, 3}) || ctx.Run.Bubbles != 2 {
		t.Fatalf("after first pop tiers=%v count=%d", got, ctx.Run.Bubbles)
	}

	popNext(t, a)
	popNext(t, a)
	if got := tiers(ctx); !slices.Equal(got, []int{2, 2, 2, 2}) || ctx.Run.Bubbles != 4 {
		t.Fatalf("after splitting both tier 3 bubbles tiers=%v count=%d", got, ctx.Run.Bubbles)
	}

	for want := 3; want >= 1; want-- {
		popNext(t, a)
		if ctx.Run.Bubbles != want || len(bubbles(ctx)) != want {
			t.Fatalf("count=%d bubbles=%d, expected %d", ctx.Run.Bubbles, len(bubbles(ctx)), want)
		}
		if a.AppState() != StateGame {
			t.Fatal("run ended early")
		}
	}

	popNext(t, a)
	if a.AppState() != StateMenu || a.MenuState() != MenuMain {
		t.Fatalf("state = %s/%s, expected Menu/Main after the last pop", a.AppState(), a.MenuState())
	}
	scores, _ := board.Top(10)
	if len(scores) != 1 {
		t.Errorf("leaderboard = %v, expected one entry", scores)
	}
	if ctx.Arena.Len() != 0 {
		t.Errorf("%d entities survive leaving the game", ctx.Arena.Len())
	}
}

func TestScenarioLastLife(t *testing.T) {
	board := NewMemoryLeaderboard()
	a := startGame(t, WithLeaderboard(board))
	a.Step(core.NewInputFrame())
	ctx := a.Context()

	ctx.Run.Lives = 1
	ctx.Run.Score = 250
	player, _ := ctx.Arena.First(world.RolePlayer)
	bubble, _ := ctx.Arena.First(world.RoleBubble)
	*bubble.Pos = *player.Pos

	a.Step(core.NewInputFrame())

	if a.AppState() != StateMenu {
		t.Fatalf("state = %s, expected Menu in the same tick", a.AppState())
	}
	scores, _ := board.Top(10)
	if !slices.Equal(scores, []int{250}) {
		t.Errorf("leaderboard = %v, expected [250]", scores)
	}
	if ctx.Run != (RunState{Score: 0, Lives: 3, Bubbles: 1}) {
		t.Errorf("run after reset = %+v", ctx.Run)
	}
	if ctx.Player.Alive || ctx.Player.HookActive {
		t.Errorf("player state after reset = %+v", ctx.Player)
	}

	// The next run starts with one tier 4 bubble again.
	a.Step(press(core.ActionConfirm))
	if got := tiers(ctx); !slices.Equal(got, []int{4}) {
		t.Errorf("new run tiers = %v", got)
	}
}

func TestScoreAndLivesMonotonic(t *testing.T) {
	a := startGame(t)
	ctx := a.Context()

	prevScore, prevLives := ctx.Run.Score, ctx.Run.Lives
	for i := 0; i < 3000 && a.AppState() == StateGame; i++ {
		in := core.NewInputFrame()
		switch {
		case i%240 < 120:
			in.SetHeld(core.ActionLeft)
		default:
			in.SetHeld(core.ActionRight)
		}
		if i%20 == 0 {
			in.Set(core.ActionFire)
		}
		a.Step(in)
		if a.AppState() != StateGame {
			break
		}
		if ctx.Run.Score < prevScore {
			t.Fatalf("tick %d: score dropped %d -> %d", i, prevScore, ctx.Run.Score)
		}
		if ctx.Run.Lives > prevLives {
			t.Fatalf("tick %d: lives grew %d -> %d", i, prevLives, ctx.Run.Lives)
		}
		if ctx.Run.Lives == 0 {
			t.Fatalf("tick %d: zero lives while still in game", i)
		}
		if n := ctx.Arena.Count(world.RoleHook); n > 1 {
			t.Fatalf("tick %d: %d hooks", i, n)
		}
		prevScore, prevLives = ctx.Run.Score, ctx.Run.Lives
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
		}
		if i%100 < 50 {
			inputs[i].SetHeld(core.ActionRight)
		} else {
			inputs[i].SetHeld(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		a := startGame(t)
		for _, in := range inputs {
			a.Step(in)
		}
		return a.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hashes differ: %d vs %d", s1.Hash(), s2.Hash())
	}
	if len(s1.Entities) != s1.EntityCount*entityFields {
		t.Errorf("snapshot holds %d ints for %d entities", len(s1.Entities), s1.EntityCount)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	a := startGame(t)
	a.Step(core.NewInputFrame())
	before := a.Snapshot()

	a.Step(press(core.ActionPause))
	if !a.State().Paused {
		t.Fatal("pause should toggle on")
	}
	for i := 0; i < 30; i++ {
		a.Step(core.NewInputFrame())
	}
	paused := a.Snapshot()
	if !slices.Equal(before.Entities, paused.Entities) {
		t.Error("entities moved while paused")
	}

	a.Step(press(core.ActionPause))
	if a.State().Paused {
		t.Fatal("pause should toggle off")
	}
	if slices.Equal(paused.Entities, a.Snapshot().Entities) {
		t.Error("simulation should resume")
	}
}

func TestInvalidTransitionIsRejected(t *testing.T) {
	a := newTestApp(t)
	if a.transition(StateSplash) {
		t.Fatal("Menu -> Splash must be rejected")
	}
	if a.AppState() != StateMenu {
		t.Errorf("state changed to %s", a.AppState())
	}
}

func TestRenderScreens(t *testing.T) {
	a := New()
	a.Reset(core.DefaultConfig())
	s := core.NewScreen(80, 24)

	a.Render(s)
	if !strings.Contains(s.String(), "|___/") {
		t.Errorf("splash should draw the logo:\n%s", s.String())
	}

	for a.AppState() == StateSplash {
		a.Step(core.NewInputFrame())
	}
	a.Render(s)
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("menus are laid out by the platform, Render should leave them blank:\n%s", s.String())
	}

	a.Step(press(core.ActionConfirm))
	a.Step(core.NewInputFrame())
	a.Render(s)
	out := s.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Lives: 3") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if s.Get(0, 23) != WallChar || s.Get(79, 12) != WallChar {
		t.Errorf("walls should frame the arena:\n%s", out)
	}
}

func TestQuitActionAnywhere(t *testing.T) {
	a := New()
	a.Reset(core.DefaultConfig())
	if res := a.Step(press(core.ActionQuit)); !res.State.Quit || res.State.Mode != "Splash" {
		t.Errorf("state = %+v", res.State)
	}
}

func TestAppTopScoresShowsBestFive(t *testing.T) {
	board := NewMemoryLeaderboard()
	for _, s := range []int{100, 400, 250, 400, 50, 10} {
		_ = board.Record(s)
	}
	a := New(WithLeaderboard(board))
	a.Reset(core.DefaultConfig())

	if got := a.TopScores(); !slices.Equal(got, []int{400, 400, 250, 100, 50}) {
		t.Errorf("TopScores() = %v", got)
	}
}

func TestStepIsFixedWhateverTheTickRate(t *testing.T) {
	for _, rate := range []int{15, 30, 60, 144} {
		a := New()
		a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: rate})
		if a.Context().DT != 1.0/60.0 {
			t.Errorf("rate %d: DT = %v, expected 1/60", rate, a.Context().DT)
		}
		if a.splashTicks != 120 {
			t.Errorf("rate %d: splash lasts %d steps, expected 120", rate, a.splashTicks)
		}
	}
}
