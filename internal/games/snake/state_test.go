package snake

import (
	"errors"
	"math/rand"
	"testing"
)

// newScripted builds a game with a fixed body, heading and food.
func newScripted(t *testing.T, w, h int, body []Position, heading Direction, food Position) *GameState {
	t.Helper()

	g, err := New(w, h, WithSeed(1))
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	for i := range g.occupied {
		g.occupied[i] = false
	}
	g.body = nil
	for i := len(body) - 1; i >= 0; i-- {
		g.pushHead(body[i])
	}
	g.heading = heading
	g.food = food
	g.hasFood = true
	return g
}

func TestNewInitialState(t *testing.T) {
	tests := []struct {
		w, h int
		head Position
	}{
		{4, 4, Position{2, 2}},
		{20, 15, Position{10, 7}},
		{5, 1, Position{2, 0}},
		{1, 3, Position{0, 1}},
	}

	for _, tc := range tests {
		g, err := New(tc.w, tc.h, WithSeed(7))
		if err != nil {
			t.Fatalf("New(%d, %d) failed: %v", tc.w, tc.h, err)
		}

		body := g.Body()
		if len(body) != 1 || body[0] != tc.head {
			t.Errorf("New(%d, %d) body = %v, expected [%v]", tc.w, tc.h, body, tc.head)
		}
		if g.Heading() != DirLeft {
			t.Errorf("New(%d, %d) heading = %v, expected left", tc.w, tc.h, g.Heading())
		}
		if g.Terminal() {
			t.Errorf("New(%d, %d) should not be terminal", tc.w, tc.h)
		}
		if !g.HasFood() {
			t.Errorf("New(%d, %d) should place food", tc.w, tc.h)
		}
		if g.Occupied(g.Food()) {
			t.Errorf("New(%d, %d) placed food on the snake at %v", tc.w, tc.h, g.Food())
		}
		if !g.InBounds(g.Food()) {
			t.Errorf("New(%d, %d) placed food off the board at %v", tc.w, tc.h, g.Food())
		}
	}
}

func TestNewRejectsInvalidBoard(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		g, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("New(%d, %d) error = %v, expected ErrInvalidBoard", dims[0], dims[1], err)
		}
		if g != nil {
			t.Errorf("New(%d, %d) should not return a game", dims[0], dims[1])
		}
	}
}

func TestNewSingleCellBoardHasNoFood(t *testing.T) {
	g, err := New(1, 1, WithSeed(1))
	if err != nil {
		t.Fatalf("New(1, 1) failed: %v", err)
	}
	if g.HasFood() {
		t.Error("1x1 board has no free cell for food")
	}
	if g.Food() != (Position{-1, -1}) {
		t.Errorf("Food() = %v without food, expected (-1, -1)", g.Food())
	}
	if g.Terminal() {
		t.Error("new game should not start terminal")
	}

	g.Tick()
	if !g.Terminal() || g.EndReason() != EndWall {
		t.Errorf("first tick on 1x1 should hit the wall, got terminal=%v reason=%v", g.Terminal(), g.EndReason())
	}
}

func TestFirstTickExample(t *testing.T) {
	g, err := New(4, 4, WithSeed(3))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	ateFood := g.Food() == Position{1, 2}

	g.Tick()

	if g.Terminal() {
		t.Fatal("moving left from (2,2) should not end the game")
	}
	if g.Head() != (Position{1, 2}) {
		t.Errorf("head = %v, expected (1,2)", g.Head())
	}
	expectedLen := 1
	if ateFood {
		expectedLen = 2
	}
	if g.Len() != expectedLen {
		t.Errorf("length = %d, expected %d", g.Len(), expectedLen)
	}
}

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Position
	}{
		{DirUp, Position{2, 1}},
		{DirDown, Position{2, 3}},
		{DirLeft, Position{1, 2}},
		{DirRight, Position{3, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			g := newScripted(t, 5, 5, []Position{{2, 2}}, tc.dir, Position{4, 4})
			g.Tick()
			if g.Head() != tc.expected {
				t.Errorf("heading %s moved head to %v, expected %v", tc.dir, g.Head(), tc.expected)
			}
		})
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		g := newScripted(t, 5, 5, []Position{{2, 2}}, d, Position{4, 4})
		g.SetDirection(d.Opposite())
		if g.Heading() != d {
			t.Errorf("SetDirection(%s) changed heading %s", d.Opposite(), d)
		}
	}
}

func TestSetDirectionLatestWins(t *testing.T) {
	g := newScripted(t, 5, 5, []Position{{2, 2}}, DirLeft, Position{4, 4})

	g.SetDirection(DirUp)
	g.SetDirection(DirRight) // No longer the opposite of the current heading
	if g.Heading() != DirRight {
		t.Fatalf("heading = %s, expected right", g.Heading())
	}

	g.Tick()
	if g.Head() != (Position{3, 2}) {
		t.Errorf("head = %v, expected (3,2)", g.Head())
	}
}

func TestSetDirectionIgnoresInvalid(t *testing.T) {
	g := newScripted(t, 5, 5, []Position{{2, 2}}, DirLeft, Position{4, 4})
	g.SetDirection(Direction(42))
	if g.Heading() != DirLeft {
		t.Errorf("invalid direction changed heading to %v", g.Heading())
	}
}

func TestGrowthOnFood(t *testing.T) {
	g := newScripted(t, 5, 5, []Position{{2, 2}, {3, 2}}, DirLeft, Position{1, 2})

	g.Tick()

	want := []Position{{1, 2}, {2, 2}, {3, 2}}
	body := g.Body()
	if len(body) != len(want) {
		t.Fatalf("body = %v, expected %v", body, want)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], want[i])
		}
	}
	if !g.HasFood() {
		t.Fatal("food should be replaced after eating")
	}
	for _, seg := range body {
		if seg == g.Food() {
			t.Errorf("new food %v placed on the snake", g.Food())
		}
	}
}

func TestMoveWithoutFoodKeepsLength(t *testing.T) {
	g := newScripted(t, 6, 6, []Position{{3, 3}, {4, 3}, {5, 3}}, DirLeft, Position{0, 0})

	g.Tick()

	want := []Position{{2, 3}, {3, 3}, {4, 3}}
	body := g.Body()
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], want[i])
		}
	}
	if g.Len() != 3 {
		t.Errorf("length = %d, expected 3", g.Len())
	}
	if g.Occupied(Position{5, 3}) {
		t.Error("old tail cell should be freed")
	}
	if g.Food() != (Position{0, 0}) {
		t.Errorf("food moved to %v without being eaten", g.Food())
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name    string
		head    Position
		heading Direction
	}{
		{"left edge", Position{0, 2}, DirLeft},
		{"right edge", Position{4, 2}, DirRight},
		{"top edge", Position{2, 0}, DirUp},
		{"bottom edge", Position{2, 4}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			food := Position{1, 1}
			g := newScripted(t, 5, 5, []Position{tc.head}, tc.heading, food)

			g.Tick()

			if !g.Terminal() {
				t.Fatal("moving off the board should end the game")
			}
			if g.EndReason() != EndWall {
				t.Errorf("reason = %v, expected wall", g.EndReason())
			}
			if body := g.Body(); len(body) != 1 || body[0] != tc.head {
				t.Errorf("body changed on wall hit: %v", body)
			}
			if g.Food() != food {
				t.Errorf("food changed on wall hit: %v", g.Food())
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	body := []Position{{2, 2}, {2, 3}, {1, 3}, {1, 2}, {1, 1}}
	g := newScripted(t, 5, 5, body, DirLeft, Position{4, 4})

	g.Tick()

	if !g.Terminal() || g.EndReason() != EndSelf {
		t.Fatalf("terminal=%v reason=%v, expected self collision", g.Terminal(), g.EndReason())
	}
	if g.Len() != len(body) || g.Head() != body[0] {
		t.Errorf("body changed on self collision: %v", g.Body())
	}
}

func TestDoubleTurnIntoNeck(t *testing.T) {
	tests := []struct {
		name string
		body []Position
	}{
		{"length 2, neck is the tail", []Position{{2, 2}, {3, 2}}},
		{"length 3", []Position{{2, 2}, {3, 2}, {4, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newScripted(t, 5, 5, tt.body, DirLeft, Position{0, 0})

			// Up then Right inside one tick points the head back at the neck.
			g.SetDirection(DirUp)
			g.SetDirection(DirRight)
			g.Tick()

			if !g.Terminal() || g.EndReason() != EndSelf {
				t.Fatalf("terminal=%v reason=%v body=%v, expected self collision",
					g.Terminal(), g.EndReason(), g.Body())
			}
			if g.Head() != tt.body[0] || g.Len() != len(tt.body) {
				t.Errorf("body changed on self collision: %v", g.Body())
			}
		})
	}
}

func TestChasingTailIsAllowed(t *testing.T) {
	body := []Position{{2, 2}, {2, 3}, {1, 3}, {1, 2}}
	g := newScripted(t, 5, 5, body, DirLeft, Position{4, 4})

	g.Tick()

	if g.Terminal() {
		t.Fatalf("moving into the vacating tail should be legal, got %v", g.EndReason())
	}
	if g.Head() != (Position{1, 2}) {
		t.Errorf("head = %v, expected (1,2)", g.Head())
	}
	if g.Len() != 4 {
		t.Errorf("length = %d, expected 4", g.Len())
	}
	if !g.Occupied(Position{1, 2}) {
		t.Error("head cell must stay occupied after the tail leaves it")
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	g := newScripted(t, 3, 1, []Position{{1, 0}, {2, 0}}, DirLeft, Position{0, 0})

	g.Tick()

	if !g.Terminal() || g.EndReason() != EndBoardFull {
		t.Fatalf("terminal=%v reason=%v, expected board full", g.Terminal(), g.EndReason())
	}
	if g.Len() != 3 {
		t.Errorf("length = %d, expected the snake to fill all 3 cells", g.Len())
	}
	if g.HasFood() {
		t.Error("full board should have no food")
	}
	if g.Food() != (Position{-1, -1}) {
		t.Errorf("Food() = %v on a full board, expected (-1, -1)", g.Food())
	}
	if g.Snapshot().Occupies(g.Food()) {
		t.Error("full board reports food on the snake")
	}
}

func TestTerminalIsAbsorbing(t *testing.T) {
	g := newScripted(t, 4, 4, []Position{{0, 1}}, DirLeft, Position{3, 3})
	g.Tick()
	if !g.Terminal() {
		t.Fatal("expected wall collision")
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	after := g.Snapshot()

	if after.Ticks != before.Ticks || after.Food != before.Food || after.Reason != before.Reason {
		t.Errorf("terminal game changed: before %+v, after %+v", before, after)
	}
	if len(after.Body) != len(before.Body) || after.Body[0] != before.Body[0] {
		t.Errorf("terminal game body changed: %v -> %v", before.Body, after.Body)
	}
}

func TestDeterminism(t *testing.T) {
	g1, _ := New(12, 9, WithSeed(12345))
	g2, _ := New(12, 9, WithSeed(12345))

	dirs := []Direction{DirUp, DirRight, DirDown, DirLeft}
	for i := 0; i < 200; i++ {
		if i%3 == 0 {
			d := dirs[(i/3)%len(dirs)]
			g1.SetDirection(d)
			g2.SetDirection(d)
		}
		g1.Tick()
		g2.Tick()
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Ticks != s2.Ticks || s1.Food != s2.Food || s1.Reason != s2.Reason || s1.Len() != s2.Len() {
		t.Errorf("same seed diverged: %+v vs %+v", s1, s2)
	}
}

// TestInvariantsUnderRandomPlay drives many games with random turns and
// checks the board invariants after every tick.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := New(6, 5, WithSeed(seed))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		for step := 0; step < 400; step++ {
			if rng.Intn(3) == 0 {
				g.SetDirection(Direction(rng.Intn(4)))
			}
			prevLen := g.Len()
			wasTerminal := g.Terminal()
			prev := g.Snapshot()

			g.Tick()
			checkInvariants(t, g)

			switch {
			case wasTerminal:
				if g.Snapshot().Ticks != prev.Ticks || g.Len() != prevLen {
					t.Fatalf("seed %d: terminal game changed", seed)
				}
			case g.Terminal() && g.EndReason() != EndBoardFull:
				if g.Len() != prevLen {
					t.Fatalf("seed %d: collision changed length %d -> %d", seed, prevLen, g.Len())
				}
			default:
				if d := g.Len() - prevLen; d != 0 && d != 1 {
					t.Fatalf("seed %d: length changed by %d", seed, d)
				}
			}
		}
	}
}

func checkInvariants(t *testing.T, g *GameState) {
	t.Helper()

	seen := make(map[Position]bool)
	for _, p := range g.Body() {
		if !g.InBounds(p) {
			t.Fatalf("body cell %v off the board", p)
		}
		if seen[p] {
			t.Fatalf("body cell %v repeated in %v", p, g.Body())
		}
		seen[p] = true
	}

	count := 0
	for _, taken := range g.occupied {
		if taken {
			count++
		}
	}
	if count != g.Len() {
		t.Fatalf("occupancy grid has %d cells, body has %d", count, g.Len())
	}

	if g.HasFood() {
		if !g.InBounds(g.Food()) {
			t.Fatalf("food %v off the board", g.Food())
		}
		if seen[g.Food()] {
			t.Fatalf("food %v on the snake", g.Food())
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{"up", DirUp, false},
		{"DOWN", DirDown, false},
		{" left ", DirLeft, false},
		{"r", DirRight, false},
		{"sideways", DirUp, true},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.expected {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
