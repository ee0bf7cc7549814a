package regions

import "testing"

func TestTallestColumn(t *testing.T) {
	// Column x=2 spans y=0..3 (height 3); the others are shorter.
	b := binFromRows([]string{
		"..#..",
		".##..",
		".##.#",
		"..#.#",
	})

	regs := Label(b)
	if len(regs) != 2 {
		t.Fatalf("regions: got %d, want 2", len(regs))
	}

	col := regs[0].TallestColumn()
	if col.X != 2 {
		t.Errorf("column x: got %d, want 2", col.X)
	}
	if col.TopY != 0 || col.BotY != 3 {
		t.Errorf("column span: got %d..%d, want 0..3", col.TopY, col.BotY)
	}
	if col.Height() != 3 {
		t.Errorf("height: got %d, want 3", col.Height())
	}
}

func TestTallestColumn_TieBreaksToSmallestX(t *testing.T) {
	// Columns x=1 and x=3 both span height 2; x=1 must win.
	b := binFromRows([]string{
		".#.#.",
		".#.#.",
		".#.#.",
	})

	// One region: the columns connect through diagonals? They do not
	// touch (gap at x=2), so force a single region by measuring each.
	regs := Label(b)
	if len(regs) != 2 {
		t.Fatalf("regions: got %d, want 2", len(regs))
	}
	col := regs[0].TallestColumn()
	if col.X != 1 {
		t.Errorf("first region column: got x=%d, want 1", col.X)
	}

	// Same tie inside a single region.
	b2 := binFromRows([]string{
		"###",
		"#.#",
		"###",
	})
	regs2 := Label(b2)
	if len(regs2) != 1 {
		t.Fatalf("regions: got %d, want 1", len(regs2))
	}
	col2 := regs2[0].TallestColumn()
	if col2.X != 0 {
		t.Errorf("tied columns: got x=%d, want 0", col2.X)
	}
	if col2.Height() != 2 {
		t.Errorf("tied height: got %d, want 2", col2.Height())
	}
}

func TestTallestColumn_SinglePixelRegion(t *testing.T) {
	b := binFromRows([]string{
		"....",
		".#..",
	})
	regs := Label(b)
	col := regs[0].TallestColumn()
	if col.X != 1 || col.Height() != 0 {
		t.Errorf("single pixel: got x=%d height=%d, want x=1 height=0", col.X, col.Height())
	}
}

func TestBottomSpan(t *testing.T) {
	b := binFromRows([]string{
		".###.",
		".###.",
		"..#..",
	})
	regs := Label(b)
	minX, maxX, y := regs[0].BottomSpan()
	if y != 2 {
		t.Errorf("bottom row: got %d, want 2", y)
	}
	if minX != 2 || maxX != 2 {
		t.Errorf("span: got %d..%d, want 2..2", minX, maxX)
	}
}

func TestBottomBand(t *testing.T) {
	// Base row is y=5; the band of depth 3 covers y=2..5.
	b := binFromRows([]string{
		"#.......",
		"........",
		".#......",
		"........",
		"........",
		"....###.",
	})

	band, ok := BottomBand(b, 3)
	if !ok {
		t.Fatal("BottomBand reported empty indicator")
	}
	if band.BaseY != 5 {
		t.Errorf("base y: got %d, want 5", band.BaseY)
	}
	// The band collects x=1 (y=2) and x=4..6 (y=5); x=0 at y=0 is
	// above the band and excluded.
	if band.MinX != 1 || band.MaxX != 6 {
		t.Errorf("band span: got %d..%d, want 1..6", band.MinX, band.MaxX)
	}
	if band.Width() != 5 {
		t.Errorf("width: got %d, want 5", band.Width())
	}
}

func TestBottomBand_SingleRow(t *testing.T) {
	// All pixels at one y: width is the true span.
	b := binFromRows([]string{
		"........",
		"..####..",
	})
	band, ok := BottomBand(b, 3)
	if !ok {
		t.Fatal("BottomBand reported empty indicator")
	}
	if band.Width() != 3 {
		t.Errorf("width: got %d, want 3", band.Width())
	}

	// A single pixel yields width 0.
	b2 := binFromRows([]string{
		"....",
		"..#.",
	})
	band2, _ := BottomBand(b2, 3)
	if band2.Width() != 0 {
		t.Errorf("single pixel width: got %d, want 0", band2.Width())
	}
}

func TestBottomBand_EmptyIndicator(t *testing.T) {
	if _, ok := BottomBand(NewBinary(5, 5), 3); ok {
		t.Error("empty indicator should report no band")
	}
}
