package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/navicust/navicust"
)

// browse renders each solution from search as a grid of colored cells in
// a terminal screen. Right/space advances to the next solution, left goes
// back to a previously seen one, q or Esc quits. Solutions are collected
// lazily as the user pages forward and cached in history, since
// search.Solutions() is a single forward-only lazy sequence, not an
// index-addressable slice.
func browse(search *navicust.Search, cat catalog) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer screen.Fini()

	next, stop := pull(search)
	defer stop()

	var history [][]int32
	cursor := -1

	advance := func() bool {
		if cursor+1 < len(history) {
			cursor++
			return true
		}
		sol, ok := next()
		if !ok {
			return false
		}
		cells, err := navicust.PlaceAll(cat.Parts, cat.Requirements, sol, cat.Grid)
		if err != nil {
			return false
		}
		history = append(history, cells)
		cursor++

		return true
	}

	if !advance() {
		return search.Err()
	}

	for {
		draw(screen, history[cursor], cat.Grid, cursor+1)
		screen.Show()

		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			switch {
			case e.Key() == tcell.KeyEscape || e.Rune() == 'q':
				return nil
			case e.Key() == tcell.KeyRight || e.Rune() == ' ':
				advance()
			case e.Key() == tcell.KeyLeft:
				if cursor > 0 {
					cursor--
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// pull adapts the push-style iter.Seq into a pull-style next() function
// by running the range loop on a goroutine and handing values across an
// unbuffered channel, the standard bridge for consuming a Go iterator
// one value at a time from an event loop that cannot itself block inside
// the range body.
func pull(search *navicust.Search) (next func() (navicust.Solution, bool), stop func()) {
	values := make(chan navicust.Solution)
	done := make(chan struct{})

	go func() {
		defer close(values)
		for sol := range search.Solutions() {
			select {
			case values <- sol:
			case <-done:
				return
			}
		}
	}()

	var stopped bool
	return func() (navicust.Solution, bool) {
			sol, ok := <-values
			return sol, ok
		}, func() {
			if !stopped {
				stopped = true
				close(done)
			}
		}
}

var palette = []tcell.Color{
	tcell.ColorBlue, tcell.ColorGreen, tcell.ColorYellow, tcell.ColorRed,
	tcell.ColorPurple, tcell.ColorTeal, tcell.ColorOrange, tcell.ColorFuchsia,
}

func draw(screen tcell.Screen, cells []int32, gs navicust.GridSettings, index int) {
	screen.Clear()
	title := fmt.Sprintf("solution %d  (←/→ to browse, q to quit)", index)
	for i, r := range title {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	for y := 0; y < gs.Height; y++ {
		for x := 0; x < gs.Width; x++ {
			v := cells[y*gs.Width+x]
			style := tcell.StyleDefault
			ch := '.'
			if v >= 0 {
				ch = ' '
				style = style.Background(palette[int(v)%len(palette)])
			}
			screen.SetContent(x*2+1, y+2, ch, nil, style)
			screen.SetContent(x*2+2, y+2, ' ', nil, style)
		}
	}
}
