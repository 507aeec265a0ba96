// Package menu is the difficulty selection screen shown before every game
package menu

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/tako/game"
	"github.com/lixenwraith/tako/render"
)

const helpText = " [::b]enter[::-] play   [::b]1-3[::-] pick   [::b]esc/q[::-] quit"

var blurbs = map[game.Difficulty]string{
	game.Playable:  "the maze holds still",
	game.Hard:      "the maze turns, faster with every win",
	game.Takodachi: "time for pain",
}

var accents = map[game.Difficulty]tcell.Color{
	game.Playable:  render.RgbPlayable,
	game.Hard:      render.RgbHard,
	game.Takodachi: render.RgbTakodachi,
}

// Choice is the result of one menu visit
type Choice struct {
	Difficulty game.Difficulty
	Quit       bool
}

// Menu is a tview list of difficulty tiers
type Menu struct {
	app    *tview.Application
	list   *tview.List
	status *tview.TextView
	choice Choice
}

// New builds the menu with initial preselected; status is shown under the list
func New(initial game.Difficulty, status string) *Menu {
	setTheme()

	m := &Menu{
		app:    tview.NewApplication(),
		choice: Choice{Quit: true},
	}

	m.list = tview.NewList()
	m.list.SetBorder(true)
	m.list.SetTitle(" TAKO ")
	m.list.SetMainTextColor(tcell.ColorWhite)
	m.list.SetSecondaryTextColor(tcell.ColorLightGray)
	m.list.SetSelectedTextColor(tcell.ColorBlack)
	m.list.SetSelectedBackgroundColor(render.RgbPlayer)
	m.list.SetUseStyleTags(true, false)
	for i, d := range game.Difficulties {
		m.list.AddItem(fmt.Sprintf("[#%06x]%s", accents[d].Hex(), d), blurbs[d], rune('1'+i), nil)
	}
	m.list.SetCurrentItem(int(initial))
	m.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		m.choice = Choice{Difficulty: game.Difficulties[index]}
		m.app.Stop()
	})
	m.list.SetDoneFunc(func() {
		m.choice = Choice{Quit: true}
		m.app.Stop()
	})

	m.status = tview.NewTextView().SetDynamicColors(true)
	m.status.SetText(status + "\n" + helpText)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(m.list, 48, 0, true).
			AddItem(nil, 0, 1, false), 8, 0, true).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(m.status, 48, 0, false).
			AddItem(nil, 0, 1, false), 2, 0, false).
		AddItem(nil, 0, 1, false)

	m.app.SetRoot(layout, true).SetFocus(m.list)
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			m.choice = Choice{Quit: true}
			m.app.Stop()
			return nil
		}
		return event
	})

	return m
}

// Run blocks until a tier is picked or the player quits
func (m *Menu) Run() (Choice, error) {
	if err := m.app.Run(); err != nil {
		return Choice{Quit: true}, fmt.Errorf("menu: %w", err)
	}
	return m.choice, nil
}

func setTheme() {
	tview.Styles.PrimitiveBackgroundColor = render.RgbBackground
	tview.Styles.ContrastBackgroundColor = render.RgbBackground
	tview.Styles.BorderColor = render.RgbPlayer
	tview.Styles.TitleColor = render.RgbPlayer
	tview.Styles.PrimaryTextColor = render.RgbStatusBar
	tview.Styles.SecondaryTextColor = render.RgbStatusDim
}
