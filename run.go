// Package clicker provides utilities for building incremental
// ("clicker") games on the go-libui widget toolkit.
//
// A game is an ordinary toolkit App whose state lives in resource
// Pools and purchasable Upgrades, plus an optional timer tick for
// automatic generation. Run wraps the toolkit's window setup and
// event loop, adding the one thing an idle game needs that the stock
// loop does not have: a periodic repaint driven by the tick.
//
// Example usage:
//
//	err := clicker.Run("My Game", &myGame{})
//	if err != nil {
//		log.Fatal(err)
//	}
package clicker

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/elizafairlady/go-libui/draw"
	"github.com/elizafairlady/go-libui/ui/fsys"
	"github.com/elizafairlady/go-libui/ui/layout"
	"github.com/elizafairlady/go-libui/ui/proto"
	"github.com/elizafairlady/go-libui/ui/render"
	"github.com/elizafairlady/go-libui/ui/theme"
	"github.com/elizafairlady/go-libui/ui/uifs"
	"github.com/elizafairlady/go-libui/ui/view"
)

// TickApp is an App that also advances on a timer. If the app passed
// to Run implements it, Tick runs on the event loop every
// TickInterval and the window repaints afterwards. Tick shares the
// loop with input handling, so it mutates state without locking.
type TickApp interface {
	view.App
	TickInterval() time.Duration
	Tick(s view.State)
}

// Run creates a window, initializes the display, and runs the event
// loop for the given game app. It returns when the window closes or
// the app sets the "_quit" state flag.
//
// The loop handles the widget set clicker UIs are built from: text,
// buttons, checkboxes, and box containers. Buttons fire their "on"
// action on B1 click or Enter; checkboxes toggle on click or Space;
// Tab cycles focus; DEL quits.
func Run(title string, app view.App) error {
	d, err := draw.Init(nil, "", title)
	if err != nil {
		return fmt.Errorf("clicker: init display: %w", err)
	}
	defer d.Close()

	mc, err := draw.InitMouse("", d.ScreenImage)
	if err != nil {
		return fmt.Errorf("clicker: init mouse: %w", err)
	}
	defer mc.Close()

	kc, err := draw.InitKeyboard("")
	if err != nil {
		return fmt.Errorf("clicker: init keyboard: %w", err)
	}
	defer kc.Close()

	th := theme.Default()
	r := render.New(d, th)
	u := uifs.New(app)

	// Post the 9P state server to /srv so the running game's state
	// can be mounted and inspected. Non-fatal: play continues without it.
	srv := fsys.NewStateServer(&stateProvider{u: u, r: r})
	if err := srv.Post(srvName(title)); err != nil {
		fmt.Fprintf(os.Stderr, "clicker: 9P server: %v\n", err)
	}

	// Generation timer, if the app ticks.
	var tick <-chan time.Time
	ta, ticks := app.(TickApp)
	if ticks {
		tk := time.NewTicker(ta.TickInterval())
		defer tk.Stop()
		tick = tk.C
	}

	conf := r.LayoutConfig()

	buildAndLayout := func() (*proto.Tree, *layout.RNode) {
		tree := u.Tree()
		if tree == nil {
			return nil, nil
		}
		root := layout.Build(tree, conf)
		if root == nil {
			return tree, nil
		}
		layout.Layout(root, d.ScreenImage.R, conf)
		return tree, root
	}

	repaint := func() {
		_, root := buildAndLayout()
		if root == nil {
			return
		}
		r.Focus = u.Focus
		r.Paint(root)
	}

	checkQuit := func() bool {
		return u.GetState("_quit") == "1"
	}

	repaint()
	if checkQuit() {
		return nil
	}

	for {
		select {
		case <-tick:
			ta.Tick(u.State())
			u.Invalidate()
			repaint()
			if checkQuit() {
				return nil
			}

		case m, ok := <-mc.C:
			if !ok {
				return nil
			}
			if m.Buttons == 0 {
				// Update hover
				_, root := buildAndLayout()
				if root != nil {
					if hit := layout.HitTest(root, m.Point); hit != nil {
						r.Hover = hit.ID
					} else {
						r.Hover = ""
					}
				}
				repaint()
				continue
			}

			_, root := buildAndLayout()
			if root == nil {
				continue
			}

			button := 1
			if m.Buttons&2 != 0 {
				button = 2
			} else if m.Buttons&4 != 0 {
				button = 3
			}

			hit := layout.HitTest(root, m.Point)
			if hit != nil {
				if u.Focus != hit.ID {
					u.SetFocus(hit.ID)
					r.Focus = hit.ID
				}
				if act := render.MouseAction(hit, button, m.Point); act != nil {
					u.HandleAction(act)
				}
			}
			repaint()
			if checkQuit() {
				return nil
			}

		case key, ok := <-kc.C:
			if !ok {
				return nil
			}
			if key == 0 {
				continue
			}

			// Tab navigation
			if key == '\t' {
				_, root := buildAndLayout()
				if root != nil {
					next := render.NextFocusable(root, u.Focus)
					u.SetFocus(next)
					r.Focus = next
				}
				repaint()
				continue
			}

			// Enter on button
			if (key == '\n' || key == '\r') && u.Focus != "" {
				tree := u.Tree()
				if tree != nil {
					node := tree.Nodes[u.Focus]
					if node != nil && node.Type == "button" {
						act := &proto.Action{
							Kind: "click",
							KVs: map[string]string{
								"id":     u.Focus,
								"button": "1",
							},
						}
						if on := node.Props["on"]; on != "" {
							act.KVs["action"] = on
						}
						u.HandleAction(act)
						repaint()
						continue
					}
				}
			}

			// Space on checkbox
			if key == ' ' && u.Focus != "" {
				tree := u.Tree()
				if tree != nil {
					node := tree.Nodes[u.Focus]
					if node != nil && node.Type == "checkbox" {
						v := "1"
						if node.Props["checked"] == "1" {
							v = "0"
						}
						act := &proto.Action{
							Kind: "toggle",
							KVs: map[string]string{
								"id":    u.Focus,
								"value": v,
							},
						}
						u.HandleAction(act)
						repaint()
						continue
					}
				}
			}

			// Quit on DEL
			if key == draw.Kdel {
				return nil
			}

			// Generic key action
			if u.Focus != "" {
				u.HandleAction(render.KeyAction(u.Focus, key, render.KeyName(key)))
			}

			repaint()
			if checkQuit() {
				return nil
			}

		case <-mc.Resize:
			d.GetWindow(draw.Refnone)
			r.Screen = d.ScreenImage
			repaint()
		}
	}
}

// srvName returns the /srv name for the 9P state server:
// "clicker.<title>", sanitized for use as a /srv filename.
func srvName(title string) string {
	safe := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, title)
	if safe == "" {
		safe = "game"
	}
	return "clicker." + strings.ToLower(safe)
}

// stateProvider adapts the UIFS and Renderer into the
// fsys.StateProvider interface for the 9P state server. Clicker UIs
// have no editable tag or body widgets, so those parts of the
// interface report empty.
type stateProvider struct {
	u *uifs.UIFS
	r *render.Renderer
}

var _ fsys.StateProvider = (*stateProvider)(nil)

func (p *stateProvider) GetState(path string) string {
	return p.u.GetState(path)
}

func (p *stateProvider) SetState(path, value string) {
	p.u.SetState(path, value)
}

func (p *stateProvider) ListState(dir string) []string {
	return p.u.State().List(dir)
}

func (p *stateProvider) TreeText() string {
	return p.u.TreeText()
}

func (p *stateProvider) ProcessAction(line string) error {
	return p.u.ProcessAction(line)
}

func (p *stateProvider) GetFocus() string {
	return p.u.Focus
}

func (p *stateProvider) SetFocus(id string) {
	p.u.SetFocus(id)
	p.r.Focus = id
}

func (p *stateProvider) BodyText(id string) string { return "" }

func (p *stateProvider) SetBodyText(id, text string) {}

func (p *stateProvider) BodyIDs() []string { return nil }

func (p *stateProvider) TagText(id string) string { return "" }

func (p *stateProvider) TagIDs() []string { return nil }
