// Package userform is the user entry page: a name input, a location picker
// filled from the location service, and the table of accepted users.
package userform

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/vcrobe/userform/events"
	"github.com/vcrobe/userform/internal/form"
	"github.com/vcrobe/userform/runtime"
	"github.com/vcrobe/userform/vdom"
)

const locationPlaceholder = "Select Location"

// UserForm renders a form.Form and forwards user input to it.
type UserForm struct {
	runtime.ComponentBase

	// Form holds all state; the component only renders it.
	Form *form.Form

	// Log receives failures of background work. Optional.
	Log *zap.SugaredLogger

	// Async runs background work (location fetch, name check). Remote calls
	// must not block a browser event callback, so the default starts a
	// goroutine; tests substitute a synchronous runner.
	Async func(func())

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
}

// OnInit subscribes to form changes and starts loading the locations.
func (c *UserForm) OnInit() {
	if c.Log == nil {
		c.Log = zap.NewNop().Sugar()
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.unsubscribe = c.Form.Changes().Subscribe(c.StateHasChanged)

	c.run(func() {
		// Failures are logged by the form; the picker just stays empty.
		_ = c.Form.LoadLocations(c.ctx)
	})
}

// OnDestroy releases the subscription and abandons pending work.
func (c *UserForm) OnDestroy() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.Form.Close()
}

// HandleNameInput is bound to the name input's input event.
func (c *UserForm) HandleNameInput(e events.ChangeEventArgs) {
	c.Form.SetName(e.Value)
}

// HandleLocationChange is bound to the location select's change event.
func (c *UserForm) HandleLocationChange(e events.ChangeEventArgs) {
	c.Form.SetLocation(e.Value)
}

// HandleReset is bound to the Clear button.
func (c *UserForm) HandleReset() {
	c.Form.Reset()
}

// HandleSubmit is bound to the Add button.
func (c *UserForm) HandleSubmit() {
	c.run(func() {
		ctx := c.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		outcome, err := c.Form.Submit(ctx)
		if err != nil {
			c.Log.Warnw("submission failed", "outcome", outcome.String(), "error", err)
		}
	})
}

func (c *UserForm) run(fn func()) {
	if c.Async != nil {
		c.Async(fn)
		return
	}
	go fn()
}

// Render builds the page from the current form snapshot.
func (c *UserForm) Render(r runtime.Renderer) *vdom.VNode {
	s := c.Form.Snapshot()

	return vdom.Div(map[string]any{"class": "page"},
		vdom.Form(map[string]any{"class": "user-form"},
			c.renderNameInput(s),
			c.renderLocationInput(s),
			c.renderButtons(s),
		),
		vdom.TextElement("h4", nil, "Users"),
		r.RenderChild(usersTableKey, &UsersTable{Users: s.Users, Loading: s.Loading()}),
	)
}

func (c *UserForm) renderNameInput(s form.State) *vdom.VNode {
	return vdom.Div(map[string]any{"id": "name-input", "class": "form-element"},
		vdom.Span("Name", map[string]any{"class": "field-label"}),
		vdom.Div(map[string]any{"class": "input-field"},
			vdom.InputText(s.Fields.Name, map[string]any{
				"class":       "name-input",
				"placeholder": "type name here",
				"onInput":     events.AdaptChangeEvent(c.HandleNameInput),
			}),
			errorText(s.Errors.Name()),
		),
	)
}

func (c *UserForm) renderLocationInput(s form.State) *vdom.VNode {
	options := append(
		[]*vdom.VNode{vdom.Option("", locationPlaceholder, map[string]any{"disabled": true, "hidden": true})},
		lo.Map(s.Locations, func(loc string, _ int) *vdom.VNode {
			return vdom.Option(loc, loc, nil)
		})...,
	)

	return vdom.Div(map[string]any{"id": "location-input", "class": "form-element"},
		vdom.Span("Location", map[string]any{"class": "field-label"}),
		vdom.Div(map[string]any{"class": "input-field"},
			vdom.Select(s.Fields.Location, map[string]any{
				"class":    "location-input",
				"onChange": events.AdaptChangeEvent(c.HandleLocationChange),
			}, options...),
			errorText(s.Errors.Location()),
		),
	)
}

func (c *UserForm) renderButtons(s form.State) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "buttons-container"},
		vdom.Button("Clear", map[string]any{
			"type":    "button",
			"onClick": events.AdaptNoArgEvent(c.HandleReset),
		}),
		vdom.Button("Add", map[string]any{
			"type":     "button",
			"disabled": s.Loading(),
			"onClick":  events.AdaptNoArgEvent(c.HandleSubmit),
		}),
	)
}

// errorText returns nil when msg is empty; nil children are dropped.
func errorText(msg string) *vdom.VNode {
	if msg == "" {
		return nil
	}
	return vdom.Span(msg, map[string]any{"class": "error-text"})
}
